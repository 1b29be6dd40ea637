package mysql

import (
	"errors"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Save(cart *domain.Cart) error {
	return r.db.Create(cart).Error
}

// Update replaces the item association wholesale so removed lines are deleted,
// not orphaned.
func (r *cartRepo) Update(cart *domain.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
	})
}

func (r *cartRepo) FindByUserID(userID uint64) (*domain.Cart, error) {
	var c domain.Cart
	if err := r.db.Preload("Items").Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
