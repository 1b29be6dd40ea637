package domain

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Price       Money          `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Stock       int            `json:"stock" gorm:"not null"`
	// CourseID links a purchasable seat to the course it unlocks; zero for
	// physical goods.
	CourseID uint64 `json:"courseId,omitempty"`
	IsActive    bool           `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ReserveStock decrements stock for a sale.
func (p *Product) ReserveStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < qty {
		return fmt.Errorf("%w: product %d has %d, requested %d", ErrInsufficientStock, p.ID, p.Stock, qty)
	}
	p.Stock -= qty
	return nil
}

// RestoreStock returns previously reserved stock, e.g. after a cancellation.
func (p *Product) RestoreStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += qty
	return nil
}

func (p *Product) HasStock(qty int) bool {
	return p.Stock >= qty
}
