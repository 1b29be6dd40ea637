package mysql

import (
	"errors"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Save(p *domain.Product) error {
	return r.db.Create(p).Error
}

func (r *productRepo) Update(p *domain.Product) error {
	return r.db.Save(p).Error
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindActive(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Where("is_active = ?", true).
		Limit(limit).Offset(offset).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Save(c *domain.Course) error {
	return r.db.Create(c).Error
}

func (r *courseRepo) FindByID(id uint64) (*domain.Course, error) {
	var c domain.Course
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) FindPublished() ([]domain.Course, error) {
	var out []domain.Course
	if err := r.db.Where("is_published = ?", true).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Save(e *domain.Enrollment) error {
	return r.db.Create(e).Error
}

func (r *enrollmentRepo) FindByUserAndCourse(userID, courseID uint64) (*domain.Enrollment, error) {
	var e domain.Enrollment
	if err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) FindByUserID(userID uint64) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	if err := r.db.Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
