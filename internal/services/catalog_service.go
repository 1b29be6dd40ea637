package services

import (
	"context"
	"fmt"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"
)

type CatalogService struct {
	products repository.ProductRepository
	courses  repository.CourseRepository
}

func NewCatalogService(products repository.ProductRepository, courses repository.CourseRepository) *CatalogService {
	return &CatalogService{products: products, courses: courses}
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.products.FindActive(limit, offset)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if !product.Price.Currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", domain.ErrValidation, product.Price.Currency)
	}
	return s.products.Save(product)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return s.products.Update(product)
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.FindPublished()
}

func (s *CatalogService) GetCourse(ctx context.Context, id uint64) (*domain.Course, error) {
	course, err := s.courses.FindByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("course %d: %w", id, domain.ErrNotFound)
	}
	return course, nil
}
