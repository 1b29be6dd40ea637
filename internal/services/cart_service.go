package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/logger"
	"medicart-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

type CartService struct {
	carts       repository.CartRepository
	products    repository.ProductRepository
	redisClient *redis.Client
	log         *logger.Logger
	cartTTL     time.Duration
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, log *logger.Logger, cartTTL time.Duration) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		log:      log.With("service", "cart"),
		cartTTL:  cartTTL,
	}
}

func (s *CartService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// GetOrCreateCart lazily creates the user's cart on first access. The unique
// index on user_id keeps it at one per user.
func (s *CartService) GetOrCreateCart(ctx context.Context, userID uint64) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = domain.NewCart(userID, s.cartTTL)
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem validates product existence, active status and stock before
// delegating to the aggregate; the cart itself does not re-check the catalog.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.getProductWithCache(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: product %d is not available", domain.ErrInvalidOperation, productID)
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	requested := quantity
	if existing, ok := cart.FindItem(productID); ok {
		requested += existing.Quantity
	}
	if !product.HasStock(requested) {
		return nil, fmt.Errorf("%w: product %d has %d in stock, cart wants %d",
			domain.ErrInsufficientStock, productID, product.Stock, requested)
	}

	if err := cart.AddItem(productID, quantity, product.Price); err != nil {
		return nil, err
	}
	if err := s.carts.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID uint64, quantity int) (*domain.Cart, error) {
	cart, err := s.requireCart(userID)
	if err != nil {
		return nil, err
	}
	if err := cart.UpdateItemQuantity(productID, quantity); err != nil {
		return nil, err
	}
	if err := s.carts.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint64) (*domain.Cart, error) {
	cart, err := s.requireCart(userID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.carts.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID uint64) error {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	cart.Clear()
	return s.carts.Update(cart)
}

func (s *CartService) requireCart(userID uint64) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart for user %d: %w", userID, domain.ErrNotFound)
	}
	return cart, nil
}

func (s *CartService) getProductWithCache(ctx context.Context, productID uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && product != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return product, nil
}

// WarmupProductCache preloads hot products into Redis at boot.
func (s *CartService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range productIDs {
		id := id
		g.Go(func() error {
			product, err := s.products.FindByID(id)
			if err != nil || product == nil {
				s.log.Warn("cache warmup skipped product", "productId", id, "error", err)
				return nil
			}
			if data, err := json.Marshal(product); err == nil {
				s.redisClient.Set(ctx, fmt.Sprintf("product:%d", id), data, 5*time.Minute)
			}
			return nil
		})
	}
	return g.Wait()
}
