package services

import (
	"context"
	"fmt"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/infra"
	rabbit "medicart-service/internal/infra/rabbitmq"
	"medicart-service/internal/logger"
	"medicart-service/internal/repository"
	"medicart-service/internal/saga"
)

type OrderService struct {
	orders      repository.OrderRepository
	carts       repository.CartRepository
	products    repository.ProductRepository
	payments    infra.PaymentClientInterface
	publisher   rabbit.PublisherInterface
	enrollments CourseEnroller
	log         *logger.Logger
	sagas       *saga.Orchestrator
}

func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	products repository.ProductRepository,
	payments infra.PaymentClientInterface,
	publisher rabbit.PublisherInterface,
	enrollments CourseEnroller,
	log *logger.Logger,
) *OrderService {
	svcLog := log.With("service", "order")
	return &OrderService{
		orders:      orders,
		carts:       carts,
		products:    products,
		payments:    payments,
		publisher:   publisher,
		enrollments: enrollments,
		log:         svcLog,
		sagas:       saga.NewOrchestrator(svcLog),
	}
}

// Checkout turns the user's cart into a pending order and runs the checkout
// step list: reserve stock, persist the order, charge payment, clear the cart.
// A failed step compensates everything before it, so a declined card releases
// the reserved stock and cancels the persisted order.
func (s *OrderService) Checkout(ctx context.Context, userID uint64, shippingAddress, billingAddress string) (*domain.Order, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to check out", domain.ErrValidation)
	}

	order, err := domain.NewOrderFromCart(cart, shippingAddress, billingAddress)
	if err != nil {
		return nil, err
	}

	var reserved []domain.OrderItem

	steps := []saga.Step{
		saga.FuncStep{
			StepName: "reserve-stock",
			ExecuteFn: func(ctx context.Context) error {
				for _, item := range order.Items {
					if err := s.adjustStock(item.ProductID, -item.Quantity); err != nil {
						return err
					}
					reserved = append(reserved, item)
				}
				return nil
			},
			CompensateFn: func(ctx context.Context) error {
				return s.restoreItems(reserved)
			},
		},
		saga.FuncStep{
			StepName: "persist-order",
			ExecuteFn: func(ctx context.Context) error {
				return s.orders.Save(order)
			},
			CompensateFn: func(ctx context.Context) error {
				if err := order.Cancel(); err != nil {
					return err
				}
				return s.orders.Update(order)
			},
		},
		saga.FuncStep{
			StepName: "process-payment",
			ExecuteFn: func(ctx context.Context) error {
				result, err := s.payments.ProcessPayment(ctx, order.OrderNumber, order.TotalAmount)
				if err != nil {
					return err
				}
				if !result.Success {
					if markErr := order.MarkPaymentFailed(); markErr == nil {
						if updErr := s.orders.Update(order); updErr != nil {
							s.log.Error("failed to record declined payment", "orderNumber", order.OrderNumber, "error", updErr)
						}
					}
					return fmt.Errorf("%w: payment declined: %s", domain.ErrInvalidOperation, result.FailureReason)
				}
				if err := order.MarkPaymentCompleted(result.PaymentID); err != nil {
					return err
				}
				return s.orders.Update(order)
			},
			CompensateFn: func(ctx context.Context) error {
				if order.PaymentStatus != domain.PaymentStatusCompleted {
					return nil
				}
				_, err := s.payments.ProcessRefund(ctx, order.PaymentID, order.TotalAmount)
				return err
			},
		},
		saga.FuncStep{
			StepName: "clear-cart",
			ExecuteFn: func(ctx context.Context) error {
				cart.Clear()
				return s.carts.Update(cart)
			},
		},
	}

	if err := s.sagas.Run(ctx, steps...); err != nil {
		return nil, err
	}

	s.grantCourseAccess(ctx, order)

	go s.publishEvent(context.Background(), "order.created", domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount.Amount.StringFixed(3),
		Currency:    order.TotalAmount.Currency,
		CreatedAt:   order.CreatedAt,
	})

	return order, nil
}

// CancelOrder cancels fulfilment and restores inventory as an explicit step
// list. The aggregate only moves the status; stock restoration is the
// service's side of the deal and the two always travel together here.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uint64) (*domain.Order, error) {
	order, err := s.requireOwnedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	steps := []saga.Step{
		saga.FuncStep{
			StepName: "cancel-order",
			ExecuteFn: func(ctx context.Context) error {
				if err := order.Cancel(); err != nil {
					return err
				}
				return s.orders.Update(order)
			},
		},
		saga.FuncStep{
			StepName: "restore-stock",
			ExecuteFn: func(ctx context.Context) error {
				return s.restoreItems(order.Items)
			},
		},
	}
	if err := s.sagas.Run(ctx, steps...); err != nil {
		return nil, err
	}

	go s.publishEvent(context.Background(), "order.cancelled", domain.OrderCancelledEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		CancelledAt: time.Now(),
	})

	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID uint64) (*domain.Order, error) {
	return s.requireOwnedOrder(userID, orderID)
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUserID(userID)
}

func (s *OrderService) ConfirmOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.mutate(orderID, func(o *domain.Order) error { return o.Confirm() })
}

func (s *OrderService) StartProcessing(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.mutate(orderID, func(o *domain.Order) error { return o.StartProcessing() })
}

func (s *OrderService) ShipOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.mutate(orderID, func(o *domain.Order) error { return o.Ship() })
}

func (s *OrderService) DeliverOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.mutate(orderID, func(o *domain.Order) error { return o.Deliver() })
}

// RefundOrder charges the gateway first; the aggregate's payment gate
// (completed payments only) is checked before any external call.
func (s *OrderService) RefundOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.requireOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != domain.PaymentStatusCompleted {
		return nil, &domain.StateTransitionError{
			Aggregate: "order " + order.OrderNumber,
			From:      string(order.PaymentStatus),
			Attempted: "processRefund",
		}
	}

	result, err := s.payments.ProcessRefund(ctx, order.PaymentID, order.TotalAmount)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: refund declined: %s", domain.ErrInvalidOperation, result.FailureReason)
	}
	if err := order.ProcessRefund(); err != nil {
		return nil, err
	}
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) mutate(orderID uint64, op func(*domain.Order) error) (*domain.Order, error) {
	order, err := s.requireOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := op(order); err != nil {
		return nil, err
	}
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) requireOrder(orderID uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return order, nil
}

func (s *OrderService) requireOwnedOrder(userID, orderID uint64) (*domain.Order, error) {
	order, err := s.requireOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrUnauthorized)
	}
	return order, nil
}

func (s *OrderService) adjustStock(productID uint64, delta int) error {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	if delta < 0 {
		if err := product.ReserveStock(-delta); err != nil {
			return err
		}
	} else {
		if err := product.RestoreStock(delta); err != nil {
			return err
		}
	}
	return s.products.Update(product)
}

// grantCourseAccess enrolls the buyer in every course the paid order contains.
// Failures are logged, not rolled back: the purchase stands and missing seats
// are reconciled by the operator.
func (s *OrderService) grantCourseAccess(ctx context.Context, order *domain.Order) {
	for _, item := range order.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			s.log.Error("failed to resolve product for enrollment", "orderNumber", order.OrderNumber, "productId", item.ProductID, "error", err)
			continue
		}
		if product == nil || product.CourseID == 0 {
			continue
		}
		if _, err := s.enrollments.Enroll(ctx, order.UserID, product.CourseID, order.ID); err != nil {
			s.log.Error("failed to enroll purchased course", "orderNumber", order.OrderNumber, "courseId", product.CourseID, "error", err)
		}
	}
}

func (s *OrderService) restoreItems(items []domain.OrderItem) error {
	for _, item := range items {
		if err := s.adjustStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) publishEvent(ctx context.Context, pattern string, event any) {
	if err := s.publisher.Publish(ctx, pattern, event); err != nil {
		s.log.Error("failed to publish event", "pattern", pattern, "error", err)
	}
}
