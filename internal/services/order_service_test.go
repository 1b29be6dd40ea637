package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/infra"
	"medicart-service/internal/logger"
	"medicart-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServiceForTest(
	orderRepo *mocks.MockOrderRepository,
	cartRepo *mocks.MockCartRepository,
	productRepo *mocks.MockProductRepository,
	payments *mocks.MockPaymentClient,
	publisher *mocks.MockPublisher,
	enroller *mocks.MockEnroller,
) *OrderService {
	return NewOrderService(orderRepo, cartRepo, productRepo, payments, publisher, enroller, logger.NewNop())
}

func checkoutCart() *domain.Cart {
	cart := testCart(testUserID)
	_ = cart.AddItem(testProductID, 2, usd("10.00"))
	return cart
}

func TestOrderService_Checkout(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockCartRepository, *mocks.MockProductRepository, *mocks.MockPaymentClient, *mocks.MockPublisher, *domain.Product)
		expectedError string
		checkProduct  func(*testing.T, *domain.Product)
	}{
		{
			name: "successful checkout",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, payments *mocks.MockPaymentClient, publisher *mocks.MockPublisher, product *domain.Product) {
				cartRepo.On("FindByUserID", testUserID).Return(checkoutCart(), nil)
				productRepo.On("FindByID", testProductID).Return(product, nil)
				productRepo.On("Update", product).Return(nil)
				orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 1
				})
				orderRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				payments.On("ProcessPayment", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(&infra.PaymentResult{Success: true, PaymentID: "pay_1"}, nil)
				cartRepo.On("Update", mock.AnythingOfType("*domain.Cart")).Return(nil)
				publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			checkProduct: func(t *testing.T, product *domain.Product) {
				// two units sold
				assert.Equal(t, 3, product.Stock)
			},
		},
		{
			name: "payment declined rolls back stock and cancels order",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, payments *mocks.MockPaymentClient, publisher *mocks.MockPublisher, product *domain.Product) {
				cartRepo.On("FindByUserID", testUserID).Return(checkoutCart(), nil)
				productRepo.On("FindByID", testProductID).Return(product, nil)
				productRepo.On("Update", product).Return(nil)
				orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 1
				})
				orderRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				payments.On("ProcessPayment", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(&infra.PaymentResult{Success: false, FailureReason: "card declined"}, nil)
			},
			expectedError: "card declined",
			checkProduct: func(t *testing.T, product *domain.Product) {
				// reservation compensated
				assert.Equal(t, 5, product.Stock)
			},
		},
		{
			name: "insufficient stock fails before any persistence",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, payments *mocks.MockPaymentClient, publisher *mocks.MockPublisher, product *domain.Product) {
				product.Stock = 1
				cartRepo.On("FindByUserID", testUserID).Return(checkoutCart(), nil)
				productRepo.On("FindByID", testProductID).Return(product, nil)
			},
			expectedError: "insufficient stock",
			checkProduct: func(t *testing.T, product *domain.Product) {
				assert.Equal(t, 1, product.Stock)
			},
		},
		{
			name: "empty cart",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, payments *mocks.MockPaymentClient, publisher *mocks.MockPublisher, product *domain.Product) {
				cartRepo.On("FindByUserID", testUserID).Return(testCart(testUserID), nil)
			},
			expectedError: "nothing to check out",
		},
		{
			name: "no cart at all",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, payments *mocks.MockPaymentClient, publisher *mocks.MockPublisher, product *domain.Product) {
				cartRepo.On("FindByUserID", testUserID).Return(nil, nil)
			},
			expectedError: "nothing to check out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			cartRepo := new(mocks.MockCartRepository)
			productRepo := new(mocks.MockProductRepository)
			payments := new(mocks.MockPaymentClient)
			publisher := new(mocks.MockPublisher)
			product := testProduct(testProductID, "10.00", 5)

			tt.setupMocks(orderRepo, cartRepo, productRepo, payments, publisher, product)
			service := newOrderServiceForTest(orderRepo, cartRepo, productRepo, payments, publisher, new(mocks.MockEnroller))

			order, err := service.Checkout(context.Background(), testUserID, "1 Main St", "1 Main St")

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
				assert.Equal(t, "pay_1", order.PaymentID)
				assert.True(t, order.TotalAmount.Equal(usd("20.00")))
				time.Sleep(50 * time.Millisecond) // let the async publish land
			}
			if tt.checkProduct != nil {
				tt.checkProduct(t, product)
			}

			orderRepo.AssertExpectations(t)
			cartRepo.AssertExpectations(t)
			productRepo.AssertExpectations(t)
			payments.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)
	payments := new(mocks.MockPaymentClient)
	publisher := new(mocks.MockPublisher)
	product := testProduct(testProductID, "10.00", 3)

	order := &domain.Order{
		ID:          4,
		OrderNumber: "ORD-TEST",
		UserID:      testUserID,
		Status:      domain.OrderStatusConfirmed,
		Items: []domain.OrderItem{
			{ProductID: testProductID, Quantity: 2, UnitPrice: usd("10.00")},
		},
	}

	orderRepo.On("FindByID", uint64(4)).Return(order, nil)
	orderRepo.On("Update", order).Return(nil)
	productRepo.On("FindByID", testProductID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)
	publisher.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

	service := newOrderServiceForTest(orderRepo, cartRepo, productRepo, payments, publisher, new(mocks.MockEnroller))
	cancelled, err := service.CancelOrder(context.Background(), testUserID, 4)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 5, product.Stock)
	time.Sleep(50 * time.Millisecond)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_CancelOrder_Unauthorized(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	order := &domain.Order{ID: 4, UserID: 999, Status: domain.OrderStatusPending}
	orderRepo.On("FindByID", uint64(4)).Return(order, nil)

	service := newOrderServiceForTest(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository),
		new(mocks.MockPaymentClient), new(mocks.MockPublisher), new(mocks.MockEnroller))

	_, err := service.CancelOrder(context.Background(), testUserID, 4)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderService_CancelOrder_DeliveredFails(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	order := &domain.Order{ID: 4, UserID: testUserID, Status: domain.OrderStatusDelivered}
	orderRepo.On("FindByID", uint64(4)).Return(order, nil)

	service := newOrderServiceForTest(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository),
		new(mocks.MockPaymentClient), new(mocks.MockPublisher), new(mocks.MockEnroller))

	_, err := service.CancelOrder(context.Background(), testUserID, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestOrderService_RefundOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		setupPayments func(*mocks.MockPaymentClient)
		expectedError error
	}{
		{
			name: "refund after completed payment",
			order: &domain.Order{
				ID: 4, OrderNumber: "ORD-R", UserID: testUserID,
				Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusCompleted,
				PaymentID: "pay_1", TotalAmount: usd("20.00"),
			},
			setupPayments: func(payments *mocks.MockPaymentClient) {
				payments.On("ProcessRefund", mock.Anything, "pay_1", mock.Anything).
					Return(&infra.PaymentResult{Success: true, PaymentID: "re_1"}, nil)
			},
		},
		{
			name: "refund without payment completion fails",
			order: &domain.Order{
				ID: 4, OrderNumber: "ORD-R", UserID: testUserID,
				Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPending,
			},
			expectedError: domain.ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			payments := new(mocks.MockPaymentClient)
			orderRepo.On("FindByID", uint64(4)).Return(tt.order, nil)
			orderRepo.On("Update", tt.order).Return(nil).Maybe()
			if tt.setupPayments != nil {
				tt.setupPayments(payments)
			}

			service := newOrderServiceForTest(orderRepo, new(mocks.MockCartRepository),
				new(mocks.MockProductRepository), payments, new(mocks.MockPublisher), new(mocks.MockEnroller))

			order, err := service.RefundOrder(context.Background(), 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusRefunded, order.Status)
			assert.Equal(t, domain.PaymentStatusRefunded, order.PaymentStatus)
		})
	}
}

func TestOrderService_GetOrderByID_NotFound(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("FindByID", uint64(42)).Return(nil, nil)

	service := newOrderServiceForTest(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository),
		new(mocks.MockPaymentClient), new(mocks.MockPublisher), new(mocks.MockEnroller))

	_, err := service.GetOrderByID(context.Background(), testUserID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_Fulfilment(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	order := &domain.Order{ID: 4, OrderNumber: "ORD-F", UserID: testUserID, Status: domain.OrderStatusConfirmed}
	orderRepo.On("FindByID", uint64(4)).Return(order, nil)
	orderRepo.On("Update", order).Return(nil)

	service := newOrderServiceForTest(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository),
		new(mocks.MockPaymentClient), new(mocks.MockPublisher), new(mocks.MockEnroller))

	ctx := context.Background()
	_, err := service.StartProcessing(ctx, 4)
	assert.NoError(t, err)
	shipped, err := service.ShipOrder(ctx, 4)
	assert.NoError(t, err)
	assert.NotNil(t, shipped.ShippedAt)

	// skipping deliver's precondition
	_, err = service.ShipOrder(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestOrderService_CheckoutGrantsCourseAccess(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)
	payments := new(mocks.MockPaymentClient)
	publisher := new(mocks.MockPublisher)
	enroller := new(mocks.MockEnroller)

	seat := testProduct(testProductID, "49.00", 5)
	seat.CourseID = 9

	cart := testCart(testUserID)
	_ = cart.AddItem(testProductID, 1, usd("49.00"))

	cartRepo.On("FindByUserID", testUserID).Return(cart, nil)
	productRepo.On("FindByID", testProductID).Return(seat, nil)
	productRepo.On("Update", seat).Return(nil)
	orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 12
	})
	orderRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
	payments.On("ProcessPayment", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&infra.PaymentResult{Success: true, PaymentID: "pay_9"}, nil)
	cartRepo.On("Update", mock.AnythingOfType("*domain.Cart")).Return(nil)
	// the seat enrolls the buyer, linked back to this order
	enroller.On("Enroll", mock.Anything, testUserID, uint64(9), uint64(12)).
		Return(&domain.Enrollment{ID: 1, UserID: testUserID, CourseID: 9, OrderID: 12}, nil)
	publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	service := newOrderServiceForTest(orderRepo, cartRepo, productRepo, payments, publisher, enroller)
	order, err := service.Checkout(context.Background(), testUserID, "1 Main St", "")

	assert.NoError(t, err)
	assert.NotNil(t, order)
	enroller.AssertExpectations(t)
}

func TestOrderService_CheckoutPaymentGatewayError(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)
	payments := new(mocks.MockPaymentClient)
	product := testProduct(testProductID, "10.00", 5)

	cartRepo.On("FindByUserID", testUserID).Return(checkoutCart(), nil)
	productRepo.On("FindByID", testProductID).Return(product, nil)
	productRepo.On("Update", product).Return(nil)
	orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
	orderRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
	payments.On("ProcessPayment", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, errors.New("gateway timeout"))

	service := newOrderServiceForTest(orderRepo, cartRepo, productRepo, payments, new(mocks.MockPublisher), new(mocks.MockEnroller))
	_, err := service.Checkout(context.Background(), testUserID, "1 Main St", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gateway timeout")
	assert.Equal(t, 5, product.Stock)
}
