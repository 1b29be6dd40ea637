package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pendingOrder(t *testing.T) *Order {
	t.Helper()
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(1, 2, cartMoney("10.00")))
	assert.NoError(t, cart.AddItem(2, 1, cartMoney("5.00")))
	order, err := NewOrderFromCart(cart, "1 Main St", "1 Main St")
	assert.NoError(t, err)
	return order
}

func TestNewOrderFromCart(t *testing.T) {
	order := pendingOrder(t)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(cartMoney("25.00")))
	assert.NotEmpty(t, order.OrderNumber)
}

func TestNewOrderFromCart_EmptyCart(t *testing.T) {
	_, err := NewOrderFromCart(NewCart(1, time.Hour), "a", "b")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrder_SnapshotIndependentOfCart(t *testing.T) {
	cart := NewCart(1, time.Hour)
	assert.NoError(t, cart.AddItem(1, 2, cartMoney("10.00")))
	order, err := NewOrderFromCart(cart, "a", "a")
	assert.NoError(t, err)

	cart.Clear()
	assert.NoError(t, cart.AddItem(9, 99, cartMoney("1.00")))

	assert.Len(t, order.Items, 1)
	assert.Equal(t, uint64(1), order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.TotalAmount.Equal(cartMoney("20.00")))
}

func TestOrder_HappyPathTransitions(t *testing.T) {
	order := pendingOrder(t)

	assert.NoError(t, order.Confirm())
	assert.Equal(t, OrderStatusConfirmed, order.Status)

	assert.NoError(t, order.StartProcessing())
	assert.NoError(t, order.Ship())
	assert.NotNil(t, order.ShippedAt)

	assert.NoError(t, order.Deliver())
	assert.NotNil(t, order.DeliveredAt)
	assert.Equal(t, OrderStatusDelivered, order.Status)
}

func TestOrder_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(o *Order) error
	}{
		{
			name: "confirm twice",
			run: func(o *Order) error {
				if err := o.Confirm(); err != nil {
					return err
				}
				return o.Confirm()
			},
		},
		{
			name: "ship before processing",
			run: func(o *Order) error {
				if err := o.Confirm(); err != nil {
					return err
				}
				return o.Ship()
			},
		},
		{
			name: "cancel after delivery",
			run: func(o *Order) error {
				for _, step := range []func() error{o.Confirm, o.StartProcessing, o.Ship, o.Deliver} {
					if err := step(); err != nil {
						return err
					}
				}
				return o.Cancel()
			},
		},
		{
			name: "deliver from pending",
			run:  func(o *Order) error { return o.Deliver() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(pendingOrder(t))
			assert.ErrorIs(t, err, ErrInvalidStateTransition)

			var ste *StateTransitionError
			assert.ErrorAs(t, err, &ste)
			assert.NotEmpty(t, ste.From)
			assert.NotEmpty(t, ste.Attempted)
		})
	}
}

func TestOrder_CancelFromEarlyStates(t *testing.T) {
	order := pendingOrder(t)
	assert.NoError(t, order.Cancel())

	order = pendingOrder(t)
	assert.NoError(t, order.Confirm())
	assert.NoError(t, order.Cancel())

	order = pendingOrder(t)
	assert.NoError(t, order.Confirm())
	assert.NoError(t, order.StartProcessing())
	assert.NoError(t, order.Cancel())
}

func TestOrder_RefundRequiresCompletedPayment(t *testing.T) {
	order := pendingOrder(t)
	assert.NoError(t, order.Confirm())

	err := order.ProcessRefund()
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	assert.NoError(t, order.MarkPaymentCompleted("pay_123"))
	assert.NoError(t, order.ProcessRefund())
	assert.Equal(t, OrderStatusRefunded, order.Status)
	assert.Equal(t, PaymentStatusRefunded, order.PaymentStatus)
}

func TestOrder_RefundIndependentOfShipment(t *testing.T) {
	order := pendingOrder(t)
	assert.NoError(t, order.MarkPaymentCompleted("pay_9"))
	for _, step := range []func() error{order.Confirm, order.StartProcessing, order.Ship, order.Deliver} {
		assert.NoError(t, step())
	}
	// delivered orders can still be refunded
	assert.NoError(t, order.ProcessRefund())
}

func TestOrder_PaymentStatusMachine(t *testing.T) {
	order := pendingOrder(t)

	assert.NoError(t, order.MarkPaymentFailed())
	assert.ErrorIs(t, order.MarkPaymentCompleted("x"), ErrInvalidStateTransition)

	order = pendingOrder(t)
	assert.NoError(t, order.MarkPaymentCompleted("pay_1"))
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.ErrorIs(t, order.MarkPaymentFailed(), ErrInvalidStateTransition)
}
