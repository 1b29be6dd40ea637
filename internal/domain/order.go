package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// orderTransitions is the legal-move table for the fulfilment state machine:
// operation name -> states it may start from. Refund is handled separately
// because it is gated on payment status, not fulfilment status.
var orderTransitions = map[string][]OrderStatus{
	"confirm":         {OrderStatusPending},
	"startProcessing": {OrderStatusConfirmed},
	"ship":            {OrderStatusProcessing},
	"deliver":         {OrderStatusShipped},
	"cancel":          {OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing},
}

type OrderItem struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64 `json:"-" gorm:"index"`
	ProductID uint64 `json:"productId" gorm:"not null"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" gorm:"not null"`
	UnitPrice Money  `json:"unitPrice" gorm:"embedded;embeddedPrefix:unit_price_"`
}

func (i OrderItem) Subtotal() Money {
	return i.UnitPrice.MulQty(i.Quantity)
}

// Order is an immutable-priced record of a completed checkout. Only Status,
// PaymentStatus, the fulfilment timestamps and Notes change after creation.
type Order struct {
	ID              uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber     string        `json:"orderNumber" gorm:"uniqueIndex;size:40"`
	UserID          uint64        `json:"userId" gorm:"not null;index"`
	Items           []OrderItem   `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     Money         `json:"totalAmount" gorm:"embedded;embeddedPrefix:total_"`
	Status          OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);default:'pending'"`
	PaymentID       string        `json:"paymentId"`
	ShippingAddress string        `json:"shippingAddress"`
	BillingAddress  string        `json:"billingAddress"`
	Notes           string        `json:"notes"`
	ShippedAt       *time.Time    `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time    `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// NewOrderFromCart snapshots the cart into a new pending order. Lines are
// copied, so mutating or clearing the cart afterwards does not touch the order.
func NewOrderFromCart(cart *Cart, shippingAddress, billingAddress string) (*Order, error) {
	if cart.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	total, err := cart.TotalAmount()
	if err != nil {
		return nil, err
	}
	order := &Order{
		OrderNumber:     newOrderNumber(),
		UserID:          cart.UserID,
		TotalAmount:     total,
		Status:          OrderStatusPending,
		PaymentStatus:   PaymentStatusPending,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return order, nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (o *Order) transition(op string, to OrderStatus) error {
	for _, from := range orderTransitions[op] {
		if o.Status == from {
			o.Status = to
			return nil
		}
	}
	return newTransitionError("order "+o.OrderNumber, string(o.Status), op)
}

func (o *Order) Confirm() error {
	return o.transition("confirm", OrderStatusConfirmed)
}

func (o *Order) StartProcessing() error {
	return o.transition("startProcessing", OrderStatusProcessing)
}

func (o *Order) Ship() error {
	if err := o.transition("ship", OrderStatusShipped); err != nil {
		return err
	}
	now := time.Now()
	o.ShippedAt = &now
	return nil
}

func (o *Order) Deliver() error {
	if err := o.transition("deliver", OrderStatusDelivered); err != nil {
		return err
	}
	now := time.Now()
	o.DeliveredAt = &now
	return nil
}

// Cancel stops fulfilment. Restoring inventory is the caller's responsibility:
// the order only does status bookkeeping (see OrderService.CancelOrder, which
// pairs the two as saga steps).
func (o *Order) Cancel() error {
	return o.transition("cancel", OrderStatusCancelled)
}

// ProcessRefund is legal from any fulfilment state but only once payment has
// actually completed.
func (o *Order) ProcessRefund() error {
	if o.PaymentStatus != PaymentStatusCompleted {
		return newTransitionError("order "+o.OrderNumber, string(o.PaymentStatus), "processRefund")
	}
	o.Status = OrderStatusRefunded
	o.PaymentStatus = PaymentStatusRefunded
	return nil
}

func (o *Order) MarkPaymentCompleted(paymentID string) error {
	if o.PaymentStatus != PaymentStatusPending {
		return newTransitionError("order "+o.OrderNumber, string(o.PaymentStatus), "markPaymentCompleted")
	}
	o.PaymentStatus = PaymentStatusCompleted
	o.PaymentID = paymentID
	return nil
}

func (o *Order) MarkPaymentFailed() error {
	if o.PaymentStatus != PaymentStatusPending {
		return newTransitionError("order "+o.OrderNumber, string(o.PaymentStatus), "markPaymentFailed")
	}
	o.PaymentStatus = PaymentStatusFailed
	return nil
}
