package infra

import (
	"context"
	"time"

	"medicart-service/internal/domain"
)

type PaymentClientInterface interface {
	ProcessPayment(ctx context.Context, orderNumber string, amount domain.Money) (*PaymentResult, error)
	ProcessRefund(ctx context.Context, paymentID string, amount domain.Money) (*PaymentResult, error)
}

type ZoomClientInterface interface {
	CreateMeeting(ctx context.Context, topic string, startTime time.Time, durationMinutes int) (*Meeting, error)
	CancelMeeting(ctx context.Context, meetingID string) error
	RescheduleMeeting(ctx context.Context, meetingID string, startTime time.Time, durationMinutes int) error
}

var _ PaymentClientInterface = (*PaymentClient)(nil)
var _ ZoomClientInterface = (*ZoomClient)(nil)
