package domain

import "time"

// Events published to the message broker after a state change is persisted.

type OrderCreatedEvent struct {
	OrderID     uint64    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	UserID      uint64    `json:"userId"`
	TotalAmount string    `json:"totalAmount"`
	Currency    Currency  `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderCancelledEvent struct {
	OrderID     uint64    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	UserID      uint64    `json:"userId"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type AppointmentBookedEvent struct {
	AppointmentID     uint64    `json:"appointmentId"`
	AppointmentNumber string    `json:"appointmentNumber"`
	UserID            uint64    `json:"userId"`
	DoctorID          uint64    `json:"doctorId"`
	AppointmentDate   time.Time `json:"appointmentDate"`
	DurationInMinutes int       `json:"durationInMinutes"`
}

type AppointmentCancelledEvent struct {
	AppointmentID     uint64    `json:"appointmentId"`
	AppointmentNumber string    `json:"appointmentNumber"`
	UserID            uint64    `json:"userId"`
	DoctorID          uint64    `json:"doctorId"`
	CancelledAt       time.Time `json:"cancelledAt"`
}

// AppointmentStatusOverriddenEvent is the audit record for the privileged
// admin status set that bypasses the transition table.
type AppointmentStatusOverriddenEvent struct {
	AppointmentID     uint64            `json:"appointmentId"`
	AppointmentNumber string            `json:"appointmentNumber"`
	AdminID           uint64            `json:"adminId"`
	FromStatus        AppointmentStatus `json:"fromStatus"`
	ToStatus          AppointmentStatus `json:"toStatus"`
	OverriddenAt      time.Time         `json:"overriddenAt"`
}
