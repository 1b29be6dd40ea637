package http

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	BillingAddress  string `json:"billingAddress"`
}

type BookAppointmentRequest struct {
	DoctorID          uint64    `json:"doctorId" binding:"required"`
	AppointmentDate   time.Time `json:"appointmentDate" binding:"required"`
	DurationInMinutes int       `json:"durationInMinutes" binding:"required,min=5"`
	PatientName       string    `json:"patientName" binding:"required"`
	PatientPhone      string    `json:"patientPhone"`
	PatientEmail      string    `json:"patientEmail"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
}

type AdminSetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EnrollRequest struct {
	CourseID uint64 `json:"courseId" binding:"required"`
}

type UpdateProductStockRequest struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Stock       int    `json:"stock" binding:"min=0"`
	CourseID    uint64 `json:"courseId"`
}
