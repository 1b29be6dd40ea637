package services

import (
	"time"

	"medicart-service/internal/domain"

	"github.com/shopspring/decimal"
)

func usd(amount string) domain.Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return domain.Money{Amount: d, Currency: domain.CurrencyUSD}
}

func testProduct(id uint64, price string, stock int) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "Test Product",
		Price:    usd(price),
		Stock:    stock,
		IsActive: true,
	}
}

func testCart(userID uint64, items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{
		ID:        1,
		UserID:    userID,
		Items:     items,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func testAppointment(id, userID, doctorID uint64, at time.Time, minutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:                id,
		AppointmentNumber: "APT-TEST",
		UserID:            userID,
		DoctorID:          doctorID,
		AppointmentDate:   at,
		DurationInMinutes: minutes,
		Status:            status,
	}
}

const (
	testUserID    = uint64(7)
	testDoctorID  = uint64(3)
	testProductID = uint64(1)
)
