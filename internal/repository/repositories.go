package repository

import (
	"time"

	"medicart-service/internal/domain"
)

// All Find* methods return (nil, nil) when the entity does not exist; absence
// is not an error at this layer.

type CartRepository interface {
	Save(cart *domain.Cart) error
	Update(cart *domain.Cart) error
	FindByUserID(userID uint64) (*domain.Cart, error)
}

type OrderRepository interface {
	Save(order *domain.Order) error
	Update(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindByOrderNumber(number string) (*domain.Order, error)
	FindByUserID(userID uint64) ([]domain.Order, error)
}

type AppointmentRepository interface {
	Save(appointment *domain.Appointment) error
	Update(appointment *domain.Appointment) error
	Delete(id uint64) error
	FindByID(id uint64) (*domain.Appointment, error)
	FindByUserID(userID uint64) ([]domain.Appointment, error)
	// FindActiveByDoctor returns the doctor's non-cancelled appointments whose
	// start falls inside [from, to).
	FindActiveByDoctor(doctorID uint64, from, to time.Time) ([]domain.Appointment, error)
}

type AvailabilityRepository interface {
	Save(window *domain.DoctorAvailability) error
	FindByDoctorAndDay(doctorID uint64, day time.Weekday) ([]domain.DoctorAvailability, error)
	FindByDoctor(doctorID uint64) ([]domain.DoctorAvailability, error)
}

type ProductRepository interface {
	Save(product *domain.Product) error
	Update(product *domain.Product) error
	FindByID(id uint64) (*domain.Product, error)
	FindActive(limit, offset int) ([]domain.Product, error)
}

type CourseRepository interface {
	Save(course *domain.Course) error
	FindByID(id uint64) (*domain.Course, error)
	FindPublished() ([]domain.Course, error)
}

type EnrollmentRepository interface {
	Save(enrollment *domain.Enrollment) error
	FindByUserAndCourse(userID, courseID uint64) (*domain.Enrollment, error)
	FindByUserID(userID uint64) ([]domain.Enrollment, error)
}

type UserRepository interface {
	Save(user *domain.User) error
	FindByID(id uint64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
}
