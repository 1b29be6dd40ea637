package mocks

import (
	"context"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/infra"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Save(cart *domain.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) Update(cart *domain.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) FindByUserID(userID uint64) (*domain.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(number string) (*domain.Order, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(userID uint64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Save(a *domain.Appointment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(a *domain.Appointment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(id uint64) (*domain.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUserID(userID uint64) ([]domain.Appointment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByDoctor(doctorID uint64, from, to time.Time) ([]domain.Appointment, error) {
	args := m.Called(doctorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) Save(w *domain.DoctorAvailability) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) FindByDoctorAndDay(doctorID uint64, day time.Weekday) ([]domain.DoctorAvailability, error) {
	args := m.Called(doctorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorAvailability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindByDoctor(doctorID uint64) ([]domain.DoctorAvailability, error) {
	args := m.Called(doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DoctorAvailability), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(p *domain.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(p *domain.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(id uint64) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(limit, offset int) ([]domain.Product, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Save(c *domain.Course) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCourseRepository) FindByID(id uint64) (*domain.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) FindPublished() ([]domain.Course, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Save(e *domain.Enrollment) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) FindByUserAndCourse(userID, courseID uint64) (*domain.Enrollment, error) {
	args := m.Called(userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByUserID(userID uint64) ([]domain.Enrollment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(u *domain.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) ProcessPayment(ctx context.Context, orderNumber string, amount domain.Money) (*infra.PaymentResult, error) {
	args := m.Called(ctx, orderNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.PaymentResult), args.Error(1)
}

func (m *MockPaymentClient) ProcessRefund(ctx context.Context, paymentID string, amount domain.Money) (*infra.PaymentResult, error) {
	args := m.Called(ctx, paymentID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.PaymentResult), args.Error(1)
}

type MockZoomClient struct {
	mock.Mock
}

func (m *MockZoomClient) CreateMeeting(ctx context.Context, topic string, startTime time.Time, durationMinutes int) (*infra.Meeting, error) {
	args := m.Called(ctx, topic, startTime, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.Meeting), args.Error(1)
}

func (m *MockZoomClient) CancelMeeting(ctx context.Context, meetingID string) error {
	args := m.Called(ctx, meetingID)
	return args.Error(0)
}

func (m *MockZoomClient) RescheduleMeeting(ctx context.Context, meetingID string, startTime time.Time, durationMinutes int) error {
	args := m.Called(ctx, meetingID, startTime, durationMinutes)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockEnroller struct {
	mock.Mock
}

func (m *MockEnroller) Enroll(ctx context.Context, userID, courseID, orderID uint64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

type MockSlotValidator struct {
	mock.Mock
}

func (m *MockSlotValidator) ValidateSlot(ctx context.Context, doctorID uint64, start time.Time, durationMinutes int, excludeAppointmentID uint64) error {
	args := m.Called(ctx, doctorID, start, durationMinutes, excludeAppointmentID)
	return args.Error(0)
}
