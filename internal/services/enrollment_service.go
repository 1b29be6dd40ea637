package services

import (
	"context"
	"fmt"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"
)

// CourseEnroller grants course access. OrderService uses it to hand out seats
// for course products after checkout.
type CourseEnroller interface {
	Enroll(ctx context.Context, userID, courseID, orderID uint64) (*domain.Enrollment, error)
}

type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
}

func NewEnrollmentService(enrollments repository.EnrollmentRepository, courses repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses}
}

// Enroll grants course access once per user. orderID links the enrolment back
// to the purchase that paid for it; zero means a free or admin-granted seat.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID, orderID uint64) (*domain.Enrollment, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("course %d: %w", courseID, domain.ErrNotFound)
	}
	if !course.IsPublished {
		return nil, fmt.Errorf("%w: course %d is not published", domain.ErrInvalidOperation, courseID)
	}

	existing, err := s.enrollments.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %d already enrolled in course %d", domain.ErrInvalidOperation, userID, courseID)
	}

	enrollment := &domain.Enrollment{UserID: userID, CourseID: courseID, OrderID: orderID}
	if err := s.enrollments.Save(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID uint64) ([]domain.Enrollment, error) {
	return s.enrollments.FindByUserID(userID)
}

var _ CourseEnroller = (*EnrollmentService)(nil)
