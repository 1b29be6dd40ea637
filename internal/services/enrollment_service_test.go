package services

import (
	"context"
	"testing"

	"medicart-service/internal/domain"
	"medicart-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func publishedCourse(id uint64) *domain.Course {
	return &domain.Course{
		ID:          id,
		Title:       "Test Course",
		Price:       usd("49.00"),
		IsPublished: true,
	}
}

func TestEnrollmentService_Enroll(t *testing.T) {
	const courseID = uint64(9)

	tests := []struct {
		name       string
		orderID    uint64
		setupMocks func(*mocks.MockEnrollmentRepository, *mocks.MockCourseRepository)
		wantErr    error
	}{
		{
			name:    "grants a seat linked to the purchase",
			orderID: 12,
			setupMocks: func(enrollments *mocks.MockEnrollmentRepository, courses *mocks.MockCourseRepository) {
				courses.On("FindByID", courseID).Return(publishedCourse(courseID), nil)
				enrollments.On("FindByUserAndCourse", testUserID, courseID).Return(nil, nil)
				enrollments.On("Save", mock.AnythingOfType("*domain.Enrollment")).Return(nil)
			},
		},
		{
			name: "duplicate enrollment rejected",
			setupMocks: func(enrollments *mocks.MockEnrollmentRepository, courses *mocks.MockCourseRepository) {
				courses.On("FindByID", courseID).Return(publishedCourse(courseID), nil)
				enrollments.On("FindByUserAndCourse", testUserID, courseID).
					Return(&domain.Enrollment{ID: 1, UserID: testUserID, CourseID: courseID}, nil)
			},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "unpublished course rejected",
			setupMocks: func(enrollments *mocks.MockEnrollmentRepository, courses *mocks.MockCourseRepository) {
				draft := publishedCourse(courseID)
				draft.IsPublished = false
				courses.On("FindByID", courseID).Return(draft, nil)
			},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "unknown course",
			setupMocks: func(enrollments *mocks.MockEnrollmentRepository, courses *mocks.MockCourseRepository) {
				courses.On("FindByID", courseID).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollments := new(mocks.MockEnrollmentRepository)
			courses := new(mocks.MockCourseRepository)
			tt.setupMocks(enrollments, courses)

			service := NewEnrollmentService(enrollments, courses)
			enrollment, err := service.Enroll(context.Background(), testUserID, courseID, tt.orderID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, enrollment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, enrollment.UserID)
				assert.Equal(t, courseID, enrollment.CourseID)
				assert.Equal(t, tt.orderID, enrollment.OrderID)
			}
			enrollments.AssertExpectations(t)
			courses.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_ListForUser(t *testing.T) {
	enrollments := new(mocks.MockEnrollmentRepository)
	courses := new(mocks.MockCourseRepository)
	enrollments.On("FindByUserID", testUserID).Return([]domain.Enrollment{
		{ID: 1, UserID: testUserID, CourseID: 9},
	}, nil)

	service := NewEnrollmentService(enrollments, courses)
	got, err := service.ListForUser(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
