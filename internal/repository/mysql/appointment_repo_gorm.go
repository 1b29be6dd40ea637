package mysql

import (
	"errors"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"

	"gorm.io/gorm"
)

type appointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Save(a *domain.Appointment) error {
	return r.db.Create(a).Error
}

func (r *appointmentRepo) Update(a *domain.Appointment) error {
	return r.db.Save(a).Error
}

func (r *appointmentRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Appointment{}, id).Error
}

func (r *appointmentRepo) FindByID(id uint64) (*domain.Appointment, error) {
	var a domain.Appointment
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) FindByUserID(userID uint64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.Where("user_id = ?", userID).
		Order("appointment_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *appointmentRepo) FindActiveByDoctor(doctorID uint64, from, to time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.Where("doctor_id = ? AND status <> ? AND appointment_date >= ? AND appointment_date < ?",
		doctorID, domain.AppointmentStatusCancelled, from, to).
		Order("appointment_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type availabilityRepo struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) repository.AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Save(w *domain.DoctorAvailability) error {
	return r.db.Create(w).Error
}

func (r *availabilityRepo) FindByDoctorAndDay(doctorID uint64, day time.Weekday) ([]domain.DoctorAvailability, error) {
	var out []domain.DoctorAvailability
	err := r.db.Where("doctor_id = ? AND day_of_week = ? AND is_active = ?", doctorID, day, true).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *availabilityRepo) FindByDoctor(doctorID uint64) ([]domain.DoctorAvailability, error) {
	var out []domain.DoctorAvailability
	if err := r.db.Where("doctor_id = ?", doctorID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
