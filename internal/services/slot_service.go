package services

import (
	"context"
	"fmt"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/repository"
)

// AppointmentSlotValidator checks a proposed doctor/time/duration against the
// doctor's calendar. excludeAppointmentID skips one appointment, which lets a
// reschedule not collide with itself.
type AppointmentSlotValidator interface {
	ValidateSlot(ctx context.Context, doctorID uint64, start time.Time, durationMinutes int, excludeAppointmentID uint64) error
}

type SlotService struct {
	appointments repository.AppointmentRepository
	availability repository.AvailabilityRepository
}

func NewSlotService(appointments repository.AppointmentRepository, availability repository.AvailabilityRepository) *SlotService {
	return &SlotService{appointments: appointments, availability: availability}
}

// ValidateSlot rejects a candidate [start, start+d) when it overlaps an
// existing non-cancelled appointment for the doctor, or when it falls outside
// every active availability window for that weekday.
func (s *SlotService) ValidateSlot(ctx context.Context, doctorID uint64, start time.Time, durationMinutes int, excludeAppointmentID uint64) error {
	if durationMinutes <= 0 {
		return domain.ErrInvalidQuantity
	}

	windows, err := s.availability.FindByDoctorAndDay(doctorID, start.Weekday())
	if err != nil {
		return err
	}
	covered := false
	for i := range windows {
		if windows[i].Covers(start, durationMinutes) {
			covered = true
			break
		}
	}
	if !covered {
		return fmt.Errorf("%w: doctor %d on %s", domain.ErrOutsideAvailability, doctorID, start.Weekday())
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := s.appointments.FindActiveByDoctor(doctorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == excludeAppointmentID {
			continue
		}
		if existing[i].Overlaps(start, durationMinutes) {
			return fmt.Errorf("%w: doctor %d already booked at %s", domain.ErrSlotConflict,
				doctorID, existing[i].AppointmentDate.Format(time.RFC3339))
		}
	}
	return nil
}

var _ AppointmentSlotValidator = (*SlotService)(nil)
