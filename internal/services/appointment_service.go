package services

import (
	"context"
	"fmt"
	"time"

	"medicart-service/internal/domain"
	"medicart-service/internal/infra"
	rabbit "medicart-service/internal/infra/rabbitmq"
	"medicart-service/internal/logger"
	"medicart-service/internal/repository"
	"medicart-service/internal/saga"
)

type AppointmentService struct {
	appointments repository.AppointmentRepository
	slots        AppointmentSlotValidator
	zoom         infra.ZoomClientInterface
	publisher    rabbit.PublisherInterface
	log          *logger.Logger
	sagas        *saga.Orchestrator
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	slots AppointmentSlotValidator,
	zoom infra.ZoomClientInterface,
	publisher rabbit.PublisherInterface,
	log *logger.Logger,
) *AppointmentService {
	svcLog := log.With("service", "appointment")
	return &AppointmentService{
		appointments: appointments,
		slots:        slots,
		zoom:         zoom,
		publisher:    publisher,
		log:          svcLog,
		sagas:        saga.NewOrchestrator(svcLog),
	}
}

// Book validates the slot, persists the appointment, then provisions the
// video meeting. A failed meeting call compensates by deleting the booking,
// so no half-booked appointment survives.
func (s *AppointmentService) Book(ctx context.Context, userID, doctorID uint64, at time.Time, durationMinutes int, patient domain.PatientInfo) (*domain.Appointment, error) {
	if err := s.slots.ValidateSlot(ctx, doctorID, at, durationMinutes, 0); err != nil {
		return nil, err
	}

	appointment, err := domain.NewAppointment(userID, doctorID, at, durationMinutes, patient)
	if err != nil {
		return nil, err
	}

	steps := []saga.Step{
		saga.FuncStep{
			StepName: "persist-appointment",
			ExecuteFn: func(ctx context.Context) error {
				return s.appointments.Save(appointment)
			},
			CompensateFn: func(ctx context.Context) error {
				return s.appointments.Delete(appointment.ID)
			},
		},
		saga.FuncStep{
			StepName: "create-meeting",
			ExecuteFn: func(ctx context.Context) error {
				meeting, err := s.zoom.CreateMeeting(ctx, "Consultation "+appointment.AppointmentNumber, at, durationMinutes)
				if err != nil {
					return err
				}
				appointment.ZoomMeetingID = meeting.MeetingID
				appointment.ZoomJoinURL = meeting.JoinURL
				return s.appointments.Update(appointment)
			},
		},
	}
	if err := s.sagas.Run(ctx, steps...); err != nil {
		return nil, err
	}

	go s.publishEvent(context.Background(), "appointment.booked", domain.AppointmentBookedEvent{
		AppointmentID:     appointment.ID,
		AppointmentNumber: appointment.AppointmentNumber,
		UserID:            appointment.UserID,
		DoctorID:          appointment.DoctorID,
		AppointmentDate:   appointment.AppointmentDate,
		DurationInMinutes: appointment.DurationInMinutes,
	})

	return appointment, nil
}

// Cancel cancels the booking and then the meeting. A Zoom failure on this
// path is logged, not rolled back: the user's cancellation stands regardless
// of the meeting provider.
func (s *AppointmentService) Cancel(ctx context.Context, userID, appointmentID uint64) (*domain.Appointment, error) {
	appointment, err := s.requireOwned(userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := appointment.Cancel(); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}

	if appointment.ZoomMeetingID != "" {
		if err := s.zoom.CancelMeeting(ctx, appointment.ZoomMeetingID); err != nil {
			s.log.Error("failed to cancel meeting", "appointmentId", appointment.ID, "meetingId", appointment.ZoomMeetingID, "error", err)
		}
	}

	go s.publishEvent(context.Background(), "appointment.cancelled", domain.AppointmentCancelledEvent{
		AppointmentID:     appointment.ID,
		AppointmentNumber: appointment.AppointmentNumber,
		UserID:            appointment.UserID,
		DoctorID:          appointment.DoctorID,
		CancelledAt:       time.Now(),
	})

	return appointment, nil
}

// Reschedule re-validates the new slot (excluding this appointment from the
// conflict scan) before the aggregate swaps the date.
func (s *AppointmentService) Reschedule(ctx context.Context, userID, appointmentID uint64, newDate time.Time) (*domain.Appointment, error) {
	appointment, err := s.requireOwned(userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.CanBeRescheduled() {
		return nil, &domain.StateTransitionError{
			Aggregate: "appointment " + appointment.AppointmentNumber,
			From:      string(appointment.Status),
			Attempted: "reschedule",
		}
	}
	if err := s.slots.ValidateSlot(ctx, appointment.DoctorID, newDate, appointment.DurationInMinutes, appointment.ID); err != nil {
		return nil, err
	}
	if err := appointment.Reschedule(newDate); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}

	if appointment.ZoomMeetingID != "" {
		if err := s.zoom.RescheduleMeeting(ctx, appointment.ZoomMeetingID, newDate, appointment.DurationInMinutes); err != nil {
			s.log.Error("failed to reschedule meeting", "appointmentId", appointment.ID, "meetingId", appointment.ZoomMeetingID, "error", err)
		}
	}

	return appointment, nil
}

func (s *AppointmentService) Confirm(ctx context.Context, appointmentID uint64) (*domain.Appointment, error) {
	return s.mutate(appointmentID, func(a *domain.Appointment) error { return a.Confirm() })
}

func (s *AppointmentService) Complete(ctx context.Context, appointmentID uint64) (*domain.Appointment, error) {
	return s.mutate(appointmentID, func(a *domain.Appointment) error { return a.Complete() })
}

func (s *AppointmentService) MarkNoShow(ctx context.Context, appointmentID uint64) (*domain.Appointment, error) {
	return s.mutate(appointmentID, func(a *domain.Appointment) error { return a.MarkNoShow() })
}

// AdminSetStatus is the privileged bypass of the transition table. Every use
// is logged at warn level and emits an audit event.
func (s *AppointmentService) AdminSetStatus(ctx context.Context, adminID, appointmentID uint64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.require(appointmentID)
	if err != nil {
		return nil, err
	}
	from := appointment.Status
	appointment.SetStatusDirect(status)
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}

	s.log.Warn("admin status override",
		"appointmentId", appointment.ID, "adminId", adminID, "from", from, "to", status)
	go s.publishEvent(context.Background(), "appointment.status.overridden", domain.AppointmentStatusOverriddenEvent{
		AppointmentID:     appointment.ID,
		AppointmentNumber: appointment.AppointmentNumber,
		AdminID:           adminID,
		FromStatus:        from,
		ToStatus:          status,
		OverriddenAt:      time.Now(),
	})

	return appointment, nil
}

func (s *AppointmentService) ListForUser(ctx context.Context, userID uint64) ([]domain.Appointment, error) {
	return s.appointments.FindByUserID(userID)
}

func (s *AppointmentService) mutate(appointmentID uint64, op func(*domain.Appointment) error) (*domain.Appointment, error) {
	appointment, err := s.require(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := op(appointment); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) require(appointmentID uint64) (*domain.Appointment, error) {
	appointment, err := s.appointments.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %d: %w", appointmentID, domain.ErrNotFound)
	}
	return appointment, nil
}

func (s *AppointmentService) requireOwned(userID, appointmentID uint64) (*domain.Appointment, error) {
	appointment, err := s.require(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, fmt.Errorf("appointment %d: %w", appointmentID, domain.ErrUnauthorized)
	}
	return appointment, nil
}

func (s *AppointmentService) publishEvent(ctx context.Context, pattern string, event any) {
	if err := s.publisher.Publish(ctx, pattern, event); err != nil {
		s.log.Error("failed to publish event", "pattern", pattern, "error", err)
	}
}
