package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

var appointmentTransitions = map[string][]AppointmentStatus{
	"confirm":    {AppointmentStatusScheduled},
	"complete":   {AppointmentStatusConfirmed},
	"cancel":     {AppointmentStatusScheduled, AppointmentStatusConfirmed},
	"markNoShow": {AppointmentStatusScheduled, AppointmentStatusConfirmed},
}

type PatientInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type Appointment struct {
	ID                uint64            `json:"id" gorm:"primaryKey;autoIncrement"`
	AppointmentNumber string            `json:"appointmentNumber" gorm:"uniqueIndex;size:40"`
	UserID            uint64            `json:"userId" gorm:"not null;index"`
	DoctorID          uint64            `json:"doctorId" gorm:"not null;index"`
	AppointmentDate   time.Time         `json:"appointmentDate" gorm:"not null"`
	DurationInMinutes int               `json:"durationInMinutes" gorm:"not null"`
	Status            AppointmentStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	Patient           PatientInfo       `json:"patient" gorm:"embedded;embeddedPrefix:patient_"`
	ZoomMeetingID     string            `json:"zoomMeetingId"`
	ZoomJoinURL       string            `json:"zoomJoinUrl"`
	Notes             string            `json:"notes"`
	CreatedAt         time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
}

func NewAppointment(userID, doctorID uint64, at time.Time, durationMinutes int, patient PatientInfo) (*Appointment, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Appointment{
		AppointmentNumber: "APT-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID:            userID,
		DoctorID:          doctorID,
		AppointmentDate:   at,
		DurationInMinutes: durationMinutes,
		Status:            AppointmentStatusScheduled,
		Patient:           patient,
	}, nil
}

func (a *Appointment) EndTime() time.Time {
	return a.AppointmentDate.Add(time.Duration(a.DurationInMinutes) * time.Minute)
}

func (a *Appointment) transition(op string, to AppointmentStatus) error {
	for _, from := range appointmentTransitions[op] {
		if a.Status == from {
			a.Status = to
			return nil
		}
	}
	return newTransitionError("appointment "+a.AppointmentNumber, string(a.Status), op)
}

func (a *Appointment) Confirm() error {
	return a.transition("confirm", AppointmentStatusConfirmed)
}

func (a *Appointment) Complete() error {
	return a.transition("complete", AppointmentStatusCompleted)
}

func (a *Appointment) CanBeCancelled() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}

// CanBeRescheduled mirrors CanBeCancelled: only upcoming, non-terminal
// appointments can move.
func (a *Appointment) CanBeRescheduled() bool {
	return a.CanBeCancelled()
}

func (a *Appointment) Cancel() error {
	if !a.CanBeCancelled() {
		return newTransitionError("appointment "+a.AppointmentNumber, string(a.Status), "cancel")
	}
	a.Status = AppointmentStatusCancelled
	return nil
}

func (a *Appointment) MarkNoShow() error {
	return a.transition("markNoShow", AppointmentStatusNoShow)
}

// Reschedule swaps the date only. Slot-conflict validation against the
// doctor's calendar happens in the service before this is called.
func (a *Appointment) Reschedule(newDate time.Time) error {
	if !a.CanBeRescheduled() {
		return newTransitionError("appointment "+a.AppointmentNumber, string(a.Status), "reschedule")
	}
	a.AppointmentDate = newDate
	return nil
}

// SetStatusDirect is the privileged admin bypass: it skips the transition
// table entirely. Callers own the audit trail (see AppointmentService.AdminSetStatus).
func (a *Appointment) SetStatusDirect(status AppointmentStatus) {
	a.Status = status
}

// Overlaps reports half-open interval intersection with [start, start+d).
func (a *Appointment) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return a.AppointmentDate.Before(end) && start.Before(a.EndTime())
}

// DoctorAvailability is a recurring weekly window during which a doctor
// accepts bookings. It has its own lifecycle and is consulted read-only at
// booking and reschedule time.
type DoctorAvailability struct {
	ID        uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	DoctorID  uint64       `json:"doctorId" gorm:"not null;index"`
	DayOfWeek time.Weekday `json:"dayOfWeek" gorm:"not null"`
	StartTime string       `json:"startTime" gorm:"size:5"` // "09:00"
	EndTime   string       `json:"endTime" gorm:"size:5"`   // "17:30"
	IsActive  bool         `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Covers reports whether [start, start+d) falls entirely inside the window on
// the window's weekday.
func (w *DoctorAvailability) Covers(start time.Time, durationMinutes int) bool {
	if !w.IsActive || start.Weekday() != w.DayOfWeek {
		return false
	}
	windowStart, err1 := minutesOfDay(w.StartTime)
	windowEnd, err2 := minutesOfDay(w.EndTime)
	if err1 != nil || err2 != nil {
		return false
	}
	slotStart := start.Hour()*60 + start.Minute()
	slotEnd := slotStart + durationMinutes
	return slotStart >= windowStart && slotEnd <= windowEnd
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
