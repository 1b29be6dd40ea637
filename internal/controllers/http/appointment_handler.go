package http

import (
	"context"
	"net/http"

	"medicart-service/internal/domain"
	"medicart-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	appointment, err := h.appointments.Book(c.Request.Context(), middleware.UserID(c), req.DoctorID,
		req.AppointmentDate, req.DurationInMinutes, domain.PatientInfo{
			FullName: req.PatientName,
			Phone:    req.PatientPhone,
			Email:    req.PatientEmail,
		})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, appointment)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.appointments.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, appointments)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	appointment, err := h.appointments.Cancel(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, appointment)
}

func (h *Handler) RescheduleAppointment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	appointment, err := h.appointments.Reschedule(c.Request.Context(), middleware.UserID(c), id, req.AppointmentDate)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, appointment)
}

func (h *Handler) ConfirmAppointment(c *gin.Context) {
	h.appointmentTransition(c, h.appointments.Confirm)
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	h.appointmentTransition(c, h.appointments.Complete)
}

func (h *Handler) MarkAppointmentNoShow(c *gin.Context) {
	h.appointmentTransition(c, h.appointments.MarkNoShow)
}

func (h *Handler) AdminSetAppointmentStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var req AdminSetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	appointment, err := h.appointments.AdminSetStatus(c.Request.Context(), middleware.UserID(c), id,
		domain.AppointmentStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, appointment)
}

func (h *Handler) appointmentTransition(c *gin.Context, op func(ctx context.Context, id uint64) (*domain.Appointment, error)) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	appointment, err := op(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, appointment)
}
