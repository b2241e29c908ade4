package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrConflict),
		errors.Is(err, appointment.ErrSlotNotAvailable),
		errors.Is(err, appointment.ErrDoctorBusy):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrPastTime),
		errors.Is(err, appointment.ErrInvalidTimeRange):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		if !appointment.Status(q.Status).Valid() {
			return badRequest(c, "invalid status")
		}
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, page)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID       string    `json:"patient_id"`
		DoctorID        string    `json:"doctor_id"`
		TimeSlotID      *string   `json:"time_slot_id"`
		StartTime       time.Time `json:"start_time"`
		DurationMinutes int       `json:"duration_minutes"`
		Notes           *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.DoctorID == "" {
		return badRequest(c, "patient_id and doctor_id are required")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	req := appointment.BookRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
		Notes:           body.Notes,
	}
	if body.TimeSlotID != nil {
		id, err := uuid.Parse(*body.TimeSlotID)
		if err != nil {
			return badRequest(c, "invalid time_slot_id")
		}
		req.TimeSlotID = &id
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		StartTime       time.Time `json:"start_time"`
		DurationMinutes int       `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}

	appt, err := h.svc.Reschedule(c.Context(), apptID, appointment.RescheduleRequest{
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Confirm(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), apptID, body.Reason); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
