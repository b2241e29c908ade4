package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/scheduling"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrSlotNotFound),
		errors.Is(err, scheduling.ErrAvailabilityNotFound),
		errors.Is(err, scheduling.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrOverlappingSlot),
		errors.Is(err, scheduling.ErrSlotAlreadyBooked):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange),
		errors.Is(err, scheduling.ErrInvalidWindow):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

func doctorIDParam(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("doctorId"))
}

// timeRangeQuery parses from/to query params, defaulting to the next 14 days.
func timeRangeQuery(c fiber.Ctx) (time.Time, time.Time) {
	from := time.Now()
	to := from.AddDate(0, 0, 14)
	if s := c.Query("from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			from = t
		}
	}
	if s := c.Query("to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			to = t
		}
	}
	return from, to
}

// GET /doctors/:doctorId/slots
func (h *ScheduleHandler) ListSlots(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	from, to := timeRangeQuery(c)

	var (
		slots any
		lerr  error
	)
	if c.Query("available") == "true" {
		slots, lerr = h.svc.ListAvailableSlots(c.Context(), doctorID, from, to)
	} else {
		slots, lerr = h.svc.ListSlots(c.Context(), doctorID, from, to)
	}
	if lerr != nil {
		return mapScheduleError(c, lerr)
	}
	return ok(c, slots)
}

// POST /doctors/:doctorId/slots
func (h *ScheduleHandler) CreateSlot(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slot, err := h.svc.CreateSlot(c.Context(), doctorID, scheduling.CreateSlotRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, slot)
}

// DELETE /doctors/:doctorId/slots/:id
func (h *ScheduleHandler) DeleteSlot(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	if err := h.svc.DeleteSlot(c.Context(), doctorID, slotID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// GET /doctors/:doctorId/availability
func (h *ScheduleHandler) ListAvailability(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	windows, err := h.svc.ListAvailability(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, windows)
}

// POST /doctors/:doctorId/availability
func (h *ScheduleHandler) CreateAvailability(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		DayOfWeek   int8 `json:"day_of_week"`
		StartHour   int8 `json:"start_hour"`
		StartMinute int8 `json:"start_minute"`
		EndHour     int8 `json:"end_hour"`
		EndMinute   int8 `json:"end_minute"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	window, err := h.svc.CreateAvailability(c.Context(), doctorID, scheduling.CreateAvailabilityRequest{
		DayOfWeek:   body.DayOfWeek,
		StartHour:   body.StartHour,
		StartMinute: body.StartMinute,
		EndHour:     body.EndHour,
		EndMinute:   body.EndMinute,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, window)
}

// DELETE /doctors/:doctorId/availability/:id
func (h *ScheduleHandler) DeleteAvailability(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	availabilityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid availability id")
	}

	if err := h.svc.DeleteAvailability(c.Context(), doctorID, availabilityID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// POST /doctors/:doctorId/slots/generate
func (h *ScheduleHandler) GenerateSlots(c fiber.Ctx) error {
	doctorID, err := doctorIDParam(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		From              time.Time `json:"from"`
		To                time.Time `json:"to"`
		SlotLengthMinutes int       `json:"slot_length_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slots, err := h.svc.GenerateSlots(c.Context(), doctorID, body.From, body.To,
		time.Duration(body.SlotLengthMinutes)*time.Minute)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, slots)
}
