package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/billing"
)

type BillingHandler struct {
	svc billing.Service
}

func NewBillingHandler(svc billing.Service) *BillingHandler {
	return &BillingHandler{svc: svc}
}

func mapBillingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrChargeNotFound),
		errors.Is(err, billing.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, billing.ErrAlreadyPaid):
		return conflict(c, err.Error())
	case errors.Is(err, billing.ErrInvalidAmount):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /billing
func (h *BillingHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Paid      string `query:"paid"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := billing.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	switch q.Paid {
	case "true":
		v := true
		req.Paid = &v
	case "false":
		v := false
		req.Paid = &v
	}

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, page)
}

// POST /billing
func (h *BillingHandler) CreateCharge(c fiber.Ctx) error {
	var body struct {
		PatientID   string  `json:"patient_id"`
		AmountCents int64   `json:"amount_cents"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	charge, err := h.svc.CreateCharge(c.Context(), billing.CreateChargeRequest{
		PatientID:   patientID,
		AmountCents: body.AmountCents,
		Description: body.Description,
	})
	if err != nil {
		return mapBillingError(c, err)
	}
	return created(c, charge)
}

// GET /billing/:id
func (h *BillingHandler) GetByID(c fiber.Ctx) error {
	chargeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid charge id")
	}

	charge, err := h.svc.GetByID(c.Context(), chargeID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, charge)
}

// PATCH /billing/:id/pay
func (h *BillingHandler) MarkPaid(c fiber.Ctx) error {
	chargeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid charge id")
	}

	charge, err := h.svc.MarkPaid(c.Context(), chargeID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, charge)
}

// GET /patients/:id/balance
func (h *BillingHandler) OutstandingBalance(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	balance, err := h.svc.OutstandingBalance(c.Context(), patientID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, fiber.Map{"patient_id": patientID, "outstanding_cents": balance})
}
