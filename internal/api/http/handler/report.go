package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /reports/summary
func (h *ReportHandler) Summary(c fiber.Ctx) error {
	var q struct {
		DoctorID string `query:"doctor_id"`
		From     string `query:"from"`
		To       string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	req := report.SummaryRequest{}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
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

	summary, err := h.svc.Summary(c.Context(), req)
	if err != nil {
		return internalError(c)
	}
	return ok(c, summary)
}
