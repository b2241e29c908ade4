package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/message"
)

type MessageHandler struct {
	svc message.Service
}

func NewMessageHandler(svc message.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func mapMessageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, message.ErrMessageNotFound),
		errors.Is(err, message.ErrSenderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, message.ErrEmptyContent),
		errors.Is(err, message.ErrInvalidSender):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /messages
func (h *MessageHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		DoctorID  string `query:"doctor_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := message.ListRequest{
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
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapMessageError(c, err)
	}
	return ok(c, page)
}

// POST /messages
func (h *MessageHandler) Send(c fiber.Ctx) error {
	var body struct {
		SenderPatientID *string `json:"sender_patient_id"`
		SenderDoctorID  *string `json:"sender_doctor_id"`
		Content         string  `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := message.SendRequest{Content: body.Content}
	if body.SenderPatientID != nil {
		id, err := uuid.Parse(*body.SenderPatientID)
		if err != nil {
			return badRequest(c, "invalid sender_patient_id")
		}
		req.SenderPatientID = &id
	}
	if body.SenderDoctorID != nil {
		id, err := uuid.Parse(*body.SenderDoctorID)
		if err != nil {
			return badRequest(c, "invalid sender_doctor_id")
		}
		req.SenderDoctorID = &id
	}

	msg, err := h.svc.Send(c.Context(), req)
	if err != nil {
		return mapMessageError(c, err)
	}
	return created(c, msg)
}

// GET /messages/:id
func (h *MessageHandler) GetByID(c fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.GetByID(c.Context(), messageID)
	if err != nil {
		return mapMessageError(c, err)
	}
	return ok(c, msg)
}
