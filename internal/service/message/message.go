package message

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/medora-health/medora_backend/internal/repo"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	entmsg "github.com/medora-health/medora_backend/internal/repo/message"
	entpatient "github.com/medora-health/medora_backend/internal/repo/patient"
	"github.com/medora-health/medora_backend/pkg/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendRequest struct {
	SenderPatientID *uuid.UUID
	SenderDoctorID  *uuid.UUID
	Content         string
}

type ListRequest struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Send(ctx context.Context, req SendRequest) (*repo.Message, error)
	List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Message], error)
	GetByID(ctx context.Context, messageID uuid.UUID) (*repo.Message, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type messageService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &messageService{db: db, nc: nc}
}

func (s *messageService) Send(ctx context.Context, req SendRequest) (*repo.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if (req.SenderPatientID == nil) == (req.SenderDoctorID == nil) {
		return nil, ErrInvalidSender
	}

	c := s.db.Message.Create().SetContent(content)

	if req.SenderPatientID != nil {
		exists, err := s.db.Patient.Query().
			Where(entpatient.ID(*req.SenderPatientID), entpatient.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check patient sender: %w", err)
		}
		if !exists {
			return nil, ErrSenderNotFound
		}
		c = c.SetSenderPatientID(*req.SenderPatientID)
	} else {
		exists, err := s.db.Doctor.Query().
			Where(entdoctor.ID(*req.SenderDoctorID), entdoctor.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check doctor sender: %w", err)
		}
		if !exists {
			return nil, ErrSenderNotFound
		}
		c = c.SetSenderDoctorID(*req.SenderDoctorID)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	// Best-effort event for notification workers
	if s.nc != nil {
		subject := fmt.Sprintf("medora.message.new.%s", msg.ID)
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))
	}

	return msg, nil
}

func (s *messageService) List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Message], error) {
	var empty pagination.Page[*repo.Message]

	params := pagination.Normalize(req.Page, req.PerPage)

	q := s.db.Message.Query()
	if req.PatientID != nil {
		q = q.Where(entmsg.SenderPatientID(*req.PatientID))
	}
	if req.DoctorID != nil {
		q = q.Where(entmsg.SenderDoctorID(*req.DoctorID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count messages: %w", err)
	}

	msgs, err := q.
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset(params.Offset()).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return empty, fmt.Errorf("list messages: %w", err)
	}

	return pagination.NewPage(msgs, params, total), nil
}

func (s *messageService) GetByID(ctx context.Context, messageID uuid.UUID) (*repo.Message, error) {
	msg, err := s.db.Message.Get(ctx, messageID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return msg, nil
}
