package billing

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/repo"
	entbilling "github.com/medora-health/medora_backend/internal/repo/billing"
	entpatient "github.com/medora-health/medora_backend/internal/repo/patient"
	"github.com/medora-health/medora_backend/pkg/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateChargeRequest struct {
	PatientID   uuid.UUID
	AmountCents int64
	Description *string
}

type ListRequest struct {
	PatientID *uuid.UUID
	Paid      *bool
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateCharge(ctx context.Context, req CreateChargeRequest) (*repo.Billing, error)
	List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Billing], error)
	GetByID(ctx context.Context, chargeID uuid.UUID) (*repo.Billing, error)
	MarkPaid(ctx context.Context, chargeID uuid.UUID) (*repo.Billing, error)

	// OutstandingBalance sums the patient's unpaid charges.
	OutstandingBalance(ctx context.Context, patientID uuid.UUID) (int64, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type billingService struct {
	db  *repo.Client
	clk clock.Clock
}

func New(db *repo.Client, clk clock.Clock) Service {
	return &billingService{db: db, clk: clk}
}

func (s *billingService) CreateCharge(ctx context.Context, req CreateChargeRequest) (*repo.Billing, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	c := s.db.Billing.Create().
		SetPatientID(req.PatientID).
		SetAmountCents(req.AmountCents)
	if req.Description != nil {
		c = c.SetDescription(*req.Description)
	}

	charge, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}
	return charge, nil
}

func (s *billingService) List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Billing], error) {
	var empty pagination.Page[*repo.Billing]

	params := pagination.Normalize(req.Page, req.PerPage)

	q := s.db.Billing.Query()
	if req.PatientID != nil {
		q = q.Where(entbilling.PatientID(*req.PatientID))
	}
	if req.Paid != nil {
		q = q.Where(entbilling.Paid(*req.Paid))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count charges: %w", err)
	}

	charges, err := q.
		Order(entbilling.ByCreatedAt(sql.OrderDesc())).
		Offset(params.Offset()).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return empty, fmt.Errorf("list charges: %w", err)
	}

	return pagination.NewPage(charges, params, total), nil
}

func (s *billingService) GetByID(ctx context.Context, chargeID uuid.UUID) (*repo.Billing, error) {
	charge, err := s.db.Billing.Get(ctx, chargeID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrChargeNotFound
		}
		return nil, fmt.Errorf("get charge: %w", err)
	}
	return charge, nil
}

func (s *billingService) MarkPaid(ctx context.Context, chargeID uuid.UUID) (*repo.Billing, error) {
	charge, err := s.GetByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge.Paid {
		return nil, ErrAlreadyPaid
	}

	updated, err := s.db.Billing.UpdateOne(charge).
		SetPaid(true).
		SetPaidAt(s.clk.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark charge paid: %w", err)
	}
	return updated, nil
}

func (s *billingService) OutstandingBalance(ctx context.Context, patientID uuid.UUID) (int64, error) {
	var v []struct {
		Sum int64 `json:"sum"`
	}
	err := s.db.Billing.Query().
		Where(
			entbilling.PatientID(patientID),
			entbilling.Paid(false),
		).
		Aggregate(repo.Sum(entbilling.FieldAmountCents)).
		Scan(ctx, &v)
	if err != nil {
		return 0, fmt.Errorf("sum outstanding charges: %w", err)
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Sum, nil
}
