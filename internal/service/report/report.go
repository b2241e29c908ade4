package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/repo"
	entappt "github.com/medora-health/medora_backend/internal/repo/appointment"
	entbilling "github.com/medora-health/medora_backend/internal/repo/billing"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	entpatient "github.com/medora-health/medora_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SummaryRequest struct {
	DoctorID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// Summary is an aggregate snapshot used by the reporting endpoints.
type Summary struct {
	TotalAppointments int            `json:"total_appointments"`
	StatusCounts      map[string]int `json:"status_counts"`
	TotalPatients     int            `json:"total_patients"`
	TotalDoctors      int            `json:"total_doctors"`
	UnpaidCents       int64          `json:"unpaid_cents"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Summary(ctx context.Context, req SummaryRequest) (*Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &reportService{db: db}
}

func (s *reportService) Summary(ctx context.Context, req SummaryRequest) (*Summary, error) {
	q := s.db.Appointment.Query()
	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := q.Clone().
		GroupBy(entappt.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("count appointments by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	total := 0
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}

	patients, err := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	doctors, err := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	var sums []struct {
		Sum int64 `json:"sum"`
	}
	if err := s.db.Billing.Query().
		Where(entbilling.Paid(false)).
		Aggregate(repo.Sum(entbilling.FieldAmountCents)).
		Scan(ctx, &sums); err != nil {
		return nil, fmt.Errorf("sum unpaid charges: %w", err)
	}
	var unpaid int64
	if len(sums) > 0 {
		unpaid = sums[0].Sum
	}

	return &Summary{
		TotalAppointments: total,
		StatusCounts:      counts,
		TotalPatients:     patients,
		TotalDoctors:      doctors,
		UnpaidCents:       unpaid,
	}, nil
}
