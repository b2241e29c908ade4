package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/medora-health/medora_backend/config"
	"github.com/medora-health/medora_backend/internal/repo"
	entappt "github.com/medora-health/medora_backend/internal/repo/appointment"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	entpatient "github.com/medora-health/medora_backend/internal/repo/patient"
	entslot "github.com/medora-health/medora_backend/internal/repo/timeslot"
	"github.com/medora-health/medora_backend/pkg/pagination"
	"github.com/medora-health/medora_backend/pkg/redis"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type BookRequest struct {
	PatientID       uuid.UUID
	DoctorID        uuid.UUID
	TimeSlotID      *uuid.UUID
	StartTime       time.Time
	DurationMinutes int
	Notes           *string
}

type RescheduleRequest struct {
	StartTime       time.Time
	DurationMinutes int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Appointment], error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, apptID uuid.UUID) error
	Complete(ctx context.Context, apptID uuid.UUID) error
	Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	locker redis.Locker
	nc     *nats.Conn
	clk    clock.Clock
	cfg    config.SchedulingConfig
}

func New(db *repo.Client, locker redis.Locker, nc *nats.Conn, clk clock.Clock, cfg config.SchedulingConfig) Service {
	return &appointmentService{db: db, locker: locker, nc: nc, clk: clk, cfg: cfg}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Appointment], error) {
	var empty pagination.Page[*repo.Appointment]

	params := pagination.Normalize(req.Page, req.PerPage)

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByStartTime(sql.OrderDesc())).
		Offset(params.Offset()).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return empty, fmt.Errorf("list appointments: %w", err)
	}

	return pagination.NewPage(appts, params, total), nil
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	dur := time.Duration(req.DurationMinutes) * time.Minute
	if dur <= 0 {
		dur = s.cfg.DefaultDuration()
	}
	end := req.StartTime.Add(dur)

	if inPast(req.StartTime, s.clk.Now(), s.cfg.GracePeriod()) {
		return nil, ErrPastTime
	}

	if err := s.checkDoctorExists(ctx, req.DoctorID); err != nil {
		return nil, err
	}
	if err := s.checkPatientExists(ctx, req.PatientID); err != nil {
		return nil, err
	}

	var appt *repo.Appointment
	err := s.locker.WithDoctorLock(ctx, req.DoctorID, func(ctx context.Context) error {
		conflict, err := s.hasConflict(ctx, req.DoctorID, req.StartTime, end, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		// If a time slot is referenced, claim it atomically
		if req.TimeSlotID != nil {
			updated, err := s.db.TimeSlot.Update().
				Where(
					entslot.ID(*req.TimeSlotID),
					entslot.DoctorID(req.DoctorID),
					entslot.Available(true),
				).
				SetAvailable(false).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("claim slot: %w", err)
			}
			if updated == 0 {
				return ErrSlotNotAvailable
			}
		}

		c := s.db.Appointment.Create().
			SetPatientID(req.PatientID).
			SetDoctorID(req.DoctorID).
			SetStartTime(req.StartTime).
			SetEndTime(end).
			SetDurationMinutes(int(dur.Minutes()))

		if req.TimeSlotID != nil {
			c = c.SetTimeSlotID(*req.TimeSlotID)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		appt, err = c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			return nil, ErrDoctorBusy
		}
		return nil, err
	}

	s.publish("created", appt.ID)
	return appt, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if !Status(appt.Status).IsActive() {
		return nil, ErrInvalidTransition
	}

	dur := time.Duration(req.DurationMinutes) * time.Minute
	if dur <= 0 {
		dur = time.Duration(appt.DurationMinutes) * time.Minute
	}
	end := req.StartTime.Add(dur)

	if inPast(req.StartTime, s.clk.Now(), s.cfg.GracePeriod()) {
		return nil, ErrPastTime
	}

	var updated *repo.Appointment
	err = s.locker.WithDoctorLock(ctx, appt.DoctorID, func(ctx context.Context) error {
		conflict, err := s.hasConflict(ctx, appt.DoctorID, req.StartTime, end, &appt.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		updated, err = s.db.Appointment.UpdateOne(appt).
			SetStartTime(req.StartTime).
			SetEndTime(end).
			SetDurationMinutes(int(dur.Minutes())).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reschedule appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			return nil, ErrDoctorBusy
		}
		return nil, err
	}
	return updated, nil
}

func (s *appointmentService) Confirm(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.loadForTransition(ctx, apptID, StatusConfirmed)
	if err != nil {
		return err
	}
	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		Exec(ctx); err != nil {
		return fmt.Errorf("confirm appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.loadForTransition(ctx, apptID, StatusCompleted)
	if err != nil {
		return err
	}
	now := s.clk.Now()
	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}

	// Track the patient's most recent visit
	_ = s.db.Patient.UpdateOneID(appt.PatientID).
		SetLastVisit(now).
		Exec(ctx)

	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error {
	appt, err := s.loadForTransition(ctx, apptID, StatusCancelled)
	if err != nil {
		return err
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(s.clk.Now())
	if reason != nil {
		upd = upd.SetCancellationReason(*reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	// Release the slot if this appointment claimed one
	if appt.TimeSlotID != nil {
		_ = s.db.TimeSlot.Update().
			Where(
				entslot.ID(*appt.TimeSlotID),
				entslot.Available(false),
			).
			SetAvailable(true).
			Exec(ctx)
	}

	s.publish("cancelled", appt.ID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) loadForTransition(ctx context.Context, apptID uuid.UUID, to Status) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(Status(appt.Status), to) {
		return nil, ErrInvalidTransition
	}
	return appt, nil
}

func (s *appointmentService) hasConflict(ctx context.Context, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidTimeRange
	}

	buffer := s.cfg.Buffer()

	q := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
			entappt.StartTimeLT(end.Add(buffer)),
			entappt.EndTimeGT(start.Add(-buffer)),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}

	exists, err := q.Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check conflicts: %w", err)
	}
	return exists, nil
}

func (s *appointmentService) checkDoctorExists(ctx context.Context, doctorID uuid.UUID) error {
	exists, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID), entdoctor.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !exists {
		return ErrDoctorNotFound
	}
	return nil
}

func (s *appointmentService) checkPatientExists(ctx context.Context, patientID uuid.UUID) error {
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return ErrPatientNotFound
	}
	return nil
}

// publish emits an appointment lifecycle event. Delivery is best-effort;
// workers pick these up to send notifications.
func (s *appointmentService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("medora.appointment.%s.%s", event, apptID)
	_ = s.nc.Publish(subject, []byte(apptID.String()))
}
