package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/repo"
	entavail "github.com/medora-health/medora_backend/internal/repo/doctoravailability"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	entslot "github.com/medora-health/medora_backend/internal/repo/timeslot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSlotRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type CreateAvailabilityRequest struct {
	DayOfWeek   int8 // 0=Monday … 6=Sunday
	StartHour   int8
	StartMinute int8
	EndHour     int8
	EndMinute   int8
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Slot management
	ListSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error)
	ListAvailableSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error)
	CreateSlot(ctx context.Context, doctorID uuid.UUID, req CreateSlotRequest) (*repo.TimeSlot, error)
	DeleteSlot(ctx context.Context, doctorID, slotID uuid.UUID) error

	// Weekly availability management
	ListAvailability(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorAvailability, error)
	CreateAvailability(ctx context.Context, doctorID uuid.UUID, req CreateAvailabilityRequest) (*repo.DoctorAvailability, error)
	DeleteAvailability(ctx context.Context, doctorID, availabilityID uuid.UUID) error

	// GenerateSlots materializes concrete slots from the doctor's weekly
	// availability over [from, to). Windows that already have a slot are
	// skipped.
	GenerateSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time, slotLength time.Duration) ([]*repo.TimeSlot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db  *repo.Client
	clk clock.Clock
}

func New(db *repo.Client, clk clock.Clock) Service {
	return &schedulingService{db: db, clk: clk}
}

// ---------------------------------------------------------------------------
// Slots
// ---------------------------------------------------------------------------

func (s *schedulingService) ListSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error) {
	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.StartTimeGTE(from),
			entslot.StartTimeLT(to),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *schedulingService) ListAvailableSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*repo.TimeSlot, error) {
	if now := s.clk.Now(); from.Before(now) {
		from = now
	}
	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.Available(true),
			entslot.StartTimeGTE(from),
			entslot.StartTimeLT(to),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	return slots, nil
}

func (s *schedulingService) CreateSlot(ctx context.Context, doctorID uuid.UUID, req CreateSlotRequest) (*repo.TimeSlot, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if err := s.checkDoctorExists(ctx, doctorID); err != nil {
		return nil, err
	}

	overlapping, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.StartTimeLT(req.EndTime),
			entslot.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlapping {
		return nil, ErrOverlappingSlot
	}

	slot, err := s.db.TimeSlot.Create().
		SetDoctorID(doctorID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *schedulingService) DeleteSlot(ctx context.Context, doctorID, slotID uuid.UUID) error {
	slot, err := s.db.TimeSlot.Query().
		Where(entslot.ID(slotID), entslot.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}
	if !slot.Available {
		return ErrSlotAlreadyBooked
	}
	return s.db.TimeSlot.DeleteOne(slot).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Weekly availability
// ---------------------------------------------------------------------------

func (s *schedulingService) ListAvailability(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorAvailability, error) {
	windows, err := s.db.DoctorAvailability.Query().
		Where(entavail.DoctorID(doctorID)).
		Order(entavail.ByDayOfWeek(), entavail.ByStartHour(), entavail.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return windows, nil
}

func (s *schedulingService) CreateAvailability(ctx context.Context, doctorID uuid.UUID, req CreateAvailabilityRequest) (*repo.DoctorAvailability, error) {
	if !validWindow(req) {
		return nil, ErrInvalidWindow
	}
	if err := s.checkDoctorExists(ctx, doctorID); err != nil {
		return nil, err
	}

	window, err := s.db.DoctorAvailability.Create().
		SetDoctorID(doctorID).
		SetDayOfWeek(req.DayOfWeek).
		SetStartHour(req.StartHour).
		SetStartMinute(req.StartMinute).
		SetEndHour(req.EndHour).
		SetEndMinute(req.EndMinute).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}
	return window, nil
}

func (s *schedulingService) DeleteAvailability(ctx context.Context, doctorID, availabilityID uuid.UUID) error {
	window, err := s.db.DoctorAvailability.Query().
		Where(entavail.ID(availabilityID), entavail.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAvailabilityNotFound
		}
		return fmt.Errorf("get availability: %w", err)
	}
	return s.db.DoctorAvailability.DeleteOne(window).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Slot generation
// ---------------------------------------------------------------------------

func (s *schedulingService) GenerateSlots(ctx context.Context, doctorID uuid.UUID, from, to time.Time, slotLength time.Duration) ([]*repo.TimeSlot, error) {
	if !to.After(from) {
		return nil, ErrInvalidTimeRange
	}
	if slotLength <= 0 {
		slotLength = 30 * time.Minute
	}

	windows, err := s.ListAvailability(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}

	specs := make([]windowSpec, 0, len(windows))
	for _, w := range windows {
		specs = append(specs, windowSpec{
			DayOfWeek:   w.DayOfWeek,
			StartHour:   w.StartHour,
			StartMinute: w.StartMinute,
			EndHour:     w.EndHour,
			EndMinute:   w.EndMinute,
		})
	}

	candidates := expandWindows(specs, from, to, slotLength)

	var created []*repo.TimeSlot
	for _, c := range candidates {
		taken, err := s.db.TimeSlot.Query().
			Where(
				entslot.DoctorID(doctorID),
				entslot.StartTimeLT(c.End),
				entslot.EndTimeGT(c.Start),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check existing slot: %w", err)
		}
		if taken {
			continue
		}

		slot, err := s.db.TimeSlot.Create().
			SetDoctorID(doctorID).
			SetStartTime(c.Start).
			SetEndTime(c.End).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create generated slot: %w", err)
		}
		created = append(created, slot)
	}
	return created, nil
}

func (s *schedulingService) checkDoctorExists(ctx context.Context, doctorID uuid.UUID) error {
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

func validWindow(req CreateAvailabilityRequest) bool {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return false
	}
	if req.StartHour < 0 || req.StartHour > 23 || req.EndHour < 0 || req.EndHour > 23 {
		return false
	}
	if req.StartMinute < 0 || req.StartMinute > 59 || req.EndMinute < 0 || req.EndMinute > 59 {
		return false
	}
	start := int(req.StartHour)*60 + int(req.StartMinute)
	end := int(req.EndHour)*60 + int(req.EndMinute)
	return end > start
}
