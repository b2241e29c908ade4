package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/repo"
	entdept "github.com/medora-health/medora_backend/internal/repo/department"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	"github.com/medora-health/medora_backend/pkg/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Page           int
	PerPage        int
	Specialization *string
	DepartmentID   *uuid.UUID
}

type CreateRequest struct {
	Name            string
	Specialization  string
	ExperienceYears int
	Bio             *string
	DepartmentID    *uuid.UUID
}

type UpdateRequest struct {
	Name            *string
	Specialization  *string
	ExperienceYears *int
	Bio             *string
	DepartmentID    *uuid.UUID
}

type CreateDepartmentRequest struct {
	Name        string
	Description *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Doctor], error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
	Update(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error)
	Delete(ctx context.Context, doctorID uuid.UUID) error

	ListDepartments(ctx context.Context) ([]*repo.Department, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error)
	DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db  *repo.Client
	clk clock.Clock
}

func New(db *repo.Client, clk clock.Clock) Service {
	return &doctorService{db: db, clk: clk}
}

func (s *doctorService) List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Doctor], error) {
	var empty pagination.Page[*repo.Doctor]

	params := pagination.Normalize(req.Page, req.PerPage)

	q := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil())

	if req.Specialization != nil {
		q = q.Where(entdoctor.SpecializationEqualFold(*req.Specialization))
	}
	if req.DepartmentID != nil {
		q = q.Where(entdoctor.DepartmentID(*req.DepartmentID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count doctors: %w", err)
	}

	doctors, err := q.
		Order(entdoctor.ByName()).
		Offset(params.Offset()).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return empty, fmt.Errorf("list doctors: %w", err)
	}

	return pagination.NewPage(doctors, params, total), nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID), entdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if req.DepartmentID != nil {
		if err := s.checkDepartmentExists(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	c := s.db.Doctor.Create().
		SetName(name).
		SetSpecialization(req.Specialization).
		SetExperienceYears(req.ExperienceYears)

	if req.Bio != nil {
		c = c.SetBio(*req.Bio)
	}
	if req.DepartmentID != nil {
		c = c.SetDepartmentID(*req.DepartmentID)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Update(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error) {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Doctor.UpdateOne(d)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		upd = upd.SetName(name)
	}
	if req.Specialization != nil {
		upd = upd.SetSpecialization(*req.Specialization)
	}
	if req.ExperienceYears != nil {
		upd = upd.SetExperienceYears(*req.ExperienceYears)
	}
	if req.Bio != nil {
		upd = upd.SetBio(*req.Bio)
	}
	if req.DepartmentID != nil {
		if err := s.checkDepartmentExists(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		upd = upd.SetDepartmentID(*req.DepartmentID)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return updated, nil
}

func (s *doctorService) Delete(ctx context.Context, doctorID uuid.UUID) error {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if err := s.db.Doctor.UpdateOne(d).
		SetDeletedAt(s.clk.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

func (s *doctorService) ListDepartments(ctx context.Context) ([]*repo.Department, error) {
	depts, err := s.db.Department.Query().
		Order(entdept.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return depts, nil
}

func (s *doctorService) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	exists, err := s.db.Department.Query().
		Where(entdept.NameEqualFold(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check department: %w", err)
	}
	if exists {
		return nil, ErrDuplicateDepartment
	}

	c := s.db.Department.Create().SetName(name)
	if req.Description != nil {
		c = c.SetDescription(*req.Description)
	}

	dept, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return dept, nil
}

func (s *doctorService) DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error {
	dept, err := s.db.Department.Get(ctx, departmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("get department: %w", err)
	}

	inUse, err := s.db.Doctor.Query().
		Where(entdoctor.DepartmentID(departmentID), entdoctor.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check department doctors: %w", err)
	}
	if inUse {
		return ErrDepartmentNotEmpty
	}

	return s.db.Department.DeleteOne(dept).Exec(ctx)
}

func (s *doctorService) checkDepartmentExists(ctx context.Context, departmentID uuid.UUID) error {
	exists, err := s.db.Department.Query().
		Where(entdept.ID(departmentID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check department: %w", err)
	}
	if !exists {
		return ErrDepartmentNotFound
	}
	return nil
}
