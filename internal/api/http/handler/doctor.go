package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, doctor.ErrDepartmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrDuplicateDepartment),
		errors.Is(err, doctor.ErrDepartmentNotEmpty):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrInvalidName):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
		Specialization string `query:"specialization"`
		DepartmentID   string `query:"department_id"`
	}
	_ = c.Bind().Query(&q)

	req := doctor.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Specialization != "" {
		req.Specialization = &q.Specialization
	}
	if q.DepartmentID != "" {
		id, err := uuid.Parse(q.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	page, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, page)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name            string  `json:"name"`
		Specialization  string  `json:"specialization"`
		ExperienceYears int     `json:"experience_years"`
		Bio             *string `json:"bio"`
		DepartmentID    *string `json:"department_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.CreateRequest{
		Name:            body.Name,
		Specialization:  body.Specialization,
		ExperienceYears: body.ExperienceYears,
		Bio:             body.Bio,
	}
	if body.DepartmentID != nil {
		id, err := uuid.Parse(*body.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	d, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, d)
}

// PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Name            *string `json:"name"`
		Specialization  *string `json:"specialization"`
		ExperienceYears *int    `json:"experience_years"`
		Bio             *string `json:"bio"`
		DepartmentID    *string `json:"department_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.UpdateRequest{
		Name:            body.Name,
		Specialization:  body.Specialization,
		ExperienceYears: body.ExperienceYears,
		Bio:             body.Bio,
	}
	if body.DepartmentID != nil {
		id, err := uuid.Parse(*body.DepartmentID)
		if err != nil {
			return badRequest(c, "invalid department_id")
		}
		req.DepartmentID = &id
	}

	d, err := h.svc.Update(c.Context(), doctorID, req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// DELETE /doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.Delete(c.Context(), doctorID); err != nil {
		return mapDoctorError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

// GET /departments
func (h *DoctorHandler) ListDepartments(c fiber.Ctx) error {
	depts, err := h.svc.ListDepartments(c.Context())
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, depts)
}

// POST /departments
func (h *DoctorHandler) CreateDepartment(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dept, err := h.svc.CreateDepartment(c.Context(), doctor.CreateDepartmentRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, dept)
}

// DELETE /departments/:id
func (h *DoctorHandler) DeleteDepartment(c fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	if err := h.svc.DeleteDepartment(c.Context(), departmentID); err != nil {
		return mapDoctorError(c, err)
	}
	return noContent(c)
}
