package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrDoctorNotFound),
		errors.Is(err, patient.ErrRecordNotFound),
		errors.Is(err, patient.ErrPrescriptionNotFound),
		errors.Is(err, patient.ErrVaccinationNotFound),
		errors.Is(err, patient.ErrMedicationNotFound),
		errors.Is(err, patient.ErrTreatmentPlanNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidName),
		errors.Is(err, patient.ErrInvalidDateRange):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

func patientIDParam(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	page, err := h.svc.List(c.Context(), patient.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, page)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string    `json:"name"`
		DateOfBirth time.Time `json:"date_of_birth"`
		Address     string    `json:"address"`
		Email       *string   `json:"email"`
		Phone       *string   `json:"phone"`
		Gender      *string   `json:"gender"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		Name:        body.Name,
		DateOfBirth: body.DateOfBirth,
		Address:     body.Address,
		Email:       body.Email,
		Phone:       body.Phone,
		Gender:      body.Gender,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Name        *string    `json:"name"`
		DateOfBirth *time.Time `json:"date_of_birth"`
		Address     *string    `json:"address"`
		Email       *string    `json:"email"`
		Phone       *string    `json:"phone"`
		Gender      *string    `json:"gender"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), patientID, patient.UpdateRequest{
		Name:        body.Name,
		DateOfBirth: body.DateOfBirth,
		Address:     body.Address,
		Email:       body.Email,
		Phone:       body.Phone,
		Gender:      body.Gender,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Chart
// ---------------------------------------------------------------------------

// GET /patients/:id/records
func (h *PatientHandler) ListRecords(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	recs, err := h.svc.ListRecords(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, recs)
}

// POST /patients/:id/records
func (h *PatientHandler) AddRecord(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Diagnosis string `json:"diagnosis"`
		Treatment string `json:"treatment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Diagnosis == "" {
		return badRequest(c, "diagnosis is required")
	}

	rec, err := h.svc.AddRecord(c.Context(), patientID, patient.CreateRecordRequest{
		Diagnosis: body.Diagnosis,
		Treatment: body.Treatment,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, rec)
}

// GET /patients/:id/prescriptions
func (h *PatientHandler) ListPrescriptions(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	prescs, err := h.svc.ListPrescriptions(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, prescs)
}

// POST /patients/:id/prescriptions
func (h *PatientHandler) AddPrescription(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		DoctorID     string `json:"doctor_id"`
		Medication   string `json:"medication"`
		Dosage       string `json:"dosage"`
		Instructions string `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	if body.Medication == "" {
		return badRequest(c, "medication is required")
	}

	presc, err := h.svc.AddPrescription(c.Context(), patientID, patient.CreatePrescriptionRequest{
		DoctorID:     doctorID,
		Medication:   body.Medication,
		Dosage:       body.Dosage,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, presc)
}

// GET /patients/:id/vaccinations
func (h *PatientHandler) ListVaccinations(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	vaccs, err := h.svc.ListVaccinations(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, vaccs)
}

// POST /patients/:id/vaccinations
func (h *PatientHandler) AddVaccination(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		VaccineName string    `json:"vaccine_name"`
		DateGiven   time.Time `json:"date_given"`
		Notes       *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.VaccineName == "" {
		return badRequest(c, "vaccine_name is required")
	}

	vacc, err := h.svc.AddVaccination(c.Context(), patientID, patient.CreateVaccinationRequest{
		VaccineName: body.VaccineName,
		DateGiven:   body.DateGiven,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, vacc)
}

// GET /patients/:id/medications
func (h *PatientHandler) ListMedications(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	meds, err := h.svc.ListMedications(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, meds)
}

// POST /patients/:id/medications
func (h *PatientHandler) AddMedication(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Name               string     `json:"name"`
		DosageInstructions string     `json:"dosage_instructions"`
		StartDate          *time.Time `json:"start_date"`
		EndDate            *time.Time `json:"end_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	med, err := h.svc.AddMedication(c.Context(), patientID, patient.CreateMedicationRequest{
		Name:               body.Name,
		DosageInstructions: body.DosageInstructions,
		StartDate:          body.StartDate,
		EndDate:            body.EndDate,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, med)
}

// GET /patients/:id/treatment-plans
func (h *PatientHandler) ListTreatmentPlans(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	plans, err := h.svc.ListTreatmentPlans(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, plans)
}

// POST /patients/:id/treatment-plans
func (h *PatientHandler) AddTreatmentPlan(c fiber.Ctx) error {
	patientID, err := patientIDParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		DoctorID    string     `json:"doctor_id"`
		StartDate   time.Time  `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		Description string     `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	plan, err := h.svc.AddTreatmentPlan(c.Context(), patientID, patient.CreateTreatmentPlanRequest{
		DoctorID:    doctorID,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Description: body.Description,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, plan)
}
