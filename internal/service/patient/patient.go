package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/internal/repo"
	entdoctor "github.com/medora-health/medora_backend/internal/repo/doctor"
	entmed "github.com/medora-health/medora_backend/internal/repo/medication"
	entrecord "github.com/medora-health/medora_backend/internal/repo/medicalrecord"
	entpatient "github.com/medora-health/medora_backend/internal/repo/patient"
	entpresc "github.com/medora-health/medora_backend/internal/repo/prescription"
	entplan "github.com/medora-health/medora_backend/internal/repo/treatmentplan"
	entvacc "github.com/medora-health/medora_backend/internal/repo/vaccination"
	"github.com/medora-health/medora_backend/pkg/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Page    int
	PerPage int
	Search  string // matches against name
}

type CreateRequest struct {
	Name        string
	DateOfBirth time.Time
	Address     string
	Email       *string
	Phone       *string
	Gender      *string
}

type UpdateRequest struct {
	Name        *string
	DateOfBirth *time.Time
	Address     *string
	Email       *string
	Phone       *string
	Gender      *string
}

type CreateRecordRequest struct {
	Diagnosis string
	Treatment string
}

type CreatePrescriptionRequest struct {
	DoctorID     uuid.UUID
	Medication   string
	Dosage       string
	Instructions string
}

type CreateVaccinationRequest struct {
	VaccineName string
	DateGiven   time.Time
	Notes       *string
}

type CreateMedicationRequest struct {
	Name               string
	DosageInstructions string
	StartDate          *time.Time
	EndDate            *time.Time
}

type CreateTreatmentPlanRequest struct {
	DoctorID    uuid.UUID
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Patient], error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, patientID uuid.UUID) error

	// Chart
	AddRecord(ctx context.Context, patientID uuid.UUID, req CreateRecordRequest) (*repo.MedicalRecord, error)
	ListRecords(ctx context.Context, patientID uuid.UUID) ([]*repo.MedicalRecord, error)
	AddPrescription(ctx context.Context, patientID uuid.UUID, req CreatePrescriptionRequest) (*repo.Prescription, error)
	ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error)
	AddVaccination(ctx context.Context, patientID uuid.UUID, req CreateVaccinationRequest) (*repo.Vaccination, error)
	ListVaccinations(ctx context.Context, patientID uuid.UUID) ([]*repo.Vaccination, error)
	AddMedication(ctx context.Context, patientID uuid.UUID, req CreateMedicationRequest) (*repo.Medication, error)
	ListMedications(ctx context.Context, patientID uuid.UUID) ([]*repo.Medication, error)
	AddTreatmentPlan(ctx context.Context, patientID uuid.UUID, req CreateTreatmentPlanRequest) (*repo.TreatmentPlan, error)
	ListTreatmentPlans(ctx context.Context, patientID uuid.UUID) ([]*repo.TreatmentPlan, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db  *repo.Client
	clk clock.Clock
}

func New(db *repo.Client, clk clock.Clock) Service {
	return &patientService{db: db, clk: clk}
}

func (s *patientService) List(ctx context.Context, req ListRequest) (pagination.Page[*repo.Patient], error) {
	var empty pagination.Page[*repo.Patient]

	params := pagination.Normalize(req.Page, req.PerPage)

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil())

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.NameContainsFold(search))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return empty, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.
		Order(entpatient.ByName(), entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(params.Offset()).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return empty, fmt.Errorf("list patients: %w", err)
	}

	return pagination.NewPage(patients, params, total), nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	c := s.db.Patient.Create().
		SetName(name).
		SetDateOfBirth(req.DateOfBirth).
		SetAddress(req.Address)

	if req.Email != nil {
		c = c.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		c = c.SetPhone(phone)
	}
	if req.Gender != nil {
		c = c.SetGender(*req.Gender)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		upd = upd.SetName(name)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Address != nil {
		upd = upd.SetAddress(*req.Address)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(phone)
	}
	if req.Gender != nil {
		upd = upd.SetGender(*req.Gender)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	// Soft delete: the chart stays intact for auditing
	if err := s.db.Patient.UpdateOne(p).
		SetDeletedAt(s.clk.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Medical records
// ---------------------------------------------------------------------------

func (s *patientService) AddRecord(ctx context.Context, patientID uuid.UUID, req CreateRecordRequest) (*repo.MedicalRecord, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	rec, err := s.db.MedicalRecord.Create().
		SetPatientID(patientID).
		SetDiagnosis(req.Diagnosis).
		SetTreatment(req.Treatment).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medical record: %w", err)
	}
	return rec, nil
}

func (s *patientService) ListRecords(ctx context.Context, patientID uuid.UUID) ([]*repo.MedicalRecord, error) {
	recs, err := s.db.MedicalRecord.Query().
		Where(entrecord.PatientID(patientID)).
		Order(entrecord.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return recs, nil
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

func (s *patientService) AddPrescription(ctx context.Context, patientID uuid.UUID, req CreatePrescriptionRequest) (*repo.Prescription, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctorExists(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	presc, err := s.db.Prescription.Create().
		SetPatientID(patientID).
		SetDoctorID(req.DoctorID).
		SetMedication(req.Medication).
		SetDosage(req.Dosage).
		SetInstructions(req.Instructions).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return presc, nil
}

func (s *patientService) ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error) {
	prescs, err := s.db.Prescription.Query().
		Where(entpresc.PatientID(patientID)).
		Order(entpresc.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescs, nil
}

// ---------------------------------------------------------------------------
// Vaccinations
// ---------------------------------------------------------------------------

func (s *patientService) AddVaccination(ctx context.Context, patientID uuid.UUID, req CreateVaccinationRequest) (*repo.Vaccination, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	c := s.db.Vaccination.Create().
		SetPatientID(patientID).
		SetVaccineName(req.VaccineName).
		SetDateGiven(req.DateGiven)
	if req.Notes != nil {
		c = c.SetNotes(*req.Notes)
	}

	vacc, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create vaccination: %w", err)
	}
	return vacc, nil
}

func (s *patientService) ListVaccinations(ctx context.Context, patientID uuid.UUID) ([]*repo.Vaccination, error) {
	vaccs, err := s.db.Vaccination.Query().
		Where(entvacc.PatientID(patientID)).
		Order(entvacc.ByDateGiven(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaccinations: %w", err)
	}
	return vaccs, nil
}

// ---------------------------------------------------------------------------
// Medications
// ---------------------------------------------------------------------------

func (s *patientService) AddMedication(ctx context.Context, patientID uuid.UUID, req CreateMedicationRequest) (*repo.Medication, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	c := s.db.Medication.Create().
		SetPatientID(patientID).
		SetName(req.Name).
		SetDosageInstructions(req.DosageInstructions)
	if req.StartDate != nil {
		c = c.SetStartDate(*req.StartDate)
	}
	if req.EndDate != nil {
		c = c.SetEndDate(*req.EndDate)
	}

	med, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return med, nil
}

func (s *patientService) ListMedications(ctx context.Context, patientID uuid.UUID) ([]*repo.Medication, error) {
	meds, err := s.db.Medication.Query().
		Where(entmed.PatientID(patientID)).
		Order(entmed.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return meds, nil
}

// ---------------------------------------------------------------------------
// Treatment plans
// ---------------------------------------------------------------------------

func (s *patientService) AddTreatmentPlan(ctx context.Context, patientID uuid.UUID, req CreateTreatmentPlanRequest) (*repo.TreatmentPlan, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctorExists(ctx, req.DoctorID); err != nil {
		return nil, err
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	c := s.db.TreatmentPlan.Create().
		SetPatientID(patientID).
		SetDoctorID(req.DoctorID).
		SetStartDate(req.StartDate).
		SetDescription(req.Description)
	if req.EndDate != nil {
		c = c.SetEndDate(*req.EndDate)
	}

	plan, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create treatment plan: %w", err)
	}
	return plan, nil
}

func (s *patientService) ListTreatmentPlans(ctx context.Context, patientID uuid.UUID) ([]*repo.TreatmentPlan, error) {
	plans, err := s.db.TreatmentPlan.Query().
		Where(entplan.PatientID(patientID)).
		Order(entplan.ByStartDate(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatment plans: %w", err)
	}
	return plans, nil
}

func (s *patientService) checkDoctorExists(ctx context.Context, doctorID uuid.UUID) error {
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
