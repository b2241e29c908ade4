package patient

import "errors"

var (
	ErrPatientNotFound       = errors.New("patient not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrRecordNotFound        = errors.New("medical record not found")
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrVaccinationNotFound   = errors.New("vaccination not found")
	ErrMedicationNotFound    = errors.New("medication not found")
	ErrTreatmentPlanNotFound = errors.New("treatment plan not found")
	ErrInvalidPhone          = errors.New("phone number is not valid")
	ErrInvalidName           = errors.New("patient name is required")
	ErrInvalidDateRange      = errors.New("end date must not precede start date")
)
