// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/appointment"
	"github.com/medora-health/medora_backend/internal/repo/billing"
	"github.com/medora-health/medora_backend/internal/repo/department"
	"github.com/medora-health/medora_backend/internal/repo/doctor"
	"github.com/medora-health/medora_backend/internal/repo/doctoravailability"
	"github.com/medora-health/medora_backend/internal/repo/medicalrecord"
	"github.com/medora-health/medora_backend/internal/repo/medication"
	"github.com/medora-health/medora_backend/internal/repo/message"
	"github.com/medora-health/medora_backend/internal/repo/patient"
	"github.com/medora-health/medora_backend/internal/repo/prescription"
	"github.com/medora-health/medora_backend/internal/repo/timeslot"
	"github.com/medora-health/medora_backend/internal/repo/treatmentplan"
	"github.com/medora-health/medora_backend/internal/repo/vaccination"
	"github.com/medora-health/medora_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[5].Descriptor()
	// appointment.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	appointment.DefaultDurationMinutes = appointmentDescDurationMinutes.Default.(int)
	// appointment.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointment.DurationMinutesValidator = appointmentDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	billingMixin := schema.Billing{}.Mixin()
	billingMixinFields0 := billingMixin[0].Fields()
	_ = billingMixinFields0
	billingMixinFields1 := billingMixin[1].Fields()
	_ = billingMixinFields1
	billingFields := schema.Billing{}.Fields()
	_ = billingFields
	// billingDescCreatedAt is the schema descriptor for created_at field.
	billingDescCreatedAt := billingMixinFields1[0].Descriptor()
	// billing.DefaultCreatedAt holds the default value on creation for the created_at field.
	billing.DefaultCreatedAt = billingDescCreatedAt.Default.(func() time.Time)
	// billingDescAmountCents is the schema descriptor for amount_cents field.
	billingDescAmountCents := billingFields[1].Descriptor()
	// billing.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	billing.AmountCentsValidator = billingDescAmountCents.Validators[0].(func(int64) error)
	// billingDescDescription is the schema descriptor for description field.
	billingDescDescription := billingFields[2].Descriptor()
	// billing.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	billing.DescriptionValidator = billingDescDescription.Validators[0].(func(string) error)
	// billingDescPaid is the schema descriptor for paid field.
	billingDescPaid := billingFields[3].Descriptor()
	// billing.DefaultPaid holds the default value on creation for the paid field.
	billing.DefaultPaid = billingDescPaid.Default.(bool)
	// billingDescID is the schema descriptor for id field.
	billingDescID := billingMixinFields0[0].Descriptor()
	// billing.DefaultID holds the default value on creation for the id field.
	billing.DefaultID = billingDescID.Default.(func() uuid.UUID)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentMixinFields1 := departmentMixin[1].Fields()
	_ = departmentMixinFields1
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields1[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields1[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[0].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = departmentDescName.Validators[0].(func(string) error)
	// departmentDescID is the schema descriptor for id field.
	departmentDescID := departmentMixinFields0[0].Descriptor()
	// department.DefaultID holds the default value on creation for the id field.
	department.DefaultID = departmentDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescName is the schema descriptor for name field.
	doctorDescName := doctorFields[0].Descriptor()
	// doctor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	doctor.NameValidator = func() func(string) error {
		validators := doctorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescSpecialization is the schema descriptor for specialization field.
	doctorDescSpecialization := doctorFields[1].Descriptor()
	// doctor.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	doctor.SpecializationValidator = doctorDescSpecialization.Validators[0].(func(string) error)
	// doctorDescExperienceYears is the schema descriptor for experience_years field.
	doctorDescExperienceYears := doctorFields[2].Descriptor()
	// doctor.DefaultExperienceYears holds the default value on creation for the experience_years field.
	doctor.DefaultExperienceYears = doctorDescExperienceYears.Default.(int)
	// doctor.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	doctor.ExperienceYearsValidator = doctorDescExperienceYears.Validators[0].(func(int) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	doctoravailabilityMixin := schema.DoctorAvailability{}.Mixin()
	doctoravailabilityMixinFields0 := doctoravailabilityMixin[0].Fields()
	_ = doctoravailabilityMixinFields0
	doctoravailabilityMixinFields1 := doctoravailabilityMixin[1].Fields()
	_ = doctoravailabilityMixinFields1
	doctoravailabilityFields := schema.DoctorAvailability{}.Fields()
	_ = doctoravailabilityFields
	// doctoravailabilityDescCreatedAt is the schema descriptor for created_at field.
	doctoravailabilityDescCreatedAt := doctoravailabilityMixinFields1[0].Descriptor()
	// doctoravailability.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctoravailability.DefaultCreatedAt = doctoravailabilityDescCreatedAt.Default.(func() time.Time)
	// doctoravailabilityDescUpdatedAt is the schema descriptor for updated_at field.
	doctoravailabilityDescUpdatedAt := doctoravailabilityMixinFields1[1].Descriptor()
	// doctoravailability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctoravailability.DefaultUpdatedAt = doctoravailabilityDescUpdatedAt.Default.(func() time.Time)
	// doctoravailability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctoravailability.UpdateDefaultUpdatedAt = doctoravailabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctoravailabilityDescDayOfWeek is the schema descriptor for day_of_week field.
	doctoravailabilityDescDayOfWeek := doctoravailabilityFields[1].Descriptor()
	// doctoravailability.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	doctoravailability.DayOfWeekValidator = func() func(int8) error {
		validators := doctoravailabilityDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctoravailabilityDescID is the schema descriptor for id field.
	doctoravailabilityDescID := doctoravailabilityMixinFields0[0].Descriptor()
	// doctoravailability.DefaultID holds the default value on creation for the id field.
	doctoravailability.DefaultID = doctoravailabilityDescID.Default.(func() uuid.UUID)
	medicalrecordMixin := schema.MedicalRecord{}.Mixin()
	medicalrecordMixinFields0 := medicalrecordMixin[0].Fields()
	_ = medicalrecordMixinFields0
	medicalrecordMixinFields1 := medicalrecordMixin[1].Fields()
	_ = medicalrecordMixinFields1
	medicalrecordFields := schema.MedicalRecord{}.Fields()
	_ = medicalrecordFields
	// medicalrecordDescCreatedAt is the schema descriptor for created_at field.
	medicalrecordDescCreatedAt := medicalrecordMixinFields1[0].Descriptor()
	// medicalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalrecord.DefaultCreatedAt = medicalrecordDescCreatedAt.Default.(func() time.Time)
	// medicalrecordDescDiagnosis is the schema descriptor for diagnosis field.
	medicalrecordDescDiagnosis := medicalrecordFields[1].Descriptor()
	// medicalrecord.DiagnosisValidator is a validator for the "diagnosis" field. It is called by the builders before save.
	medicalrecord.DiagnosisValidator = func() func(string) error {
		validators := medicalrecordDescDiagnosis.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(diagnosis string) error {
			for _, fn := range fns {
				if err := fn(diagnosis); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// medicalrecordDescID is the schema descriptor for id field.
	medicalrecordDescID := medicalrecordMixinFields0[0].Descriptor()
	// medicalrecord.DefaultID holds the default value on creation for the id field.
	medicalrecord.DefaultID = medicalrecordDescID.Default.(func() uuid.UUID)
	medicationMixin := schema.Medication{}.Mixin()
	medicationMixinFields0 := medicationMixin[0].Fields()
	_ = medicationMixinFields0
	medicationMixinFields1 := medicationMixin[1].Fields()
	_ = medicationMixinFields1
	medicationFields := schema.Medication{}.Fields()
	_ = medicationFields
	// medicationDescCreatedAt is the schema descriptor for created_at field.
	medicationDescCreatedAt := medicationMixinFields1[0].Descriptor()
	// medication.DefaultCreatedAt holds the default value on creation for the created_at field.
	medication.DefaultCreatedAt = medicationDescCreatedAt.Default.(func() time.Time)
	// medicationDescUpdatedAt is the schema descriptor for updated_at field.
	medicationDescUpdatedAt := medicationMixinFields1[1].Descriptor()
	// medication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medication.DefaultUpdatedAt = medicationDescUpdatedAt.Default.(func() time.Time)
	// medication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medication.UpdateDefaultUpdatedAt = medicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationDescName is the schema descriptor for name field.
	medicationDescName := medicationFields[1].Descriptor()
	// medication.NameValidator is a validator for the "name" field. It is called by the builders before save.
	medication.NameValidator = func() func(string) error {
		validators := medicationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// medicationDescID is the schema descriptor for id field.
	medicationDescID := medicationMixinFields0[0].Descriptor()
	// medication.DefaultID holds the default value on creation for the id field.
	medication.DefaultID = medicationDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[2].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[0].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = func() func(string) error {
		validators := patientDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[3].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescGender is the schema descriptor for gender field.
	patientDescGender := patientFields[5].Descriptor()
	// patient.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	patient.GenderValidator = patientDescGender.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescMedication is the schema descriptor for medication field.
	prescriptionDescMedication := prescriptionFields[2].Descriptor()
	// prescription.MedicationValidator is a validator for the "medication" field. It is called by the builders before save.
	prescription.MedicationValidator = func() func(string) error {
		validators := prescriptionDescMedication.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(medication string) error {
			for _, fn := range fns {
				if err := fn(medication); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescDosage is the schema descriptor for dosage field.
	prescriptionDescDosage := prescriptionFields[3].Descriptor()
	// prescription.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	prescription.DosageValidator = prescriptionDescDosage.Validators[0].(func(string) error)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	timeslotMixin := schema.TimeSlot{}.Mixin()
	timeslotMixinFields0 := timeslotMixin[0].Fields()
	_ = timeslotMixinFields0
	timeslotMixinFields1 := timeslotMixin[1].Fields()
	_ = timeslotMixinFields1
	timeslotFields := schema.TimeSlot{}.Fields()
	_ = timeslotFields
	// timeslotDescCreatedAt is the schema descriptor for created_at field.
	timeslotDescCreatedAt := timeslotMixinFields1[0].Descriptor()
	// timeslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeslot.DefaultCreatedAt = timeslotDescCreatedAt.Default.(func() time.Time)
	// timeslotDescUpdatedAt is the schema descriptor for updated_at field.
	timeslotDescUpdatedAt := timeslotMixinFields1[1].Descriptor()
	// timeslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeslot.DefaultUpdatedAt = timeslotDescUpdatedAt.Default.(func() time.Time)
	// timeslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeslot.UpdateDefaultUpdatedAt = timeslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeslotDescAvailable is the schema descriptor for available field.
	timeslotDescAvailable := timeslotFields[3].Descriptor()
	// timeslot.DefaultAvailable holds the default value on creation for the available field.
	timeslot.DefaultAvailable = timeslotDescAvailable.Default.(bool)
	// timeslotDescID is the schema descriptor for id field.
	timeslotDescID := timeslotMixinFields0[0].Descriptor()
	// timeslot.DefaultID holds the default value on creation for the id field.
	timeslot.DefaultID = timeslotDescID.Default.(func() uuid.UUID)
	treatmentplanMixin := schema.TreatmentPlan{}.Mixin()
	treatmentplanMixinFields0 := treatmentplanMixin[0].Fields()
	_ = treatmentplanMixinFields0
	treatmentplanMixinFields1 := treatmentplanMixin[1].Fields()
	_ = treatmentplanMixinFields1
	treatmentplanFields := schema.TreatmentPlan{}.Fields()
	_ = treatmentplanFields
	// treatmentplanDescCreatedAt is the schema descriptor for created_at field.
	treatmentplanDescCreatedAt := treatmentplanMixinFields1[0].Descriptor()
	// treatmentplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	treatmentplan.DefaultCreatedAt = treatmentplanDescCreatedAt.Default.(func() time.Time)
	// treatmentplanDescUpdatedAt is the schema descriptor for updated_at field.
	treatmentplanDescUpdatedAt := treatmentplanMixinFields1[1].Descriptor()
	// treatmentplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	treatmentplan.DefaultUpdatedAt = treatmentplanDescUpdatedAt.Default.(func() time.Time)
	// treatmentplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	treatmentplan.UpdateDefaultUpdatedAt = treatmentplanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// treatmentplanDescID is the schema descriptor for id field.
	treatmentplanDescID := treatmentplanMixinFields0[0].Descriptor()
	// treatmentplan.DefaultID holds the default value on creation for the id field.
	treatmentplan.DefaultID = treatmentplanDescID.Default.(func() uuid.UUID)
	vaccinationMixin := schema.Vaccination{}.Mixin()
	vaccinationMixinFields0 := vaccinationMixin[0].Fields()
	_ = vaccinationMixinFields0
	vaccinationMixinFields1 := vaccinationMixin[1].Fields()
	_ = vaccinationMixinFields1
	vaccinationFields := schema.Vaccination{}.Fields()
	_ = vaccinationFields
	// vaccinationDescCreatedAt is the schema descriptor for created_at field.
	vaccinationDescCreatedAt := vaccinationMixinFields1[0].Descriptor()
	// vaccination.DefaultCreatedAt holds the default value on creation for the created_at field.
	vaccination.DefaultCreatedAt = vaccinationDescCreatedAt.Default.(func() time.Time)
	// vaccinationDescVaccineName is the schema descriptor for vaccine_name field.
	vaccinationDescVaccineName := vaccinationFields[1].Descriptor()
	// vaccination.VaccineNameValidator is a validator for the "vaccine_name" field. It is called by the builders before save.
	vaccination.VaccineNameValidator = func() func(string) error {
		validators := vaccinationDescVaccineName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(vaccine_name string) error {
			for _, fn := range fns {
				if err := fn(vaccine_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vaccinationDescID is the schema descriptor for id field.
	vaccinationDescID := vaccinationMixinFields0[0].Descriptor()
	// vaccination.DefaultID holds the default value on creation for the id field.
	vaccination.DefaultID = vaccinationDescID.Default.(func() uuid.UUID)
}
