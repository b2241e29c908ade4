// Code generated by ent, DO NOT EDIT.

package medicalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldPatientID, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldDiagnosis, v))
}

// Treatment applies equality check predicate on the "treatment" field. It's identical to TreatmentEQ.
func Treatment(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldTreatment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLTE(FieldPatientID, v))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldContainsFold(FieldDiagnosis, v))
}

// TreatmentEQ applies the EQ predicate on the "treatment" field.
func TreatmentEQ(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEQ(FieldTreatment, v))
}

// TreatmentNEQ applies the NEQ predicate on the "treatment" field.
func TreatmentNEQ(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNEQ(FieldTreatment, v))
}

// TreatmentIn applies the In predicate on the "treatment" field.
func TreatmentIn(vs ...string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldIn(FieldTreatment, vs...))
}

// TreatmentNotIn applies the NotIn predicate on the "treatment" field.
func TreatmentNotIn(vs ...string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldNotIn(FieldTreatment, vs...))
}

// TreatmentGT applies the GT predicate on the "treatment" field.
func TreatmentGT(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGT(FieldTreatment, v))
}

// TreatmentGTE applies the GTE predicate on the "treatment" field.
func TreatmentGTE(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldGTE(FieldTreatment, v))
}

// TreatmentLT applies the LT predicate on the "treatment" field.
func TreatmentLT(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLT(FieldTreatment, v))
}

// TreatmentLTE applies the LTE predicate on the "treatment" field.
func TreatmentLTE(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldLTE(FieldTreatment, v))
}

// TreatmentContains applies the Contains predicate on the "treatment" field.
func TreatmentContains(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldContains(FieldTreatment, v))
}

// TreatmentHasPrefix applies the HasPrefix predicate on the "treatment" field.
func TreatmentHasPrefix(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldHasPrefix(FieldTreatment, v))
}

// TreatmentHasSuffix applies the HasSuffix predicate on the "treatment" field.
func TreatmentHasSuffix(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldHasSuffix(FieldTreatment, v))
}

// TreatmentEqualFold applies the EqualFold predicate on the "treatment" field.
func TreatmentEqualFold(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldEqualFold(FieldTreatment, v))
}

// TreatmentContainsFold applies the ContainsFold predicate on the "treatment" field.
func TreatmentContainsFold(v string) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.FieldContainsFold(FieldTreatment, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalRecord) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalRecord) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalRecord) predicate.MedicalRecord {
	return predicate.MedicalRecord(sql.NotPredicates(p))
}
