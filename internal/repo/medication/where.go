// Code generated by ent, DO NOT EDIT.

package medication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// DosageInstructions applies equality check predicate on the "dosage_instructions" field. It's identical to DosageInstructionsEQ.
func DosageInstructions(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDosageInstructions, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldEndDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldPatientID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldName, v))
}

// DosageInstructionsEQ applies the EQ predicate on the "dosage_instructions" field.
func DosageInstructionsEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldDosageInstructions, v))
}

// DosageInstructionsNEQ applies the NEQ predicate on the "dosage_instructions" field.
func DosageInstructionsNEQ(v string) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldDosageInstructions, v))
}

// DosageInstructionsIn applies the In predicate on the "dosage_instructions" field.
func DosageInstructionsIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldDosageInstructions, vs...))
}

// DosageInstructionsNotIn applies the NotIn predicate on the "dosage_instructions" field.
func DosageInstructionsNotIn(vs ...string) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldDosageInstructions, vs...))
}

// DosageInstructionsGT applies the GT predicate on the "dosage_instructions" field.
func DosageInstructionsGT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldDosageInstructions, v))
}

// DosageInstructionsGTE applies the GTE predicate on the "dosage_instructions" field.
func DosageInstructionsGTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldDosageInstructions, v))
}

// DosageInstructionsLT applies the LT predicate on the "dosage_instructions" field.
func DosageInstructionsLT(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldDosageInstructions, v))
}

// DosageInstructionsLTE applies the LTE predicate on the "dosage_instructions" field.
func DosageInstructionsLTE(v string) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldDosageInstructions, v))
}

// DosageInstructionsContains applies the Contains predicate on the "dosage_instructions" field.
func DosageInstructionsContains(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContains(FieldDosageInstructions, v))
}

// DosageInstructionsHasPrefix applies the HasPrefix predicate on the "dosage_instructions" field.
func DosageInstructionsHasPrefix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasPrefix(FieldDosageInstructions, v))
}

// DosageInstructionsHasSuffix applies the HasSuffix predicate on the "dosage_instructions" field.
func DosageInstructionsHasSuffix(v string) predicate.Medication {
	return predicate.Medication(sql.FieldHasSuffix(FieldDosageInstructions, v))
}

// DosageInstructionsEqualFold applies the EqualFold predicate on the "dosage_instructions" field.
func DosageInstructionsEqualFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldEqualFold(FieldDosageInstructions, v))
}

// DosageInstructionsContainsFold applies the ContainsFold predicate on the "dosage_instructions" field.
func DosageInstructionsContainsFold(v string) predicate.Medication {
	return predicate.Medication(sql.FieldContainsFold(FieldDosageInstructions, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldStartDate))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Medication {
	return predicate.Medication(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Medication {
	return predicate.Medication(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Medication {
	return predicate.Medication(sql.FieldNotNull(FieldEndDate))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Medication) predicate.Medication {
	return predicate.Medication(sql.NotPredicates(p))
}
