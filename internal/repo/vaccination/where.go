// Code generated by ent, DO NOT EDIT.

package vaccination

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldPatientID, v))
}

// VaccineName applies equality check predicate on the "vaccine_name" field. It's identical to VaccineNameEQ.
func VaccineName(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldVaccineName, v))
}

// DateGiven applies equality check predicate on the "date_given" field. It's identical to DateGivenEQ.
func DateGiven(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldDateGiven, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldPatientID, v))
}

// VaccineNameEQ applies the EQ predicate on the "vaccine_name" field.
func VaccineNameEQ(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldVaccineName, v))
}

// VaccineNameNEQ applies the NEQ predicate on the "vaccine_name" field.
func VaccineNameNEQ(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldVaccineName, v))
}

// VaccineNameIn applies the In predicate on the "vaccine_name" field.
func VaccineNameIn(vs ...string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldVaccineName, vs...))
}

// VaccineNameNotIn applies the NotIn predicate on the "vaccine_name" field.
func VaccineNameNotIn(vs ...string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldVaccineName, vs...))
}

// VaccineNameGT applies the GT predicate on the "vaccine_name" field.
func VaccineNameGT(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldVaccineName, v))
}

// VaccineNameGTE applies the GTE predicate on the "vaccine_name" field.
func VaccineNameGTE(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldVaccineName, v))
}

// VaccineNameLT applies the LT predicate on the "vaccine_name" field.
func VaccineNameLT(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldVaccineName, v))
}

// VaccineNameLTE applies the LTE predicate on the "vaccine_name" field.
func VaccineNameLTE(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldVaccineName, v))
}

// VaccineNameContains applies the Contains predicate on the "vaccine_name" field.
func VaccineNameContains(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldContains(FieldVaccineName, v))
}

// VaccineNameHasPrefix applies the HasPrefix predicate on the "vaccine_name" field.
func VaccineNameHasPrefix(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldHasPrefix(FieldVaccineName, v))
}

// VaccineNameHasSuffix applies the HasSuffix predicate on the "vaccine_name" field.
func VaccineNameHasSuffix(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldHasSuffix(FieldVaccineName, v))
}

// VaccineNameEqualFold applies the EqualFold predicate on the "vaccine_name" field.
func VaccineNameEqualFold(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEqualFold(FieldVaccineName, v))
}

// VaccineNameContainsFold applies the ContainsFold predicate on the "vaccine_name" field.
func VaccineNameContainsFold(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldContainsFold(FieldVaccineName, v))
}

// DateGivenEQ applies the EQ predicate on the "date_given" field.
func DateGivenEQ(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldDateGiven, v))
}

// DateGivenNEQ applies the NEQ predicate on the "date_given" field.
func DateGivenNEQ(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldDateGiven, v))
}

// DateGivenIn applies the In predicate on the "date_given" field.
func DateGivenIn(vs ...time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldDateGiven, vs...))
}

// DateGivenNotIn applies the NotIn predicate on the "date_given" field.
func DateGivenNotIn(vs ...time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldDateGiven, vs...))
}

// DateGivenGT applies the GT predicate on the "date_given" field.
func DateGivenGT(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldDateGiven, v))
}

// DateGivenGTE applies the GTE predicate on the "date_given" field.
func DateGivenGTE(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldDateGiven, v))
}

// DateGivenLT applies the LT predicate on the "date_given" field.
func DateGivenLT(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldDateGiven, v))
}

// DateGivenLTE applies the LTE predicate on the "date_given" field.
func DateGivenLTE(v time.Time) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldDateGiven, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Vaccination {
	return predicate.Vaccination(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Vaccination {
	return predicate.Vaccination(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Vaccination {
	return predicate.Vaccination(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vaccination) predicate.Vaccination {
	return predicate.Vaccination(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vaccination) predicate.Vaccination {
	return predicate.Vaccination(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vaccination) predicate.Vaccination {
	return predicate.Vaccination(sql.NotPredicates(p))
}
