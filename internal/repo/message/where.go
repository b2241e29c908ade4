// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// SenderPatientID applies equality check predicate on the "sender_patient_id" field. It's identical to SenderPatientIDEQ.
func SenderPatientID(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderPatientID, v))
}

// SenderDoctorID applies equality check predicate on the "sender_doctor_id" field. It's identical to SenderDoctorIDEQ.
func SenderDoctorID(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderDoctorID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// SenderPatientIDEQ applies the EQ predicate on the "sender_patient_id" field.
func SenderPatientIDEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderPatientID, v))
}

// SenderPatientIDNEQ applies the NEQ predicate on the "sender_patient_id" field.
func SenderPatientIDNEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderPatientID, v))
}

// SenderPatientIDIn applies the In predicate on the "sender_patient_id" field.
func SenderPatientIDIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderPatientID, vs...))
}

// SenderPatientIDNotIn applies the NotIn predicate on the "sender_patient_id" field.
func SenderPatientIDNotIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderPatientID, vs...))
}

// SenderPatientIDGT applies the GT predicate on the "sender_patient_id" field.
func SenderPatientIDGT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderPatientID, v))
}

// SenderPatientIDGTE applies the GTE predicate on the "sender_patient_id" field.
func SenderPatientIDGTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderPatientID, v))
}

// SenderPatientIDLT applies the LT predicate on the "sender_patient_id" field.
func SenderPatientIDLT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderPatientID, v))
}

// SenderPatientIDLTE applies the LTE predicate on the "sender_patient_id" field.
func SenderPatientIDLTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderPatientID, v))
}

// SenderPatientIDIsNil applies the IsNil predicate on the "sender_patient_id" field.
func SenderPatientIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSenderPatientID))
}

// SenderPatientIDNotNil applies the NotNil predicate on the "sender_patient_id" field.
func SenderPatientIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSenderPatientID))
}

// SenderDoctorIDEQ applies the EQ predicate on the "sender_doctor_id" field.
func SenderDoctorIDEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderDoctorID, v))
}

// SenderDoctorIDNEQ applies the NEQ predicate on the "sender_doctor_id" field.
func SenderDoctorIDNEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderDoctorID, v))
}

// SenderDoctorIDIn applies the In predicate on the "sender_doctor_id" field.
func SenderDoctorIDIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderDoctorID, vs...))
}

// SenderDoctorIDNotIn applies the NotIn predicate on the "sender_doctor_id" field.
func SenderDoctorIDNotIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderDoctorID, vs...))
}

// SenderDoctorIDGT applies the GT predicate on the "sender_doctor_id" field.
func SenderDoctorIDGT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderDoctorID, v))
}

// SenderDoctorIDGTE applies the GTE predicate on the "sender_doctor_id" field.
func SenderDoctorIDGTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderDoctorID, v))
}

// SenderDoctorIDLT applies the LT predicate on the "sender_doctor_id" field.
func SenderDoctorIDLT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderDoctorID, v))
}

// SenderDoctorIDLTE applies the LTE predicate on the "sender_doctor_id" field.
func SenderDoctorIDLTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderDoctorID, v))
}

// SenderDoctorIDIsNil applies the IsNil predicate on the "sender_doctor_id" field.
func SenderDoctorIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSenderDoctorID))
}

// SenderDoctorIDNotNil applies the NotNil predicate on the "sender_doctor_id" field.
func SenderDoctorIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSenderDoctorID))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
