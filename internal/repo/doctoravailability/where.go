// Code generated by ent, DO NOT EDIT.

package doctoravailability

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDoctorID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartHour, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartMinute, v))
}

// EndHour applies equality check predicate on the "end_hour" field. It's identical to EndHourEQ.
func EndHour(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndHour, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndMinute, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldDoctorID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldStartHour, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldStartMinute, v))
}

// EndHourEQ applies the EQ predicate on the "end_hour" field.
func EndHourEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndHour, v))
}

// EndHourNEQ applies the NEQ predicate on the "end_hour" field.
func EndHourNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldEndHour, v))
}

// EndHourIn applies the In predicate on the "end_hour" field.
func EndHourIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldEndHour, vs...))
}

// EndHourNotIn applies the NotIn predicate on the "end_hour" field.
func EndHourNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldEndHour, vs...))
}

// EndHourGT applies the GT predicate on the "end_hour" field.
func EndHourGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldEndHour, v))
}

// EndHourGTE applies the GTE predicate on the "end_hour" field.
func EndHourGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldEndHour, v))
}

// EndHourLT applies the LT predicate on the "end_hour" field.
func EndHourLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldEndHour, v))
}

// EndHourLTE applies the LTE predicate on the "end_hour" field.
func EndHourLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldEndHour, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldEndMinute, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.NotPredicates(p))
}
