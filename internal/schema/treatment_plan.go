package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TreatmentPlan is a longer-running course of care for a patient.
type TreatmentPlan struct {
	ent.Schema
}

func (TreatmentPlan) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TreatmentPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("start_date"),

		field.Time("end_date").
			Optional().
			Nillable().
			Comment("nil = open-ended plan"),

		field.Text("description"),
	}
}

func (TreatmentPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "start_date"),
	}
}
