package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription records a medication prescribed to a patient by a doctor.
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.String("medication").
			MaxLen(255).
			NotEmpty(),

		field.String("dosage").
			MaxLen(255),

		field.Text("instructions"),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id"),
	}
}
