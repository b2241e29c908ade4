package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Medication is an ongoing medication a patient is taking, as opposed to a
// Prescription which is the one-off act of prescribing.
type Medication struct {
	ent.Schema
}

func (Medication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Medication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("name").
			MaxLen(200).
			NotEmpty(),

		field.Text("dosage_instructions"),

		field.Time("start_date").
			Optional().
			Nillable(),

		field.Time("end_date").
			Optional().
			Nillable(),
	}
}

func (Medication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
