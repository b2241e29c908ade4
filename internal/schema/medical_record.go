package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalRecord is a diagnosis/treatment entry in a patient's history.
// Records are append-only.
type MedicalRecord struct {
	ent.Schema
}

func (MedicalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MedicalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("diagnosis").
			MaxLen(255).
			NotEmpty(),

		field.Text("treatment"),
	}
}

func (MedicalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
	}
}
