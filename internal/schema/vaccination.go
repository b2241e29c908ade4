package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Vaccination records a vaccine administered to a patient.
type Vaccination struct {
	ent.Schema
}

func (Vaccination) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Vaccination) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("vaccine_name").
			MaxLen(200).
			NotEmpty(),

		field.Time("date_given"),

		field.Text("notes").
			Optional(),
	}
}

func (Vaccination) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "date_given"),
	}
}
