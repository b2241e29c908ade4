package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is a note sent between a patient and a doctor. Exactly one of
// sender_patient_id / sender_doctor_id is set.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("sender_patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → patients.id"),

		field.UUID("sender_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id"),

		field.Text("content").
			NotEmpty(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sender_patient_id", "created_at"),
		index.Fields("sender_doctor_id", "created_at"),
	}
}
