package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Billing is a charge raised against a patient.
type Billing struct {
	ent.Schema
}

func (Billing) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Billing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Int64("amount_cents").
			Positive().
			Comment("Charge amount in minor currency units"),

		field.String("description").
			Optional().
			MaxLen(255),

		field.Bool("paid").
			Default(false),

		field.Time("paid_at").
			Optional().
			Nillable(),
	}
}

func (Billing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "paid"),
		index.Fields("patient_id", "created_at"),
	}
}
