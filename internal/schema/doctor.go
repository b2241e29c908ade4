package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a practitioner who can hold appointments.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			NotEmpty(),

		field.String("specialization").
			MaxLen(100),

		field.Int("experience_years").
			Default(0).
			Min(0),

		field.Text("bio").
			Optional(),

		field.UUID("department_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → departments.id"),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("department", Department.Type).
			Ref("doctors").
			Unique().
			Field("department_id"),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialization"),
		index.Fields("department_id"),
	}
}
