package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Department groups doctors by clinical specialty.
type Department struct {
	ent.Schema
}

func (Department) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			Unique(),

		field.Text("description").
			Optional(),
	}
}

func (Department) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("doctors", Doctor.Type),
	}
}
