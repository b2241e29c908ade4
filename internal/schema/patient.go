package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is a person receiving care at the clinic.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			NotEmpty(),

		field.Time("date_of_birth"),

		field.Text("address"),

		field.String("email").
			Optional().
			MaxLen(255),

		field.String("phone").
			Optional().
			MaxLen(30).
			Comment("E.164 formatted, validated at the service layer"),

		field.String("gender").
			Optional().
			MaxLen(20),

		field.Time("last_visit").
			Optional().
			Nillable().
			Comment("Date of the most recent completed appointment"),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("phone"),
	}
}
