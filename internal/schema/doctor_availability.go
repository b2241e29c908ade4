package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorAvailability defines a weekly recurring working window for a doctor.
type DoctorAvailability struct {
	ent.Schema
}

func (DoctorAvailability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorAvailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Monday … 6=Sunday"),

		field.Int8("start_hour"),

		field.Int8("start_minute"),

		field.Int8("end_hour"),

		field.Int8("end_minute"),
	}
}

func (DoctorAvailability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day_of_week"),
	}
}
