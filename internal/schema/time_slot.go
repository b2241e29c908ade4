package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimeSlot is an advertised bookable block for a doctor. Slots are
// informational: booking an appointment marks the slot unavailable but
// conflict detection runs against appointments, not slots.
type TimeSlot struct {
	ent.Schema
}

func (TimeSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TimeSlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Bool("available").
			Default(true),
	}
}

func (TimeSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_time"),
		index.Fields("doctor_id", "available", "start_time"),
	}
}
