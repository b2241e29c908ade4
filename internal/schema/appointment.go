package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a doctor and a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("time_slot_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Snapshot ref to time_slots.id; not a FK so slots can be deleted"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Int("duration_minutes").
			Default(30).
			Positive(),

		field.Enum("status").
			Values("scheduled", "confirmed", "completed", "cancelled").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_time"),
		index.Fields("doctor_id", "status", "start_time"),
		index.Fields("patient_id", "status"),
	}
}
