// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/doctoravailability"
)

// DoctorAvailability is the model entity for the DoctorAvailability schema.
type DoctorAvailability struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// 0=Monday … 6=Sunday
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// StartHour holds the value of the "start_hour" field.
	StartHour int8 `json:"start_hour,omitempty"`
	// StartMinute holds the value of the "start_minute" field.
	StartMinute int8 `json:"start_minute,omitempty"`
	// EndHour holds the value of the "end_hour" field.
	EndHour int8 `json:"end_hour,omitempty"`
	// EndMinute holds the value of the "end_minute" field.
	EndMinute    int8 `json:"end_minute,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorAvailability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctoravailability.FieldDayOfWeek, doctoravailability.FieldStartHour, doctoravailability.FieldStartMinute, doctoravailability.FieldEndHour, doctoravailability.FieldEndMinute:
			values[i] = new(sql.NullInt64)
		case doctoravailability.FieldCreatedAt, doctoravailability.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctoravailability.FieldID, doctoravailability.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorAvailability fields.
func (_m *DoctorAvailability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctoravailability.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctoravailability.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctoravailability.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctoravailability.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctoravailability.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case doctoravailability.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int8(value.Int64)
			}
		case doctoravailability.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int8(value.Int64)
			}
		case doctoravailability.FieldEndHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_hour", values[i])
			} else if value.Valid {
				_m.EndHour = int8(value.Int64)
			}
		case doctoravailability.FieldEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_minute", values[i])
			} else if value.Valid {
				_m.EndMinute = int8(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorAvailability.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorAvailability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DoctorAvailability.
// Note that you need to call DoctorAvailability.Unwrap() before calling this method if this DoctorAvailability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorAvailability) Update() *DoctorAvailabilityUpdateOne {
	return NewDoctorAvailabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorAvailability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorAvailability) Unwrap() *DoctorAvailability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorAvailability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorAvailability) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorAvailability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartHour))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("end_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndHour))
	builder.WriteString(", ")
	builder.WriteString("end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMinute))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorAvailabilities is a parsable slice of DoctorAvailability.
type DoctorAvailabilities []*DoctorAvailability
