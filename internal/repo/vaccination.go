// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/vaccination"
)

// Vaccination is the model entity for the Vaccination schema.
type Vaccination struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// VaccineName holds the value of the "vaccine_name" field.
	VaccineName string `json:"vaccine_name,omitempty"`
	// DateGiven holds the value of the "date_given" field.
	DateGiven time.Time `json:"date_given,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vaccination) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vaccination.FieldVaccineName, vaccination.FieldNotes:
			values[i] = new(sql.NullString)
		case vaccination.FieldCreatedAt, vaccination.FieldDateGiven:
			values[i] = new(sql.NullTime)
		case vaccination.FieldID, vaccination.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vaccination fields.
func (_m *Vaccination) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vaccination.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vaccination.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vaccination.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case vaccination.FieldVaccineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vaccine_name", values[i])
			} else if value.Valid {
				_m.VaccineName = value.String
			}
		case vaccination.FieldDateGiven:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_given", values[i])
			} else if value.Valid {
				_m.DateGiven = value.Time
			}
		case vaccination.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vaccination.
// This includes values selected through modifiers, order, etc.
func (_m *Vaccination) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Vaccination.
// Note that you need to call Vaccination.Unwrap() before calling this method if this Vaccination
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vaccination) Update() *VaccinationUpdateOne {
	return NewVaccinationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vaccination entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vaccination) Unwrap() *Vaccination {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Vaccination is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vaccination) String() string {
	var builder strings.Builder
	builder.WriteString("Vaccination(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("vaccine_name=")
	builder.WriteString(_m.VaccineName)
	builder.WriteString(", ")
	builder.WriteString("date_given=")
	builder.WriteString(_m.DateGiven.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Vaccinations is a parsable slice of Vaccination.
type Vaccinations []*Vaccination
