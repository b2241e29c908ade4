// Code generated by ent, DO NOT EDIT.

package vaccination

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vaccination type in the database.
	Label = "vaccination"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldVaccineName holds the string denoting the vaccine_name field in the database.
	FieldVaccineName = "vaccine_name"
	// FieldDateGiven holds the string denoting the date_given field in the database.
	FieldDateGiven = "date_given"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the vaccination in the database.
	Table = "vaccinations"
)

// Columns holds all SQL columns for vaccination fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldVaccineName,
	FieldDateGiven,
	FieldNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// VaccineNameValidator is a validator for the "vaccine_name" field. It is called by the builders before save.
	VaccineNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Vaccination queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByVaccineName orders the results by the vaccine_name field.
func ByVaccineName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVaccineName, opts...).ToFunc()
}

// ByDateGiven orders the results by the date_given field.
func ByDateGiven(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateGiven, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
