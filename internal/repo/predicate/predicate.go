// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Billing is the predicate function for billing builders.
type Billing func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// DoctorAvailability is the predicate function for doctoravailability builders.
type DoctorAvailability func(*sql.Selector)

// MedicalRecord is the predicate function for medicalrecord builders.
type MedicalRecord func(*sql.Selector)

// Medication is the predicate function for medication builders.
type Medication func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// TimeSlot is the predicate function for timeslot builders.
type TimeSlot func(*sql.Selector)

// TreatmentPlan is the predicate function for treatmentplan builders.
type TreatmentPlan func(*sql.Selector)

// Vaccination is the predicate function for vaccination builders.
type Vaccination func(*sql.Selector)
