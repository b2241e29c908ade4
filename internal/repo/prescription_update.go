// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
	"github.com/medora-health/medora_backend/internal/repo/prescription"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdate) SetDoctorID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetMedication sets the "medication" field.
func (_u *PrescriptionUpdate) SetMedication(v string) *PrescriptionUpdate {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMedication(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdate) SetDosage(v string) *PrescriptionUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDosage(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdate) SetInstructions(v string) *PrescriptionUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableInstructions(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.Medication(); ok {
		if err := prescription.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(prescription.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdateOne) SetDoctorID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetMedication sets the "medication" field.
func (_u *PrescriptionUpdateOne) SetMedication(v string) *PrescriptionUpdateOne {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMedication(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdateOne) SetDosage(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDosage(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdateOne) SetInstructions(v string) *PrescriptionUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableInstructions(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Medication(); ok {
		if err := prescription.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(prescription.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
