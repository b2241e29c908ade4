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
	"github.com/medora-health/medora_backend/internal/repo/medicalrecord"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// MedicalRecordUpdate is the builder for updating MedicalRecord entities.
type MedicalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalRecordMutation
}

// Where appends a list predicates to the MedicalRecordUpdate builder.
func (_u *MedicalRecordUpdate) Where(ps ...predicate.MedicalRecord) *MedicalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRecordUpdate) SetPatientID(v uuid.UUID) *MedicalRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *MedicalRecordUpdate) SetDiagnosis(v string) *MedicalRecordUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableDiagnosis(v *string) *MedicalRecordUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" field.
func (_u *MedicalRecordUpdate) SetTreatment(v string) *MedicalRecordUpdate {
	_u.mutation.SetTreatment(v)
	return _u
}

// SetNillableTreatment sets the "treatment" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableTreatment(v *string) *MedicalRecordUpdate {
	if v != nil {
		_u.SetTreatment(*v)
	}
	return _u
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_u *MedicalRecordUpdate) Mutation() *MedicalRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRecordUpdate) check() error {
	if v, ok := _u.mutation.Diagnosis(); ok {
		if err := medicalrecord.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrecord.Table, medicalrecord.Columns, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(medicalrecord.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Treatment(); ok {
		_spec.SetField(medicalrecord.FieldTreatment, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalRecordUpdateOne is the builder for updating a single MedicalRecord entity.
type MedicalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalRecordMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRecordUpdateOne) SetPatientID(v uuid.UUID) *MedicalRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *MedicalRecordUpdateOne) SetDiagnosis(v string) *MedicalRecordUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableDiagnosis(v *string) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" field.
func (_u *MedicalRecordUpdateOne) SetTreatment(v string) *MedicalRecordUpdateOne {
	_u.mutation.SetTreatment(v)
	return _u
}

// SetNillableTreatment sets the "treatment" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableTreatment(v *string) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetTreatment(*v)
	}
	return _u
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_u *MedicalRecordUpdateOne) Mutation() *MedicalRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicalRecordUpdate builder.
func (_u *MedicalRecordUpdateOne) Where(ps ...predicate.MedicalRecord) *MedicalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalRecordUpdateOne) Select(field string, fields ...string) *MedicalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalRecord entity.
func (_u *MedicalRecordUpdateOne) Save(ctx context.Context) (*MedicalRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRecordUpdateOne) SaveX(ctx context.Context) *MedicalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Diagnosis(); ok {
		if err := medicalrecord.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.diagnosis": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalRecordUpdateOne) sqlSave(ctx context.Context) (_node *MedicalRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrecord.Table, medicalrecord.Columns, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalrecord.FieldID)
		for _, f := range fields {
			if !medicalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalrecord.FieldID {
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
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(medicalrecord.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Treatment(); ok {
		_spec.SetField(medicalrecord.FieldTreatment, field.TypeString, value)
	}
	_node = &MedicalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
