// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
	"github.com/medora-health/medora_backend/internal/repo/vaccination"
)

// VaccinationUpdate is the builder for updating Vaccination entities.
type VaccinationUpdate struct {
	config
	hooks    []Hook
	mutation *VaccinationMutation
}

// Where appends a list predicates to the VaccinationUpdate builder.
func (_u *VaccinationUpdate) Where(ps ...predicate.Vaccination) *VaccinationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VaccinationUpdate) SetPatientID(v uuid.UUID) *VaccinationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VaccinationUpdate) SetNillablePatientID(v *uuid.UUID) *VaccinationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVaccineName sets the "vaccine_name" field.
func (_u *VaccinationUpdate) SetVaccineName(v string) *VaccinationUpdate {
	_u.mutation.SetVaccineName(v)
	return _u
}

// SetNillableVaccineName sets the "vaccine_name" field if the given value is not nil.
func (_u *VaccinationUpdate) SetNillableVaccineName(v *string) *VaccinationUpdate {
	if v != nil {
		_u.SetVaccineName(*v)
	}
	return _u
}

// SetDateGiven sets the "date_given" field.
func (_u *VaccinationUpdate) SetDateGiven(v time.Time) *VaccinationUpdate {
	_u.mutation.SetDateGiven(v)
	return _u
}

// SetNillableDateGiven sets the "date_given" field if the given value is not nil.
func (_u *VaccinationUpdate) SetNillableDateGiven(v *time.Time) *VaccinationUpdate {
	if v != nil {
		_u.SetDateGiven(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VaccinationUpdate) SetNotes(v string) *VaccinationUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VaccinationUpdate) SetNillableNotes(v *string) *VaccinationUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VaccinationUpdate) ClearNotes() *VaccinationUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the VaccinationMutation object of the builder.
func (_u *VaccinationUpdate) Mutation() *VaccinationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VaccinationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VaccinationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VaccinationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VaccinationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VaccinationUpdate) check() error {
	if v, ok := _u.mutation.VaccineName(); ok {
		if err := vaccination.VaccineNameValidator(v); err != nil {
			return &ValidationError{Name: "vaccine_name", err: fmt.Errorf(`repo: validator failed for field "Vaccination.vaccine_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VaccinationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vaccination.Table, vaccination.Columns, sqlgraph.NewFieldSpec(vaccination.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(vaccination.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VaccineName(); ok {
		_spec.SetField(vaccination.FieldVaccineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateGiven(); ok {
		_spec.SetField(vaccination.FieldDateGiven, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(vaccination.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(vaccination.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vaccination.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VaccinationUpdateOne is the builder for updating a single Vaccination entity.
type VaccinationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VaccinationMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *VaccinationUpdateOne) SetPatientID(v uuid.UUID) *VaccinationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VaccinationUpdateOne) SetNillablePatientID(v *uuid.UUID) *VaccinationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetVaccineName sets the "vaccine_name" field.
func (_u *VaccinationUpdateOne) SetVaccineName(v string) *VaccinationUpdateOne {
	_u.mutation.SetVaccineName(v)
	return _u
}

// SetNillableVaccineName sets the "vaccine_name" field if the given value is not nil.
func (_u *VaccinationUpdateOne) SetNillableVaccineName(v *string) *VaccinationUpdateOne {
	if v != nil {
		_u.SetVaccineName(*v)
	}
	return _u
}

// SetDateGiven sets the "date_given" field.
func (_u *VaccinationUpdateOne) SetDateGiven(v time.Time) *VaccinationUpdateOne {
	_u.mutation.SetDateGiven(v)
	return _u
}

// SetNillableDateGiven sets the "date_given" field if the given value is not nil.
func (_u *VaccinationUpdateOne) SetNillableDateGiven(v *time.Time) *VaccinationUpdateOne {
	if v != nil {
		_u.SetDateGiven(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VaccinationUpdateOne) SetNotes(v string) *VaccinationUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VaccinationUpdateOne) SetNillableNotes(v *string) *VaccinationUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VaccinationUpdateOne) ClearNotes() *VaccinationUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the VaccinationMutation object of the builder.
func (_u *VaccinationUpdateOne) Mutation() *VaccinationMutation {
	return _u.mutation
}

// Where appends a list predicates to the VaccinationUpdate builder.
func (_u *VaccinationUpdateOne) Where(ps ...predicate.Vaccination) *VaccinationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VaccinationUpdateOne) Select(field string, fields ...string) *VaccinationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vaccination entity.
func (_u *VaccinationUpdateOne) Save(ctx context.Context) (*Vaccination, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VaccinationUpdateOne) SaveX(ctx context.Context) *Vaccination {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VaccinationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VaccinationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VaccinationUpdateOne) check() error {
	if v, ok := _u.mutation.VaccineName(); ok {
		if err := vaccination.VaccineNameValidator(v); err != nil {
			return &ValidationError{Name: "vaccine_name", err: fmt.Errorf(`repo: validator failed for field "Vaccination.vaccine_name": %w`, err)}
		}
	}
	return nil
}

func (_u *VaccinationUpdateOne) sqlSave(ctx context.Context) (_node *Vaccination, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vaccination.Table, vaccination.Columns, sqlgraph.NewFieldSpec(vaccination.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Vaccination.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vaccination.FieldID)
		for _, f := range fields {
			if !vaccination.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != vaccination.FieldID {
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
		_spec.SetField(vaccination.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VaccineName(); ok {
		_spec.SetField(vaccination.FieldVaccineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateGiven(); ok {
		_spec.SetField(vaccination.FieldDateGiven, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(vaccination.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(vaccination.FieldNotes, field.TypeString)
	}
	_node = &Vaccination{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vaccination.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
