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
	"github.com/medora-health/medora_backend/internal/repo/treatmentplan"
)

// TreatmentPlanUpdate is the builder for updating TreatmentPlan entities.
type TreatmentPlanUpdate struct {
	config
	hooks    []Hook
	mutation *TreatmentPlanMutation
}

// Where appends a list predicates to the TreatmentPlanUpdate builder.
func (_u *TreatmentPlanUpdate) Where(ps ...predicate.TreatmentPlan) *TreatmentPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentPlanUpdate) SetUpdatedAt(v time.Time) *TreatmentPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentPlanUpdate) SetPatientID(v uuid.UUID) *TreatmentPlanUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentPlanUpdate) SetNillablePatientID(v *uuid.UUID) *TreatmentPlanUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentPlanUpdate) SetDoctorID(v uuid.UUID) *TreatmentPlanUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentPlanUpdate) SetNillableDoctorID(v *uuid.UUID) *TreatmentPlanUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TreatmentPlanUpdate) SetStartDate(v time.Time) *TreatmentPlanUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TreatmentPlanUpdate) SetNillableStartDate(v *time.Time) *TreatmentPlanUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *TreatmentPlanUpdate) SetEndDate(v time.Time) *TreatmentPlanUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *TreatmentPlanUpdate) SetNillableEndDate(v *time.Time) *TreatmentPlanUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *TreatmentPlanUpdate) ClearEndDate() *TreatmentPlanUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TreatmentPlanUpdate) SetDescription(v string) *TreatmentPlanUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TreatmentPlanUpdate) SetNillableDescription(v *string) *TreatmentPlanUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the TreatmentPlanMutation object of the builder.
func (_u *TreatmentPlanUpdate) Mutation() *TreatmentPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TreatmentPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TreatmentPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatmentplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TreatmentPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(treatmentplan.Table, treatmentplan.Columns, sqlgraph.NewFieldSpec(treatmentplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(treatmentplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(treatmentplan.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(treatmentplan.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(treatmentplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(treatmentplan.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(treatmentplan.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(treatmentplan.FieldDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatmentplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TreatmentPlanUpdateOne is the builder for updating a single TreatmentPlan entity.
type TreatmentPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TreatmentPlanMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentPlanUpdateOne) SetUpdatedAt(v time.Time) *TreatmentPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentPlanUpdateOne) SetPatientID(v uuid.UUID) *TreatmentPlanUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentPlanUpdateOne) SetNillablePatientID(v *uuid.UUID) *TreatmentPlanUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentPlanUpdateOne) SetDoctorID(v uuid.UUID) *TreatmentPlanUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentPlanUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TreatmentPlanUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TreatmentPlanUpdateOne) SetStartDate(v time.Time) *TreatmentPlanUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TreatmentPlanUpdateOne) SetNillableStartDate(v *time.Time) *TreatmentPlanUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *TreatmentPlanUpdateOne) SetEndDate(v time.Time) *TreatmentPlanUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *TreatmentPlanUpdateOne) SetNillableEndDate(v *time.Time) *TreatmentPlanUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *TreatmentPlanUpdateOne) ClearEndDate() *TreatmentPlanUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TreatmentPlanUpdateOne) SetDescription(v string) *TreatmentPlanUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TreatmentPlanUpdateOne) SetNillableDescription(v *string) *TreatmentPlanUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the TreatmentPlanMutation object of the builder.
func (_u *TreatmentPlanUpdateOne) Mutation() *TreatmentPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the TreatmentPlanUpdate builder.
func (_u *TreatmentPlanUpdateOne) Where(ps ...predicate.TreatmentPlan) *TreatmentPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TreatmentPlanUpdateOne) Select(field string, fields ...string) *TreatmentPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TreatmentPlan entity.
func (_u *TreatmentPlanUpdateOne) Save(ctx context.Context) (*TreatmentPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentPlanUpdateOne) SaveX(ctx context.Context) *TreatmentPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TreatmentPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatmentplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TreatmentPlanUpdateOne) sqlSave(ctx context.Context) (_node *TreatmentPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(treatmentplan.Table, treatmentplan.Columns, sqlgraph.NewFieldSpec(treatmentplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TreatmentPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, treatmentplan.FieldID)
		for _, f := range fields {
			if !treatmentplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != treatmentplan.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(treatmentplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(treatmentplan.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(treatmentplan.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(treatmentplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(treatmentplan.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(treatmentplan.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(treatmentplan.FieldDescription, field.TypeString, value)
	}
	_node = &TreatmentPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatmentplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
