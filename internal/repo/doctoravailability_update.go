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
	"github.com/medora-health/medora_backend/internal/repo/doctoravailability"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// DoctorAvailabilityUpdate is the builder for updating DoctorAvailability entities.
type DoctorAvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdate) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorAvailabilityUpdate) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdate) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DoctorAvailabilityUpdate) SetDayOfWeek(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDayOfWeek(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DoctorAvailabilityUpdate) AddDayOfWeek(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DoctorAvailabilityUpdate) SetStartHour(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableStartHour(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DoctorAvailabilityUpdate) AddStartHour(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *DoctorAvailabilityUpdate) SetStartMinute(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableStartMinute(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *DoctorAvailabilityUpdate) AddStartMinute(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *DoctorAvailabilityUpdate) SetEndHour(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableEndHour(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *DoctorAvailabilityUpdate) AddEndHour(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *DoctorAvailabilityUpdate) SetEndMinute(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableEndMinute(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *DoctorAvailabilityUpdate) AddEndMinute(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdate) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorAvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorAvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorAvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctoravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := doctoravailability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.day_of_week": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorAvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctoravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctoravailability.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(doctoravailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(doctoravailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(doctoravailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(doctoravailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(doctoravailability.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(doctoravailability.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(doctoravailability.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(doctoravailability.FieldEndMinute, field.TypeInt8, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorAvailabilityUpdateOne is the builder for updating a single DoctorAvailability entity.
type DoctorAvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorAvailabilityUpdateOne) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdateOne) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DoctorAvailabilityUpdateOne) SetDayOfWeek(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDayOfWeek(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DoctorAvailabilityUpdateOne) AddDayOfWeek(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DoctorAvailabilityUpdateOne) SetStartHour(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableStartHour(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DoctorAvailabilityUpdateOne) AddStartHour(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *DoctorAvailabilityUpdateOne) SetStartMinute(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableStartMinute(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *DoctorAvailabilityUpdateOne) AddStartMinute(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *DoctorAvailabilityUpdateOne) SetEndHour(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableEndHour(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *DoctorAvailabilityUpdateOne) AddEndHour(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *DoctorAvailabilityUpdateOne) SetEndMinute(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableEndMinute(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *DoctorAvailabilityUpdateOne) AddEndMinute(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdateOne) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdateOne) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorAvailabilityUpdateOne) Select(field string, fields ...string) *DoctorAvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorAvailability entity.
func (_u *DoctorAvailabilityUpdateOne) Save(ctx context.Context) (*DoctorAvailability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) SaveX(ctx context.Context) *DoctorAvailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorAvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorAvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctoravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := doctoravailability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.day_of_week": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorAvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *DoctorAvailability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorAvailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctoravailability.FieldID)
		for _, f := range fields {
			if !doctoravailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctoravailability.FieldID {
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
		_spec.SetField(doctoravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctoravailability.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(doctoravailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(doctoravailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(doctoravailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(doctoravailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(doctoravailability.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(doctoravailability.FieldEndHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(doctoravailability.FieldEndMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(doctoravailability.FieldEndMinute, field.TypeInt8, value)
	}
	_node = &DoctorAvailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
