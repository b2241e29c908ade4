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
	"github.com/medora-health/medora_backend/internal/repo/timeslot"
)

// TimeSlotUpdate is the builder for updating TimeSlot entities.
type TimeSlotUpdate struct {
	config
	hooks    []Hook
	mutation *TimeSlotMutation
}

// Where appends a list predicates to the TimeSlotUpdate builder.
func (_u *TimeSlotUpdate) Where(ps ...predicate.TimeSlot) *TimeSlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeSlotUpdate) SetUpdatedAt(v time.Time) *TimeSlotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TimeSlotUpdate) SetDoctorID(v uuid.UUID) *TimeSlotUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TimeSlotUpdate) SetNillableDoctorID(v *uuid.UUID) *TimeSlotUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeSlotUpdate) SetStartTime(v time.Time) *TimeSlotUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeSlotUpdate) SetNillableStartTime(v *time.Time) *TimeSlotUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeSlotUpdate) SetEndTime(v time.Time) *TimeSlotUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeSlotUpdate) SetNillableEndTime(v *time.Time) *TimeSlotUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetAvailable sets the "available" field.
func (_u *TimeSlotUpdate) SetAvailable(v bool) *TimeSlotUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *TimeSlotUpdate) SetNillableAvailable(v *bool) *TimeSlotUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// Mutation returns the TimeSlotMutation object of the builder.
func (_u *TimeSlotUpdate) Mutation() *TimeSlotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimeSlotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeSlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimeSlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeSlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeSlotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TimeSlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(timeslot.Table, timeslot.Columns, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(timeslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(timeslot.FieldAvailable, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimeSlotUpdateOne is the builder for updating a single TimeSlot entity.
type TimeSlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeSlotMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeSlotUpdateOne) SetUpdatedAt(v time.Time) *TimeSlotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TimeSlotUpdateOne) SetDoctorID(v uuid.UUID) *TimeSlotUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TimeSlotUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TimeSlotUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeSlotUpdateOne) SetStartTime(v time.Time) *TimeSlotUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeSlotUpdateOne) SetNillableStartTime(v *time.Time) *TimeSlotUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeSlotUpdateOne) SetEndTime(v time.Time) *TimeSlotUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeSlotUpdateOne) SetNillableEndTime(v *time.Time) *TimeSlotUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetAvailable sets the "available" field.
func (_u *TimeSlotUpdateOne) SetAvailable(v bool) *TimeSlotUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *TimeSlotUpdateOne) SetNillableAvailable(v *bool) *TimeSlotUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// Mutation returns the TimeSlotMutation object of the builder.
func (_u *TimeSlotUpdateOne) Mutation() *TimeSlotMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimeSlotUpdate builder.
func (_u *TimeSlotUpdateOne) Where(ps ...predicate.TimeSlot) *TimeSlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimeSlotUpdateOne) Select(field string, fields ...string) *TimeSlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimeSlot entity.
func (_u *TimeSlotUpdateOne) Save(ctx context.Context) (*TimeSlot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeSlotUpdateOne) SaveX(ctx context.Context) *TimeSlot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimeSlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeSlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeSlotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TimeSlotUpdateOne) sqlSave(ctx context.Context) (_node *TimeSlot, err error) {
	_spec := sqlgraph.NewUpdateSpec(timeslot.Table, timeslot.Columns, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TimeSlot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeslot.FieldID)
		for _, f := range fields {
			if !timeslot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != timeslot.FieldID {
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
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(timeslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(timeslot.FieldAvailable, field.TypeBool, value)
	}
	_node = &TimeSlot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
