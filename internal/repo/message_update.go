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
	"github.com/medora-health/medora_backend/internal/repo/message"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSenderPatientID sets the "sender_patient_id" field.
func (_u *MessageUpdate) SetSenderPatientID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetSenderPatientID(v)
	return _u
}

// SetNillableSenderPatientID sets the "sender_patient_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderPatientID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetSenderPatientID(*v)
	}
	return _u
}

// ClearSenderPatientID clears the value of the "sender_patient_id" field.
func (_u *MessageUpdate) ClearSenderPatientID() *MessageUpdate {
	_u.mutation.ClearSenderPatientID()
	return _u
}

// SetSenderDoctorID sets the "sender_doctor_id" field.
func (_u *MessageUpdate) SetSenderDoctorID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetSenderDoctorID(v)
	return _u
}

// SetNillableSenderDoctorID sets the "sender_doctor_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderDoctorID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetSenderDoctorID(*v)
	}
	return _u
}

// ClearSenderDoctorID clears the value of the "sender_doctor_id" field.
func (_u *MessageUpdate) ClearSenderDoctorID() *MessageUpdate {
	_u.mutation.ClearSenderDoctorID()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "Message.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SenderPatientID(); ok {
		_spec.SetField(message.FieldSenderPatientID, field.TypeUUID, value)
	}
	if _u.mutation.SenderPatientIDCleared() {
		_spec.ClearField(message.FieldSenderPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SenderDoctorID(); ok {
		_spec.SetField(message.FieldSenderDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.SenderDoctorIDCleared() {
		_spec.ClearField(message.FieldSenderDoctorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetSenderPatientID sets the "sender_patient_id" field.
func (_u *MessageUpdateOne) SetSenderPatientID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetSenderPatientID(v)
	return _u
}

// SetNillableSenderPatientID sets the "sender_patient_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderPatientID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderPatientID(*v)
	}
	return _u
}

// ClearSenderPatientID clears the value of the "sender_patient_id" field.
func (_u *MessageUpdateOne) ClearSenderPatientID() *MessageUpdateOne {
	_u.mutation.ClearSenderPatientID()
	return _u
}

// SetSenderDoctorID sets the "sender_doctor_id" field.
func (_u *MessageUpdateOne) SetSenderDoctorID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetSenderDoctorID(v)
	return _u
}

// SetNillableSenderDoctorID sets the "sender_doctor_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderDoctorID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderDoctorID(*v)
	}
	return _u
}

// ClearSenderDoctorID clears the value of the "sender_doctor_id" field.
func (_u *MessageUpdateOne) ClearSenderDoctorID() *MessageUpdateOne {
	_u.mutation.ClearSenderDoctorID()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "Message.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.SenderPatientID(); ok {
		_spec.SetField(message.FieldSenderPatientID, field.TypeUUID, value)
	}
	if _u.mutation.SenderPatientIDCleared() {
		_spec.ClearField(message.FieldSenderPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SenderDoctorID(); ok {
		_spec.SetField(message.FieldSenderDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.SenderDoctorIDCleared() {
		_spec.ClearField(message.FieldSenderDoctorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
