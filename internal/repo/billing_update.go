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
	"github.com/medora-health/medora_backend/internal/repo/billing"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// BillingUpdate is the builder for updating Billing entities.
type BillingUpdate struct {
	config
	hooks    []Hook
	mutation *BillingMutation
}

// Where appends a list predicates to the BillingUpdate builder.
func (_u *BillingUpdate) Where(ps ...predicate.Billing) *BillingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *BillingUpdate) SetPatientID(v uuid.UUID) *BillingUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *BillingUpdate) SetNillablePatientID(v *uuid.UUID) *BillingUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *BillingUpdate) SetAmountCents(v int64) *BillingUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableAmountCents(v *int64) *BillingUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *BillingUpdate) AddAmountCents(v int64) *BillingUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillingUpdate) SetDescription(v string) *BillingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillingUpdate) SetNillableDescription(v *string) *BillingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillingUpdate) ClearDescription() *BillingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *BillingUpdate) SetPaid(v bool) *BillingUpdate {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *BillingUpdate) SetNillablePaid(v *bool) *BillingUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *BillingUpdate) SetPaidAt(v time.Time) *BillingUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *BillingUpdate) SetNillablePaidAt(v *time.Time) *BillingUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *BillingUpdate) ClearPaidAt() *BillingUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// Mutation returns the BillingMutation object of the builder.
func (_u *BillingUpdate) Mutation() *BillingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUpdate) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := billing.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Billing.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := billing.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "Billing.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billing.Table, billing.Columns, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(billing.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(billing.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(billing.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(billing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(billing.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(billing.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(billing.FieldPaidAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingUpdateOne is the builder for updating a single Billing entity.
type BillingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *BillingUpdateOne) SetPatientID(v uuid.UUID) *BillingUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillablePatientID(v *uuid.UUID) *BillingUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *BillingUpdateOne) SetAmountCents(v int64) *BillingUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableAmountCents(v *int64) *BillingUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *BillingUpdateOne) AddAmountCents(v int64) *BillingUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillingUpdateOne) SetDescription(v string) *BillingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillableDescription(v *string) *BillingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillingUpdateOne) ClearDescription() *BillingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *BillingUpdateOne) SetPaid(v bool) *BillingUpdateOne {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillablePaid(v *bool) *BillingUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *BillingUpdateOne) SetPaidAt(v time.Time) *BillingUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *BillingUpdateOne) SetNillablePaidAt(v *time.Time) *BillingUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *BillingUpdateOne) ClearPaidAt() *BillingUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// Mutation returns the BillingMutation object of the builder.
func (_u *BillingUpdateOne) Mutation() *BillingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillingUpdate builder.
func (_u *BillingUpdateOne) Where(ps ...predicate.Billing) *BillingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingUpdateOne) Select(field string, fields ...string) *BillingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Billing entity.
func (_u *BillingUpdateOne) Save(ctx context.Context) (*Billing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingUpdateOne) SaveX(ctx context.Context) *Billing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingUpdateOne) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := billing.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Billing.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := billing.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "Billing.description": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingUpdateOne) sqlSave(ctx context.Context) (_node *Billing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billing.Table, billing.Columns, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Billing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billing.FieldID)
		for _, f := range fields {
			if !billing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != billing.FieldID {
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
		_spec.SetField(billing.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(billing.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(billing.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(billing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(billing.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(billing.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(billing.FieldPaidAt, field.TypeTime)
	}
	_node = &Billing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
