// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/billing"
)

// BillingCreate is the builder for creating a Billing entity.
type BillingCreate struct {
	config
	mutation *BillingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingCreate) SetCreatedAt(v time.Time) *BillingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingCreate) SetNillableCreatedAt(v *time.Time) *BillingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *BillingCreate) SetPatientID(v uuid.UUID) *BillingCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *BillingCreate) SetAmountCents(v int64) *BillingCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BillingCreate) SetDescription(v string) *BillingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BillingCreate) SetNillableDescription(v *string) *BillingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPaid sets the "paid" field.
func (_c *BillingCreate) SetPaid(v bool) *BillingCreate {
	_c.mutation.SetPaid(v)
	return _c
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_c *BillingCreate) SetNillablePaid(v *bool) *BillingCreate {
	if v != nil {
		_c.SetPaid(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *BillingCreate) SetPaidAt(v time.Time) *BillingCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *BillingCreate) SetNillablePaidAt(v *time.Time) *BillingCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingCreate) SetID(v uuid.UUID) *BillingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillingCreate) SetNillableID(v *uuid.UUID) *BillingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BillingMutation object of the builder.
func (_c *BillingCreate) Mutation() *BillingMutation {
	return _c.mutation
}

// Save creates the Billing in the database.
func (_c *BillingCreate) Save(ctx context.Context) (*Billing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingCreate) SaveX(ctx context.Context) *Billing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Paid(); !ok {
		v := billing.DefaultPaid
		_c.mutation.SetPaid(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Billing.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Billing.patient_id"`)}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`repo: missing required field "Billing.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := billing.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Billing.amount_cents": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := billing.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "Billing.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Paid(); !ok {
		return &ValidationError{Name: "paid", err: errors.New(`repo: missing required field "Billing.paid"`)}
	}
	return nil
}

func (_c *BillingCreate) sqlSave(ctx context.Context) (*Billing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillingCreate) createSpec() (*Billing, *sqlgraph.CreateSpec) {
	var (
		_node = &Billing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billing.Table, sqlgraph.NewFieldSpec(billing.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(billing.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(billing.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(billing.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Paid(); ok {
		_spec.SetField(billing.FieldPaid, field.TypeBool, value)
		_node.Paid = value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(billing.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Billing.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BillingCreate) OnConflict(opts ...sql.ConflictOption) *BillingUpsertOne {
	_c.conflict = opts
	return &BillingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Billing.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillingCreate) OnConflictColumns(columns ...string) *BillingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillingUpsertOne{
		create: _c,
	}
}

type (
	// BillingUpsertOne is the builder for "upsert"-ing
	//  one Billing node.
	BillingUpsertOne struct {
		create *BillingCreate
	}

	// BillingUpsert is the "OnConflict" setter.
	BillingUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *BillingUpsert) SetPatientID(v uuid.UUID) *BillingUpsert {
	u.Set(billing.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *BillingUpsert) UpdatePatientID() *BillingUpsert {
	u.SetExcluded(billing.FieldPatientID)
	return u
}

// SetAmountCents sets the "amount_cents" field.
func (u *BillingUpsert) SetAmountCents(v int64) *BillingUpsert {
	u.Set(billing.FieldAmountCents, v)
	return u
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *BillingUpsert) UpdateAmountCents() *BillingUpsert {
	u.SetExcluded(billing.FieldAmountCents)
	return u
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *BillingUpsert) AddAmountCents(v int64) *BillingUpsert {
	u.Add(billing.FieldAmountCents, v)
	return u
}

// SetDescription sets the "description" field.
func (u *BillingUpsert) SetDescription(v string) *BillingUpsert {
	u.Set(billing.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BillingUpsert) UpdateDescription() *BillingUpsert {
	u.SetExcluded(billing.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *BillingUpsert) ClearDescription() *BillingUpsert {
	u.SetNull(billing.FieldDescription)
	return u
}

// SetPaid sets the "paid" field.
func (u *BillingUpsert) SetPaid(v bool) *BillingUpsert {
	u.Set(billing.FieldPaid, v)
	return u
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *BillingUpsert) UpdatePaid() *BillingUpsert {
	u.SetExcluded(billing.FieldPaid)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *BillingUpsert) SetPaidAt(v time.Time) *BillingUpsert {
	u.Set(billing.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *BillingUpsert) UpdatePaidAt() *BillingUpsert {
	u.SetExcluded(billing.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *BillingUpsert) ClearPaidAt() *BillingUpsert {
	u.SetNull(billing.FieldPaidAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Billing.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billing.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillingUpsertOne) UpdateNewValues() *BillingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(billing.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(billing.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Billing.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BillingUpsertOne) Ignore() *BillingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingUpsertOne) DoNothing() *BillingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingCreate.OnConflict
// documentation for more info.
func (u *BillingUpsertOne) Update(set func(*BillingUpsert)) *BillingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *BillingUpsertOne) SetPatientID(v uuid.UUID) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *BillingUpsertOne) UpdatePatientID() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePatientID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *BillingUpsertOne) SetAmountCents(v int64) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *BillingUpsertOne) AddAmountCents(v int64) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *BillingUpsertOne) UpdateAmountCents() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.UpdateAmountCents()
	})
}

// SetDescription sets the "description" field.
func (u *BillingUpsertOne) SetDescription(v string) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BillingUpsertOne) UpdateDescription() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BillingUpsertOne) ClearDescription() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.ClearDescription()
	})
}

// SetPaid sets the "paid" field.
func (u *BillingUpsertOne) SetPaid(v bool) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.SetPaid(v)
	})
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *BillingUpsertOne) UpdatePaid() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePaid()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *BillingUpsertOne) SetPaidAt(v time.Time) *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *BillingUpsertOne) UpdatePaidAt() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *BillingUpsertOne) ClearPaidAt() *BillingUpsertOne {
	return u.Update(func(s *BillingUpsert) {
		s.ClearPaidAt()
	})
}

// Exec executes the query.
func (u *BillingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BillingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BillingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BillingUpsertOne.ID is not supported by MySQL driver. Use BillingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BillingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BillingCreateBulk is the builder for creating many Billing entities in bulk.
type BillingCreateBulk struct {
	config
	err      error
	builders []*BillingCreate
	conflict []sql.ConflictOption
}

// Save creates the Billing entities in the database.
func (_c *BillingCreateBulk) Save(ctx context.Context) ([]*Billing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Billing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillingCreateBulk) SaveX(ctx context.Context) []*Billing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Billing.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BillingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BillingUpsertBulk {
	_c.conflict = opts
	return &BillingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Billing.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillingCreateBulk) OnConflictColumns(columns ...string) *BillingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillingUpsertBulk{
		create: _c,
	}
}

// BillingUpsertBulk is the builder for "upsert"-ing
// a bulk of Billing nodes.
type BillingUpsertBulk struct {
	create *BillingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Billing.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billing.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillingUpsertBulk) UpdateNewValues() *BillingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(billing.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(billing.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Billing.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BillingUpsertBulk) Ignore() *BillingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillingUpsertBulk) DoNothing() *BillingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillingCreateBulk.OnConflict
// documentation for more info.
func (u *BillingUpsertBulk) Update(set func(*BillingUpsert)) *BillingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *BillingUpsertBulk) SetPatientID(v uuid.UUID) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *BillingUpsertBulk) UpdatePatientID() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePatientID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *BillingUpsertBulk) SetAmountCents(v int64) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *BillingUpsertBulk) AddAmountCents(v int64) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *BillingUpsertBulk) UpdateAmountCents() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.UpdateAmountCents()
	})
}

// SetDescription sets the "description" field.
func (u *BillingUpsertBulk) SetDescription(v string) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *BillingUpsertBulk) UpdateDescription() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *BillingUpsertBulk) ClearDescription() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.ClearDescription()
	})
}

// SetPaid sets the "paid" field.
func (u *BillingUpsertBulk) SetPaid(v bool) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.SetPaid(v)
	})
}

// UpdatePaid sets the "paid" field to the value that was provided on create.
func (u *BillingUpsertBulk) UpdatePaid() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePaid()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *BillingUpsertBulk) SetPaidAt(v time.Time) *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *BillingUpsertBulk) UpdatePaidAt() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *BillingUpsertBulk) ClearPaidAt() *BillingUpsertBulk {
	return u.Update(func(s *BillingUpsert) {
		s.ClearPaidAt()
	})
}

// Exec executes the query.
func (u *BillingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BillingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BillingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
