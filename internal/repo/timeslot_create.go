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
	"github.com/medora-health/medora_backend/internal/repo/timeslot"
)

// TimeSlotCreate is the builder for creating a TimeSlot entity.
type TimeSlotCreate struct {
	config
	mutation *TimeSlotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimeSlotCreate) SetCreatedAt(v time.Time) *TimeSlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableCreatedAt(v *time.Time) *TimeSlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimeSlotCreate) SetUpdatedAt(v time.Time) *TimeSlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableUpdatedAt(v *time.Time) *TimeSlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TimeSlotCreate) SetDoctorID(v uuid.UUID) *TimeSlotCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TimeSlotCreate) SetStartTime(v time.Time) *TimeSlotCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TimeSlotCreate) SetEndTime(v time.Time) *TimeSlotCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetAvailable sets the "available" field.
func (_c *TimeSlotCreate) SetAvailable(v bool) *TimeSlotCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableAvailable(v *bool) *TimeSlotCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimeSlotCreate) SetID(v uuid.UUID) *TimeSlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableID(v *uuid.UUID) *TimeSlotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TimeSlotMutation object of the builder.
func (_c *TimeSlotCreate) Mutation() *TimeSlotMutation {
	return _c.mutation
}

// Save creates the TimeSlot in the database.
func (_c *TimeSlotCreate) Save(ctx context.Context) (*TimeSlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimeSlotCreate) SaveX(ctx context.Context) *TimeSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeSlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeSlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimeSlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timeslot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timeslot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Available(); !ok {
		v := timeslot.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := timeslot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimeSlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TimeSlot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TimeSlot.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "TimeSlot.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "TimeSlot.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "TimeSlot.end_time"`)}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`repo: missing required field "TimeSlot.available"`)}
	}
	return nil
}

func (_c *TimeSlotCreate) sqlSave(ctx context.Context) (*TimeSlot, error) {
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

func (_c *TimeSlotCreate) createSpec() (*TimeSlot, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeSlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timeslot.Table, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timeslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(timeslot.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(timeslot.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimeSlot.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimeSlotUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TimeSlotCreate) OnConflict(opts ...sql.ConflictOption) *TimeSlotUpsertOne {
	_c.conflict = opts
	return &TimeSlotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimeSlotCreate) OnConflictColumns(columns ...string) *TimeSlotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimeSlotUpsertOne{
		create: _c,
	}
}

type (
	// TimeSlotUpsertOne is the builder for "upsert"-ing
	//  one TimeSlot node.
	TimeSlotUpsertOne struct {
		create *TimeSlotCreate
	}

	// TimeSlotUpsert is the "OnConflict" setter.
	TimeSlotUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeSlotUpsert) SetUpdatedAt(v time.Time) *TimeSlotUpsert {
	u.Set(timeslot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeSlotUpsert) UpdateUpdatedAt() *TimeSlotUpsert {
	u.SetExcluded(timeslot.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeSlotUpsert) SetDoctorID(v uuid.UUID) *TimeSlotUpsert {
	u.Set(timeslot.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeSlotUpsert) UpdateDoctorID() *TimeSlotUpsert {
	u.SetExcluded(timeslot.FieldDoctorID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *TimeSlotUpsert) SetStartTime(v time.Time) *TimeSlotUpsert {
	u.Set(timeslot.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeSlotUpsert) UpdateStartTime() *TimeSlotUpsert {
	u.SetExcluded(timeslot.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *TimeSlotUpsert) SetEndTime(v time.Time) *TimeSlotUpsert {
	u.Set(timeslot.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeSlotUpsert) UpdateEndTime() *TimeSlotUpsert {
	u.SetExcluded(timeslot.FieldEndTime)
	return u
}

// SetAvailable sets the "available" field.
func (u *TimeSlotUpsert) SetAvailable(v bool) *TimeSlotUpsert {
	u.Set(timeslot.FieldAvailable, v)
	return u
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *TimeSlotUpsert) UpdateAvailable() *TimeSlotUpsert {
	u.SetExcluded(timeslot.FieldAvailable)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timeslot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimeSlotUpsertOne) UpdateNewValues() *TimeSlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(timeslot.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(timeslot.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TimeSlotUpsertOne) Ignore() *TimeSlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimeSlotUpsertOne) DoNothing() *TimeSlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimeSlotCreate.OnConflict
// documentation for more info.
func (u *TimeSlotUpsertOne) Update(set func(*TimeSlotUpsert)) *TimeSlotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimeSlotUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeSlotUpsertOne) SetUpdatedAt(v time.Time) *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeSlotUpsertOne) UpdateUpdatedAt() *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeSlotUpsertOne) SetDoctorID(v uuid.UUID) *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeSlotUpsertOne) UpdateDoctorID() *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *TimeSlotUpsertOne) SetStartTime(v time.Time) *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeSlotUpsertOne) UpdateStartTime() *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *TimeSlotUpsertOne) SetEndTime(v time.Time) *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeSlotUpsertOne) UpdateEndTime() *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateEndTime()
	})
}

// SetAvailable sets the "available" field.
func (u *TimeSlotUpsertOne) SetAvailable(v bool) *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *TimeSlotUpsertOne) UpdateAvailable() *TimeSlotUpsertOne {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateAvailable()
	})
}

// Exec executes the query.
func (u *TimeSlotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TimeSlotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimeSlotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TimeSlotUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TimeSlotUpsertOne.ID is not supported by MySQL driver. Use TimeSlotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TimeSlotUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TimeSlotCreateBulk is the builder for creating many TimeSlot entities in bulk.
type TimeSlotCreateBulk struct {
	config
	err      error
	builders []*TimeSlotCreate
	conflict []sql.ConflictOption
}

// Save creates the TimeSlot entities in the database.
func (_c *TimeSlotCreateBulk) Save(ctx context.Context) ([]*TimeSlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimeSlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeSlotMutation)
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
func (_c *TimeSlotCreateBulk) SaveX(ctx context.Context) []*TimeSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeSlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeSlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimeSlot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimeSlotUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TimeSlotCreateBulk) OnConflict(opts ...sql.ConflictOption) *TimeSlotUpsertBulk {
	_c.conflict = opts
	return &TimeSlotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimeSlotCreateBulk) OnConflictColumns(columns ...string) *TimeSlotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimeSlotUpsertBulk{
		create: _c,
	}
}

// TimeSlotUpsertBulk is the builder for "upsert"-ing
// a bulk of TimeSlot nodes.
type TimeSlotUpsertBulk struct {
	create *TimeSlotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timeslot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimeSlotUpsertBulk) UpdateNewValues() *TimeSlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(timeslot.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(timeslot.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimeSlot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TimeSlotUpsertBulk) Ignore() *TimeSlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimeSlotUpsertBulk) DoNothing() *TimeSlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimeSlotCreateBulk.OnConflict
// documentation for more info.
func (u *TimeSlotUpsertBulk) Update(set func(*TimeSlotUpsert)) *TimeSlotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimeSlotUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeSlotUpsertBulk) SetUpdatedAt(v time.Time) *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeSlotUpsertBulk) UpdateUpdatedAt() *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeSlotUpsertBulk) SetDoctorID(v uuid.UUID) *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeSlotUpsertBulk) UpdateDoctorID() *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *TimeSlotUpsertBulk) SetStartTime(v time.Time) *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeSlotUpsertBulk) UpdateStartTime() *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *TimeSlotUpsertBulk) SetEndTime(v time.Time) *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeSlotUpsertBulk) UpdateEndTime() *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateEndTime()
	})
}

// SetAvailable sets the "available" field.
func (u *TimeSlotUpsertBulk) SetAvailable(v bool) *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *TimeSlotUpsertBulk) UpdateAvailable() *TimeSlotUpsertBulk {
	return u.Update(func(s *TimeSlotUpsert) {
		s.UpdateAvailable()
	})
}

// Exec executes the query.
func (u *TimeSlotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TimeSlotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TimeSlotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimeSlotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
