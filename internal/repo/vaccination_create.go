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
	"github.com/medora-health/medora_backend/internal/repo/vaccination"
)

// VaccinationCreate is the builder for creating a Vaccination entity.
type VaccinationCreate struct {
	config
	mutation *VaccinationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VaccinationCreate) SetCreatedAt(v time.Time) *VaccinationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VaccinationCreate) SetNillableCreatedAt(v *time.Time) *VaccinationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *VaccinationCreate) SetPatientID(v uuid.UUID) *VaccinationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVaccineName sets the "vaccine_name" field.
func (_c *VaccinationCreate) SetVaccineName(v string) *VaccinationCreate {
	_c.mutation.SetVaccineName(v)
	return _c
}

// SetDateGiven sets the "date_given" field.
func (_c *VaccinationCreate) SetDateGiven(v time.Time) *VaccinationCreate {
	_c.mutation.SetDateGiven(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *VaccinationCreate) SetNotes(v string) *VaccinationCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *VaccinationCreate) SetNillableNotes(v *string) *VaccinationCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VaccinationCreate) SetID(v uuid.UUID) *VaccinationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VaccinationCreate) SetNillableID(v *uuid.UUID) *VaccinationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VaccinationMutation object of the builder.
func (_c *VaccinationCreate) Mutation() *VaccinationMutation {
	return _c.mutation
}

// Save creates the Vaccination in the database.
func (_c *VaccinationCreate) Save(ctx context.Context) (*Vaccination, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VaccinationCreate) SaveX(ctx context.Context) *Vaccination {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VaccinationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VaccinationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VaccinationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vaccination.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vaccination.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VaccinationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Vaccination.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Vaccination.patient_id"`)}
	}
	if _, ok := _c.mutation.VaccineName(); !ok {
		return &ValidationError{Name: "vaccine_name", err: errors.New(`repo: missing required field "Vaccination.vaccine_name"`)}
	}
	if v, ok := _c.mutation.VaccineName(); ok {
		if err := vaccination.VaccineNameValidator(v); err != nil {
			return &ValidationError{Name: "vaccine_name", err: fmt.Errorf(`repo: validator failed for field "Vaccination.vaccine_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateGiven(); !ok {
		return &ValidationError{Name: "date_given", err: errors.New(`repo: missing required field "Vaccination.date_given"`)}
	}
	return nil
}

func (_c *VaccinationCreate) sqlSave(ctx context.Context) (*Vaccination, error) {
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

func (_c *VaccinationCreate) createSpec() (*Vaccination, *sqlgraph.CreateSpec) {
	var (
		_node = &Vaccination{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vaccination.Table, sqlgraph.NewFieldSpec(vaccination.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vaccination.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(vaccination.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.VaccineName(); ok {
		_spec.SetField(vaccination.FieldVaccineName, field.TypeString, value)
		_node.VaccineName = value
	}
	if value, ok := _c.mutation.DateGiven(); ok {
		_spec.SetField(vaccination.FieldDateGiven, field.TypeTime, value)
		_node.DateGiven = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(vaccination.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vaccination.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VaccinationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VaccinationCreate) OnConflict(opts ...sql.ConflictOption) *VaccinationUpsertOne {
	_c.conflict = opts
	return &VaccinationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VaccinationCreate) OnConflictColumns(columns ...string) *VaccinationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VaccinationUpsertOne{
		create: _c,
	}
}

type (
	// VaccinationUpsertOne is the builder for "upsert"-ing
	//  one Vaccination node.
	VaccinationUpsertOne struct {
		create *VaccinationCreate
	}

	// VaccinationUpsert is the "OnConflict" setter.
	VaccinationUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *VaccinationUpsert) SetPatientID(v uuid.UUID) *VaccinationUpsert {
	u.Set(vaccination.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VaccinationUpsert) UpdatePatientID() *VaccinationUpsert {
	u.SetExcluded(vaccination.FieldPatientID)
	return u
}

// SetVaccineName sets the "vaccine_name" field.
func (u *VaccinationUpsert) SetVaccineName(v string) *VaccinationUpsert {
	u.Set(vaccination.FieldVaccineName, v)
	return u
}

// UpdateVaccineName sets the "vaccine_name" field to the value that was provided on create.
func (u *VaccinationUpsert) UpdateVaccineName() *VaccinationUpsert {
	u.SetExcluded(vaccination.FieldVaccineName)
	return u
}

// SetDateGiven sets the "date_given" field.
func (u *VaccinationUpsert) SetDateGiven(v time.Time) *VaccinationUpsert {
	u.Set(vaccination.FieldDateGiven, v)
	return u
}

// UpdateDateGiven sets the "date_given" field to the value that was provided on create.
func (u *VaccinationUpsert) UpdateDateGiven() *VaccinationUpsert {
	u.SetExcluded(vaccination.FieldDateGiven)
	return u
}

// SetNotes sets the "notes" field.
func (u *VaccinationUpsert) SetNotes(v string) *VaccinationUpsert {
	u.Set(vaccination.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VaccinationUpsert) UpdateNotes() *VaccinationUpsert {
	u.SetExcluded(vaccination.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *VaccinationUpsert) ClearNotes() *VaccinationUpsert {
	u.SetNull(vaccination.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vaccination.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VaccinationUpsertOne) UpdateNewValues() *VaccinationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vaccination.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(vaccination.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VaccinationUpsertOne) Ignore() *VaccinationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VaccinationUpsertOne) DoNothing() *VaccinationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VaccinationCreate.OnConflict
// documentation for more info.
func (u *VaccinationUpsertOne) Update(set func(*VaccinationUpsert)) *VaccinationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VaccinationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *VaccinationUpsertOne) SetPatientID(v uuid.UUID) *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VaccinationUpsertOne) UpdatePatientID() *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdatePatientID()
	})
}

// SetVaccineName sets the "vaccine_name" field.
func (u *VaccinationUpsertOne) SetVaccineName(v string) *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetVaccineName(v)
	})
}

// UpdateVaccineName sets the "vaccine_name" field to the value that was provided on create.
func (u *VaccinationUpsertOne) UpdateVaccineName() *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateVaccineName()
	})
}

// SetDateGiven sets the "date_given" field.
func (u *VaccinationUpsertOne) SetDateGiven(v time.Time) *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetDateGiven(v)
	})
}

// UpdateDateGiven sets the "date_given" field to the value that was provided on create.
func (u *VaccinationUpsertOne) UpdateDateGiven() *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateDateGiven()
	})
}

// SetNotes sets the "notes" field.
func (u *VaccinationUpsertOne) SetNotes(v string) *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VaccinationUpsertOne) UpdateNotes() *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VaccinationUpsertOne) ClearNotes() *VaccinationUpsertOne {
	return u.Update(func(s *VaccinationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *VaccinationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VaccinationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VaccinationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VaccinationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VaccinationUpsertOne.ID is not supported by MySQL driver. Use VaccinationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VaccinationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VaccinationCreateBulk is the builder for creating many Vaccination entities in bulk.
type VaccinationCreateBulk struct {
	config
	err      error
	builders []*VaccinationCreate
	conflict []sql.ConflictOption
}

// Save creates the Vaccination entities in the database.
func (_c *VaccinationCreateBulk) Save(ctx context.Context) ([]*Vaccination, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vaccination, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VaccinationMutation)
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
func (_c *VaccinationCreateBulk) SaveX(ctx context.Context) []*Vaccination {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VaccinationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VaccinationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vaccination.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VaccinationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VaccinationCreateBulk) OnConflict(opts ...sql.ConflictOption) *VaccinationUpsertBulk {
	_c.conflict = opts
	return &VaccinationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VaccinationCreateBulk) OnConflictColumns(columns ...string) *VaccinationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VaccinationUpsertBulk{
		create: _c,
	}
}

// VaccinationUpsertBulk is the builder for "upsert"-ing
// a bulk of Vaccination nodes.
type VaccinationUpsertBulk struct {
	create *VaccinationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vaccination.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VaccinationUpsertBulk) UpdateNewValues() *VaccinationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vaccination.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(vaccination.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vaccination.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VaccinationUpsertBulk) Ignore() *VaccinationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VaccinationUpsertBulk) DoNothing() *VaccinationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VaccinationCreateBulk.OnConflict
// documentation for more info.
func (u *VaccinationUpsertBulk) Update(set func(*VaccinationUpsert)) *VaccinationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VaccinationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *VaccinationUpsertBulk) SetPatientID(v uuid.UUID) *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *VaccinationUpsertBulk) UpdatePatientID() *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdatePatientID()
	})
}

// SetVaccineName sets the "vaccine_name" field.
func (u *VaccinationUpsertBulk) SetVaccineName(v string) *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetVaccineName(v)
	})
}

// UpdateVaccineName sets the "vaccine_name" field to the value that was provided on create.
func (u *VaccinationUpsertBulk) UpdateVaccineName() *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateVaccineName()
	})
}

// SetDateGiven sets the "date_given" field.
func (u *VaccinationUpsertBulk) SetDateGiven(v time.Time) *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetDateGiven(v)
	})
}

// UpdateDateGiven sets the "date_given" field to the value that was provided on create.
func (u *VaccinationUpsertBulk) UpdateDateGiven() *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateDateGiven()
	})
}

// SetNotes sets the "notes" field.
func (u *VaccinationUpsertBulk) SetNotes(v string) *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *VaccinationUpsertBulk) UpdateNotes() *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *VaccinationUpsertBulk) ClearNotes() *VaccinationUpsertBulk {
	return u.Update(func(s *VaccinationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *VaccinationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VaccinationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VaccinationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VaccinationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
