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
	"github.com/medora-health/medora_backend/internal/repo/medication"
)

// MedicationCreate is the builder for creating a Medication entity.
type MedicationCreate struct {
	config
	mutation *MedicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationCreate) SetCreatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableCreatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicationCreate) SetUpdatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableUpdatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicationCreate) SetPatientID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MedicationCreate) SetName(v string) *MedicationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDosageInstructions sets the "dosage_instructions" field.
func (_c *MedicationCreate) SetDosageInstructions(v string) *MedicationCreate {
	_c.mutation.SetDosageInstructions(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *MedicationCreate) SetStartDate(v time.Time) *MedicationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableStartDate(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *MedicationCreate) SetEndDate(v time.Time) *MedicationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableEndDate(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationCreate) SetID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableID(v *uuid.UUID) *MedicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicationMutation object of the builder.
func (_c *MedicationCreate) Mutation() *MedicationMutation {
	return _c.mutation
}

// Save creates the Medication in the database.
func (_c *MedicationCreate) Save(ctx context.Context) (*Medication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationCreate) SaveX(ctx context.Context) *Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Medication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Medication.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Medication.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Medication.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DosageInstructions(); !ok {
		return &ValidationError{Name: "dosage_instructions", err: errors.New(`repo: missing required field "Medication.dosage_instructions"`)}
	}
	return nil
}

func (_c *MedicationCreate) sqlSave(ctx context.Context) (*Medication, error) {
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

func (_c *MedicationCreate) createSpec() (*Medication, *sqlgraph.CreateSpec) {
	var (
		_node = &Medication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medication.Table, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DosageInstructions(); ok {
		_spec.SetField(medication.FieldDosageInstructions, field.TypeString, value)
		_node.DosageInstructions = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(medication.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(medication.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertOne {
	_c.conflict = opts
	return &MedicationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflictColumns(columns ...string) *MedicationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertOne{
		create: _c,
	}
}

type (
	// MedicationUpsertOne is the builder for "upsert"-ing
	//  one Medication node.
	MedicationUpsertOne struct {
		create *MedicationCreate
	}

	// MedicationUpsert is the "OnConflict" setter.
	MedicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsert) SetUpdatedAt(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateUpdatedAt() *MedicationUpsert {
	u.SetExcluded(medication.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *MedicationUpsert) SetPatientID(v uuid.UUID) *MedicationUpsert {
	u.Set(medication.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicationUpsert) UpdatePatientID() *MedicationUpsert {
	u.SetExcluded(medication.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *MedicationUpsert) SetName(v string) *MedicationUpsert {
	u.Set(medication.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateName() *MedicationUpsert {
	u.SetExcluded(medication.FieldName)
	return u
}

// SetDosageInstructions sets the "dosage_instructions" field.
func (u *MedicationUpsert) SetDosageInstructions(v string) *MedicationUpsert {
	u.Set(medication.FieldDosageInstructions, v)
	return u
}

// UpdateDosageInstructions sets the "dosage_instructions" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateDosageInstructions() *MedicationUpsert {
	u.SetExcluded(medication.FieldDosageInstructions)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsert) SetStartDate(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateStartDate() *MedicationUpsert {
	u.SetExcluded(medication.FieldStartDate)
	return u
}

// ClearStartDate clears the value of the "start_date" field.
func (u *MedicationUpsert) ClearStartDate() *MedicationUpsert {
	u.SetNull(medication.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsert) SetEndDate(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateEndDate() *MedicationUpsert {
	u.SetExcluded(medication.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsert) ClearEndDate() *MedicationUpsert {
	u.SetNull(medication.FieldEndDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertOne) UpdateNewValues() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medication.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medication.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicationUpsertOne) Ignore() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertOne) DoNothing() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreate.OnConflict
// documentation for more info.
func (u *MedicationUpsertOne) Update(set func(*MedicationUpsert)) *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertOne) SetUpdatedAt(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateUpdatedAt() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicationUpsertOne) SetPatientID(v uuid.UUID) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdatePatientID() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertOne) SetName(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateName() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDosageInstructions sets the "dosage_instructions" field.
func (u *MedicationUpsertOne) SetDosageInstructions(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosageInstructions(v)
	})
}

// UpdateDosageInstructions sets the "dosage_instructions" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateDosageInstructions() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosageInstructions()
	})
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsertOne) SetStartDate(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateStartDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *MedicationUpsertOne) ClearStartDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsertOne) SetEndDate(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateEndDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsertOne) ClearEndDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearEndDate()
	})
}

// Exec executes the query.
func (u *MedicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicationUpsertOne.ID is not supported by MySQL driver. Use MedicationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicationCreateBulk is the builder for creating many Medication entities in bulk.
type MedicationCreateBulk struct {
	config
	err      error
	builders []*MedicationCreate
	conflict []sql.ConflictOption
}

// Save creates the Medication entities in the database.
func (_c *MedicationCreateBulk) Save(ctx context.Context) ([]*Medication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Medication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationMutation)
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
func (_c *MedicationCreateBulk) SaveX(ctx context.Context) []*Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertBulk {
	_c.conflict = opts
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflictColumns(columns ...string) *MedicationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// MedicationUpsertBulk is the builder for "upsert"-ing
// a bulk of Medication nodes.
type MedicationUpsertBulk struct {
	create *MedicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertBulk) UpdateNewValues() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medication.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medication.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicationUpsertBulk) Ignore() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertBulk) DoNothing() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreateBulk.OnConflict
// documentation for more info.
func (u *MedicationUpsertBulk) Update(set func(*MedicationUpsert)) *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertBulk) SetUpdatedAt(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateUpdatedAt() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicationUpsertBulk) SetPatientID(v uuid.UUID) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdatePatientID() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertBulk) SetName(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateName() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDosageInstructions sets the "dosage_instructions" field.
func (u *MedicationUpsertBulk) SetDosageInstructions(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosageInstructions(v)
	})
}

// UpdateDosageInstructions sets the "dosage_instructions" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateDosageInstructions() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosageInstructions()
	})
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsertBulk) SetStartDate(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateStartDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *MedicationUpsertBulk) ClearStartDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsertBulk) SetEndDate(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateEndDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsertBulk) ClearEndDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearEndDate()
	})
}

// Exec executes the query.
func (u *MedicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
