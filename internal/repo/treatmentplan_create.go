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
	"github.com/medora-health/medora_backend/internal/repo/treatmentplan"
)

// TreatmentPlanCreate is the builder for creating a TreatmentPlan entity.
type TreatmentPlanCreate struct {
	config
	mutation *TreatmentPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TreatmentPlanCreate) SetCreatedAt(v time.Time) *TreatmentPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TreatmentPlanCreate) SetNillableCreatedAt(v *time.Time) *TreatmentPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TreatmentPlanCreate) SetUpdatedAt(v time.Time) *TreatmentPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TreatmentPlanCreate) SetNillableUpdatedAt(v *time.Time) *TreatmentPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TreatmentPlanCreate) SetPatientID(v uuid.UUID) *TreatmentPlanCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TreatmentPlanCreate) SetDoctorID(v uuid.UUID) *TreatmentPlanCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *TreatmentPlanCreate) SetStartDate(v time.Time) *TreatmentPlanCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *TreatmentPlanCreate) SetEndDate(v time.Time) *TreatmentPlanCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *TreatmentPlanCreate) SetNillableEndDate(v *time.Time) *TreatmentPlanCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TreatmentPlanCreate) SetDescription(v string) *TreatmentPlanCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TreatmentPlanCreate) SetID(v uuid.UUID) *TreatmentPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TreatmentPlanCreate) SetNillableID(v *uuid.UUID) *TreatmentPlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TreatmentPlanMutation object of the builder.
func (_c *TreatmentPlanCreate) Mutation() *TreatmentPlanMutation {
	return _c.mutation
}

// Save creates the TreatmentPlan in the database.
func (_c *TreatmentPlanCreate) Save(ctx context.Context) (*TreatmentPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TreatmentPlanCreate) SaveX(ctx context.Context) *TreatmentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TreatmentPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := treatmentplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := treatmentplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := treatmentplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TreatmentPlanCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TreatmentPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TreatmentPlan.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "TreatmentPlan.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "TreatmentPlan.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "TreatmentPlan.start_date"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "TreatmentPlan.description"`)}
	}
	return nil
}

func (_c *TreatmentPlanCreate) sqlSave(ctx context.Context) (*TreatmentPlan, error) {
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

func (_c *TreatmentPlanCreate) createSpec() (*TreatmentPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &TreatmentPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(treatmentplan.Table, sqlgraph.NewFieldSpec(treatmentplan.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(treatmentplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(treatmentplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(treatmentplan.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(treatmentplan.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(treatmentplan.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(treatmentplan.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(treatmentplan.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TreatmentPlan.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentPlanUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentPlanCreate) OnConflict(opts ...sql.ConflictOption) *TreatmentPlanUpsertOne {
	_c.conflict = opts
	return &TreatmentPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentPlanCreate) OnConflictColumns(columns ...string) *TreatmentPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentPlanUpsertOne{
		create: _c,
	}
}

type (
	// TreatmentPlanUpsertOne is the builder for "upsert"-ing
	//  one TreatmentPlan node.
	TreatmentPlanUpsertOne struct {
		create *TreatmentPlanCreate
	}

	// TreatmentPlanUpsert is the "OnConflict" setter.
	TreatmentPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentPlanUpsert) SetUpdatedAt(v time.Time) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdateUpdatedAt() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentPlanUpsert) SetPatientID(v uuid.UUID) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdatePatientID() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentPlanUpsert) SetDoctorID(v uuid.UUID) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdateDoctorID() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldDoctorID)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *TreatmentPlanUpsert) SetStartDate(v time.Time) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdateStartDate() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *TreatmentPlanUpsert) SetEndDate(v time.Time) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdateEndDate() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *TreatmentPlanUpsert) ClearEndDate() *TreatmentPlanUpsert {
	u.SetNull(treatmentplan.FieldEndDate)
	return u
}

// SetDescription sets the "description" field.
func (u *TreatmentPlanUpsert) SetDescription(v string) *TreatmentPlanUpsert {
	u.Set(treatmentplan.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TreatmentPlanUpsert) UpdateDescription() *TreatmentPlanUpsert {
	u.SetExcluded(treatmentplan.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatmentplan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentPlanUpsertOne) UpdateNewValues() *TreatmentPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(treatmentplan.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(treatmentplan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TreatmentPlanUpsertOne) Ignore() *TreatmentPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentPlanUpsertOne) DoNothing() *TreatmentPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentPlanCreate.OnConflict
// documentation for more info.
func (u *TreatmentPlanUpsertOne) Update(set func(*TreatmentPlanUpsert)) *TreatmentPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentPlanUpsertOne) SetUpdatedAt(v time.Time) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdateUpdatedAt() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentPlanUpsertOne) SetPatientID(v uuid.UUID) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdatePatientID() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentPlanUpsertOne) SetDoctorID(v uuid.UUID) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdateDoctorID() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartDate sets the "start_date" field.
func (u *TreatmentPlanUpsertOne) SetStartDate(v time.Time) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdateStartDate() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *TreatmentPlanUpsertOne) SetEndDate(v time.Time) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdateEndDate() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *TreatmentPlanUpsertOne) ClearEndDate() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.ClearEndDate()
	})
}

// SetDescription sets the "description" field.
func (u *TreatmentPlanUpsertOne) SetDescription(v string) *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TreatmentPlanUpsertOne) UpdateDescription() *TreatmentPlanUpsertOne {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *TreatmentPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TreatmentPlanUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TreatmentPlanUpsertOne.ID is not supported by MySQL driver. Use TreatmentPlanUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TreatmentPlanUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TreatmentPlanCreateBulk is the builder for creating many TreatmentPlan entities in bulk.
type TreatmentPlanCreateBulk struct {
	config
	err      error
	builders []*TreatmentPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the TreatmentPlan entities in the database.
func (_c *TreatmentPlanCreateBulk) Save(ctx context.Context) ([]*TreatmentPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TreatmentPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TreatmentPlanMutation)
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
func (_c *TreatmentPlanCreateBulk) SaveX(ctx context.Context) []*TreatmentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TreatmentPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentPlanUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *TreatmentPlanUpsertBulk {
	_c.conflict = opts
	return &TreatmentPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentPlanCreateBulk) OnConflictColumns(columns ...string) *TreatmentPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentPlanUpsertBulk{
		create: _c,
	}
}

// TreatmentPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of TreatmentPlan nodes.
type TreatmentPlanUpsertBulk struct {
	create *TreatmentPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatmentplan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentPlanUpsertBulk) UpdateNewValues() *TreatmentPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(treatmentplan.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(treatmentplan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TreatmentPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TreatmentPlanUpsertBulk) Ignore() *TreatmentPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentPlanUpsertBulk) DoNothing() *TreatmentPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentPlanCreateBulk.OnConflict
// documentation for more info.
func (u *TreatmentPlanUpsertBulk) Update(set func(*TreatmentPlanUpsert)) *TreatmentPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentPlanUpsertBulk) SetUpdatedAt(v time.Time) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdateUpdatedAt() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentPlanUpsertBulk) SetPatientID(v uuid.UUID) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdatePatientID() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentPlanUpsertBulk) SetDoctorID(v uuid.UUID) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdateDoctorID() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartDate sets the "start_date" field.
func (u *TreatmentPlanUpsertBulk) SetStartDate(v time.Time) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdateStartDate() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *TreatmentPlanUpsertBulk) SetEndDate(v time.Time) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdateEndDate() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *TreatmentPlanUpsertBulk) ClearEndDate() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.ClearEndDate()
	})
}

// SetDescription sets the "description" field.
func (u *TreatmentPlanUpsertBulk) SetDescription(v string) *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TreatmentPlanUpsertBulk) UpdateDescription() *TreatmentPlanUpsertBulk {
	return u.Update(func(s *TreatmentPlanUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *TreatmentPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TreatmentPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
