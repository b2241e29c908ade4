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
	"github.com/medora-health/medora_backend/internal/repo/medicalrecord"
)

// MedicalRecordCreate is the builder for creating a MedicalRecord entity.
type MedicalRecordCreate struct {
	config
	mutation *MedicalRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalRecordCreate) SetCreatedAt(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableCreatedAt(v *time.Time) *MedicalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalRecordCreate) SetPatientID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *MedicalRecordCreate) SetDiagnosis(v string) *MedicalRecordCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetTreatment sets the "treatment" field.
func (_c *MedicalRecordCreate) SetTreatment(v string) *MedicalRecordCreate {
	_c.mutation.SetTreatment(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalRecordCreate) SetID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableID(v *uuid.UUID) *MedicalRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_c *MedicalRecordCreate) Mutation() *MedicalRecordMutation {
	return _c.mutation
}

// Save creates the MedicalRecord in the database.
func (_c *MedicalRecordCreate) Save(ctx context.Context) (*MedicalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalRecordCreate) SaveX(ctx context.Context) *MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalRecord.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`repo: missing required field "MedicalRecord.diagnosis"`)}
	}
	if v, ok := _c.mutation.Diagnosis(); ok {
		if err := medicalrecord.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.diagnosis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Treatment(); !ok {
		return &ValidationError{Name: "treatment", err: errors.New(`repo: missing required field "MedicalRecord.treatment"`)}
	}
	return nil
}

func (_c *MedicalRecordCreate) sqlSave(ctx context.Context) (*MedicalRecord, error) {
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

func (_c *MedicalRecordCreate) createSpec() (*MedicalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalrecord.Table, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(medicalrecord.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Treatment(); ok {
		_spec.SetField(medicalrecord.FieldTreatment, field.TypeString, value)
		_node.Treatment = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalRecordCreate) OnConflict(opts ...sql.ConflictOption) *MedicalRecordUpsertOne {
	_c.conflict = opts
	return &MedicalRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalRecordCreate) OnConflictColumns(columns ...string) *MedicalRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalRecordUpsertOne{
		create: _c,
	}
}

type (
	// MedicalRecordUpsertOne is the builder for "upsert"-ing
	//  one MedicalRecord node.
	MedicalRecordUpsertOne struct {
		create *MedicalRecordCreate
	}

	// MedicalRecordUpsert is the "OnConflict" setter.
	MedicalRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsert) SetPatientID(v uuid.UUID) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdatePatientID() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldPatientID)
	return u
}

// SetDiagnosis sets the "diagnosis" field.
func (u *MedicalRecordUpsert) SetDiagnosis(v string) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldDiagnosis, v)
	return u
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateDiagnosis() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldDiagnosis)
	return u
}

// SetTreatment sets the "treatment" field.
func (u *MedicalRecordUpsert) SetTreatment(v string) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldTreatment, v)
	return u
}

// UpdateTreatment sets the "treatment" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateTreatment() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldTreatment)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalRecordUpsertOne) UpdateNewValues() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicalrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicalrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicalRecordUpsertOne) Ignore() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalRecordUpsertOne) DoNothing() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalRecordCreate.OnConflict
// documentation for more info.
func (u *MedicalRecordUpsertOne) Update(set func(*MedicalRecordUpsert)) *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsertOne) SetPatientID(v uuid.UUID) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdatePatientID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *MedicalRecordUpsertOne) SetDiagnosis(v string) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateDiagnosis() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetTreatment sets the "treatment" field.
func (u *MedicalRecordUpsertOne) SetTreatment(v string) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetTreatment(v)
	})
}

// UpdateTreatment sets the "treatment" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateTreatment() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateTreatment()
	})
}

// Exec executes the query.
func (u *MedicalRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicalRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicalRecordUpsertOne.ID is not supported by MySQL driver. Use MedicalRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicalRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicalRecordCreateBulk is the builder for creating many MedicalRecord entities in bulk.
type MedicalRecordCreateBulk struct {
	config
	err      error
	builders []*MedicalRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicalRecord entities in the database.
func (_c *MedicalRecordCreateBulk) Save(ctx context.Context) ([]*MedicalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalRecordMutation)
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
func (_c *MedicalRecordCreateBulk) SaveX(ctx context.Context) []*MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicalRecordUpsertBulk {
	_c.conflict = opts
	return &MedicalRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalRecordCreateBulk) OnConflictColumns(columns ...string) *MedicalRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalRecordUpsertBulk{
		create: _c,
	}
}

// MedicalRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicalRecord nodes.
type MedicalRecordUpsertBulk struct {
	create *MedicalRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalRecordUpsertBulk) UpdateNewValues() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicalrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicalrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicalRecordUpsertBulk) Ignore() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalRecordUpsertBulk) DoNothing() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MedicalRecordUpsertBulk) Update(set func(*MedicalRecordUpsert)) *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsertBulk) SetPatientID(v uuid.UUID) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdatePatientID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *MedicalRecordUpsertBulk) SetDiagnosis(v string) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateDiagnosis() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetTreatment sets the "treatment" field.
func (u *MedicalRecordUpsertBulk) SetTreatment(v string) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetTreatment(v)
	})
}

// UpdateTreatment sets the "treatment" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateTreatment() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateTreatment()
	})
}

// Exec executes the query.
func (u *MedicalRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicalRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
