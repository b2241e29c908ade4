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
	"github.com/medora-health/medora_backend/internal/repo/prescription"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *PrescriptionCreate) SetDoctorID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetMedication sets the "medication" field.
func (_c *PrescriptionCreate) SetMedication(v string) *PrescriptionCreate {
	_c.mutation.SetMedication(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *PrescriptionCreate) SetDosage(v string) *PrescriptionCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PrescriptionCreate) SetInstructions(v string) *PrescriptionCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Prescription.doctor_id"`)}
	}
	if _, ok := _c.mutation.Medication(); !ok {
		return &ValidationError{Name: "medication", err: errors.New(`repo: missing required field "Prescription.medication"`)}
	}
	if v, ok := _c.mutation.Medication(); ok {
		if err := prescription.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "Prescription.medication": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dosage(); !ok {
		return &ValidationError{Name: "dosage", err: errors.New(`repo: missing required field "Prescription.dosage"`)}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Instructions(); !ok {
		return &ValidationError{Name: "instructions", err: errors.New(`repo: missing required field "Prescription.instructions"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Medication(); ok {
		_spec.SetField(prescription.FieldMedication, field.TypeString, value)
		_node.Medication = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertOne {
	_c.conflict = opts
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflictColumns(columns ...string) *PrescriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionUpsertOne is the builder for "upsert"-ing
	//  one Prescription node.
	PrescriptionUpsertOne struct {
		create *PrescriptionCreate
	}

	// PrescriptionUpsert is the "OnConflict" setter.
	PrescriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsert) SetPatientID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePatientID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsert) SetDoctorID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDoctorID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDoctorID)
	return u
}

// SetMedication sets the "medication" field.
func (u *PrescriptionUpsert) SetMedication(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldMedication, v)
	return u
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateMedication() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldMedication)
	return u
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsert) SetDosage(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDosage() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDosage)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsert) SetInstructions(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateInstructions() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldInstructions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertOne) UpdateNewValues() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescription.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionUpsertOne) Ignore() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertOne) DoNothing() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreate.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertOne) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertOne) SetPatientID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePatientID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertOne) SetDoctorID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDoctorID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetMedication sets the "medication" field.
func (u *PrescriptionUpsertOne) SetMedication(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedication(v)
	})
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateMedication() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedication()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsertOne) SetDosage(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDosage() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDosage()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertOne) SetInstructions(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateInstructions() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionUpsertOne.ID is not supported by MySQL driver. Use PrescriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertBulk {
	_c.conflict = opts
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflictColumns(columns ...string) *PrescriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// PrescriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Prescription nodes.
type PrescriptionUpsertBulk struct {
	create *PrescriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) UpdateNewValues() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescription.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) Ignore() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertBulk) DoNothing() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertBulk) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertBulk) SetPatientID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePatientID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertBulk) SetDoctorID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDoctorID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetMedication sets the "medication" field.
func (u *PrescriptionUpsertBulk) SetMedication(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedication(v)
	})
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateMedication() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedication()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionUpsertBulk) SetDosage(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDosage() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDosage()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertBulk) SetInstructions(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateInstructions() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
