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
	"github.com/medora-health/medora_backend/internal/repo/department"
	"github.com/medora-health/medora_backend/internal/repo/doctor"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DoctorCreate) SetDeletedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableDeletedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DoctorCreate) SetName(v string) *DoctorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *DoctorCreate) SetSpecialization(v string) *DoctorCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *DoctorCreate) SetExperienceYears(v int) *DoctorCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableExperienceYears(v *int) *DoctorCreate {
	if v != nil {
		_c.SetExperienceYears(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *DoctorCreate) SetBio(v string) *DoctorCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableBio(v *string) *DoctorCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetDepartmentID sets the "department_id" field.
func (_c *DoctorCreate) SetDepartmentID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetDepartmentID(v)
	return _c
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableDepartmentID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetDepartmentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDepartment sets the "department" edge to the Department entity.
func (_c *DoctorCreate) SetDepartment(v *Department) *DoctorCreate {
	return _c.SetDepartmentID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		v := doctor.DefaultExperienceYears
		_c.mutation.SetExperienceYears(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Doctor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Specialization(); !ok {
		return &ValidationError{Name: "specialization", err: errors.New(`repo: missing required field "Doctor.specialization"`)}
	}
	if v, ok := _c.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`repo: missing required field "Doctor.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
		_node.Specialization = value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	if nodes := _c.mutation.DepartmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctor.DepartmentTable,
			Columns: []string{doctor.DepartmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(department.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DepartmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsert) SetDeletedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateDeletedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsert) ClearDeletedAt() *DoctorUpsert {
	u.SetNull(doctor.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *DoctorUpsert) SetName(v string) *DoctorUpsert {
	u.Set(doctor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateName() *DoctorUpsert {
	u.SetExcluded(doctor.FieldName)
	return u
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsert) SetSpecialization(v string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialization, v)
	return u
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialization() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialization)
	return u
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsert) SetExperienceYears(v int) *DoctorUpsert {
	u.Set(doctor.FieldExperienceYears, v)
	return u
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateExperienceYears() *DoctorUpsert {
	u.SetExcluded(doctor.FieldExperienceYears)
	return u
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsert) AddExperienceYears(v int) *DoctorUpsert {
	u.Add(doctor.FieldExperienceYears, v)
	return u
}

// SetBio sets the "bio" field.
func (u *DoctorUpsert) SetBio(v string) *DoctorUpsert {
	u.Set(doctor.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateBio() *DoctorUpsert {
	u.SetExcluded(doctor.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsert) ClearBio() *DoctorUpsert {
	u.SetNull(doctor.FieldBio)
	return u
}

// SetDepartmentID sets the "department_id" field.
func (u *DoctorUpsert) SetDepartmentID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldDepartmentID, v)
	return u
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateDepartmentID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldDepartmentID)
	return u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *DoctorUpsert) ClearDepartmentID() *DoctorUpsert {
	u.SetNull(doctor.FieldDepartmentID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsertOne) SetDeletedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateDeletedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsertOne) ClearDeletedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertOne) SetName(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsertOne) SetSpecialization(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialization() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialization()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertOne) SetExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertOne) AddExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateExperienceYears() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetBio sets the "bio" field.
func (u *DoctorUpsertOne) SetBio(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateBio() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsertOne) ClearBio() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBio()
	})
}

// SetDepartmentID sets the "department_id" field.
func (u *DoctorUpsertOne) SetDepartmentID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDepartmentID(v)
	})
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateDepartmentID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDepartmentID()
	})
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *DoctorUpsertOne) ClearDepartmentID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDepartmentID()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsertBulk) SetDeletedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateDeletedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsertBulk) ClearDeletedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertBulk) SetName(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsertBulk) SetSpecialization(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialization() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialization()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertBulk) SetExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertBulk) AddExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateExperienceYears() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetBio sets the "bio" field.
func (u *DoctorUpsertBulk) SetBio(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateBio() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsertBulk) ClearBio() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBio()
	})
}

// SetDepartmentID sets the "department_id" field.
func (u *DoctorUpsertBulk) SetDepartmentID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDepartmentID(v)
	})
}

// UpdateDepartmentID sets the "department_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateDepartmentID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDepartmentID()
	})
}

// ClearDepartmentID clears the value of the "department_id" field.
func (u *DoctorUpsertBulk) ClearDepartmentID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDepartmentID()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
