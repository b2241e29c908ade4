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
	"github.com/medora-health/medora_backend/internal/repo/department"
	"github.com/medora-health/medora_backend/internal/repo/doctor"
	"github.com/medora-health/medora_backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdate) SetDeletedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDeletedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdate) ClearDeletedAt() *DoctorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdate) SetName(v string) *DoctorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdate) SetSpecialization(v string) *DoctorUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialization(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdate) SetExperienceYears(v int) *DoctorUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableExperienceYears(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdate) AddExperienceYears(v int) *DoctorUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdate) SetBio(v string) *DoctorUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBio(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdate) ClearBio() *DoctorUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *DoctorUpdate) SetDepartmentID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDepartmentID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *DoctorUpdate) ClearDepartmentID() *DoctorUpdate {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetDepartment sets the "department" edge to the Department entity.
func (_u *DoctorUpdate) SetDepartment(v *Department) *DoctorUpdate {
	return _u.SetDepartmentID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearDepartment clears the "department" edge to the Department entity.
func (_u *DoctorUpdate) ClearDepartment() *DoctorUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if _u.mutation.DepartmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdateOne) SetDeletedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDeletedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdateOne) ClearDeletedAt() *DoctorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdateOne) SetName(v string) *DoctorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdateOne) SetSpecialization(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialization(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdateOne) SetExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableExperienceYears(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdateOne) AddExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdateOne) SetBio(v string) *DoctorUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBio(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdateOne) ClearBio() *DoctorUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetDepartmentID sets the "department_id" field.
func (_u *DoctorUpdateOne) SetDepartmentID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetDepartmentID(v)
	return _u
}

// SetNillableDepartmentID sets the "department_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDepartmentID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetDepartmentID(*v)
	}
	return _u
}

// ClearDepartmentID clears the value of the "department_id" field.
func (_u *DoctorUpdateOne) ClearDepartmentID() *DoctorUpdateOne {
	_u.mutation.ClearDepartmentID()
	return _u
}

// SetDepartment sets the "department" edge to the Department entity.
func (_u *DoctorUpdateOne) SetDepartment(v *Department) *DoctorUpdateOne {
	return _u.SetDepartmentID(v.ID)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearDepartment clears the "department" edge to the Department entity.
func (_u *DoctorUpdateOne) ClearDepartment() *DoctorUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if _u.mutation.DepartmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DepartmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
