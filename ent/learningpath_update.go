// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/learningpath"
	"github.com/mathsinbites/bitesmith/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LearningPathUpdate) SetName(v string) *LearningPathUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableName(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LearningPathUpdate) SetGrade(v string) *LearningPathUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableGrade(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *LearningPathUpdate) SetIcon(v string) *LearningPathUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableIcon(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *LearningPathUpdate) ClearIcon() *LearningPathUpdate {
	_u.mutation.ClearIcon()
	return _u
}

// SetActive sets the "active" field.
func (_u *LearningPathUpdate) SetActive(v bool) *LearningPathUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableActive(v *bool) *LearningPathUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *LearningPathUpdate) SetSortOrder(v int) *LearningPathUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableSortOrder(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *LearningPathUpdate) AddSortOrder(v int) *LearningPathUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learningpath.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearningPath.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := learningpath.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningPath.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learningpath.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(learningpath.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(learningpath.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(learningpath.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(learningpath.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(learningpath.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(learningpath.FieldSortOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetName sets the "name" field.
func (_u *LearningPathUpdateOne) SetName(v string) *LearningPathUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableName(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LearningPathUpdateOne) SetGrade(v string) *LearningPathUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableGrade(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *LearningPathUpdateOne) SetIcon(v string) *LearningPathUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableIcon(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *LearningPathUpdateOne) ClearIcon() *LearningPathUpdateOne {
	_u.mutation.ClearIcon()
	return _u
}

// SetActive sets the "active" field.
func (_u *LearningPathUpdateOne) SetActive(v bool) *LearningPathUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableActive(v *bool) *LearningPathUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *LearningPathUpdateOne) SetSortOrder(v int) *LearningPathUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableSortOrder(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *LearningPathUpdateOne) AddSortOrder(v int) *LearningPathUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learningpath.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearningPath.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := learningpath.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningPath.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learningpath.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(learningpath.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(learningpath.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(learningpath.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(learningpath.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(learningpath.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(learningpath.FieldSortOrder, field.TypeInt, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
