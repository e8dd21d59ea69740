// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/predicate"
	"github.com/mathsinbites/bitesmith/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SubtopicUpdate) SetTopicID(v string) *SubtopicUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableTopicID(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubtopicUpdate) SetName(v string) *SubtopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableName(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *SubtopicUpdate) SetSortOrder(v int) *SubtopicUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableSortOrder(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *SubtopicUpdate) AddSortOrder(v int) *SubtopicUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdate) Mutation() *SubtopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := subtopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Subtopic.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(subtopic.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(subtopic.FieldSortOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *SubtopicUpdateOne) SetTopicID(v string) *SubtopicUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableTopicID(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubtopicUpdateOne) SetName(v string) *SubtopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableName(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *SubtopicUpdateOne) SetSortOrder(v int) *SubtopicUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableSortOrder(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *SubtopicUpdateOne) AddSortOrder(v int) *SubtopicUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtopic entity.
func (_u *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := subtopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Subtopic.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
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
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(subtopic.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(subtopic.FieldSortOrder, field.TypeInt, value)
	}
	_node = &Subtopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
