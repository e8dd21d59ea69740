// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/learningpath"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LearningPathCreate) SetName(v string) *LearningPathCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *LearningPathCreate) SetGrade(v string) *LearningPathCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetIcon sets the "icon" field.
func (_c *LearningPathCreate) SetIcon(v string) *LearningPathCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableIcon(v *string) *LearningPathCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *LearningPathCreate) SetActive(v bool) *LearningPathCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableActive(v *bool) *LearningPathCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *LearningPathCreate) SetSortOrder(v int) *LearningPathCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableSortOrder(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPathCreate) SetID(v string) *LearningPathCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPathMutation object of the builder.
func (_c *LearningPathCreate) Mutation() *LearningPathMutation {
	return _c.mutation
}

// Save creates the LearningPath in the database.
func (_c *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPathCreate) defaults() {
	if _, ok := _c.mutation.Icon(); !ok {
		v := learningpath.DefaultIcon
		_c.mutation.SetIcon(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := learningpath.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := learningpath.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LearningPath.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := learningpath.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearningPath.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "LearningPath.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := learningpath.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningPath.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "LearningPath.active"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "LearningPath.sort_order"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningpath.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearningPath.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learningpath.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(learningpath.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(learningpath.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(learningpath.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(learningpath.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (_c *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
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
func (_c *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
