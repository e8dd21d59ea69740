// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
)

// PracticeQuestionCreate is the builder for creating a PracticeQuestion entity.
type PracticeQuestionCreate struct {
	config
	mutation *PracticeQuestionMutation
	hooks    []Hook
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *PracticeQuestionCreate) SetSubtopicID(v string) *PracticeQuestionCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PracticeQuestionCreate) SetCategory(v string) *PracticeQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *PracticeQuestionCreate) SetQuestion(v string) *PracticeQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *PracticeQuestionCreate) SetOptions(v string) *PracticeQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *PracticeQuestionCreate) SetAnswer(v int) *PracticeQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *PracticeQuestionCreate) SetExplanation(v string) *PracticeQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableExplanation(v *string) *PracticeQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeQuestionCreate) SetCreatedAt(v time.Time) *PracticeQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeQuestionCreate) SetNillableCreatedAt(v *time.Time) *PracticeQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeQuestionCreate) SetID(v string) *PracticeQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_c *PracticeQuestionCreate) Mutation() *PracticeQuestionMutation {
	return _c.mutation
}

// Save creates the PracticeQuestion in the database.
func (_c *PracticeQuestionCreate) Save(ctx context.Context) (*PracticeQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeQuestionCreate) SaveX(ctx context.Context) *PracticeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeQuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := practicequestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practicequestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeQuestionCreate) check() error {
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "PracticeQuestion.subtopic_id"`)}
	}
	if v, ok := _c.mutation.SubtopicID(); ok {
		if err := practicequestion.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.subtopic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PracticeQuestion.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := practicequestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "PracticeQuestion.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := practicequestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "PracticeQuestion.options"`)}
	}
	if v, ok := _c.mutation.Options(); ok {
		if err := practicequestion.OptionsValidator(v); err != nil {
			return &ValidationError{Name: "options", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.options": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "PracticeQuestion.answer"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeQuestion.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := practicequestion.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeQuestionCreate) sqlSave(ctx context.Context) (*PracticeQuestion, error) {
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
			return nil, fmt.Errorf("unexpected PracticeQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeQuestionCreate) createSpec() (*PracticeQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicequestion.Table, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(practicequestion.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(practicequestion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(practicequestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(practicequestion.FieldOptions, field.TypeString, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(practicequestion.FieldAnswer, field.TypeInt, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(practicequestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practicequestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PracticeQuestionCreateBulk is the builder for creating many PracticeQuestion entities in bulk.
type PracticeQuestionCreateBulk struct {
	config
	err      error
	builders []*PracticeQuestionCreate
}

// Save creates the PracticeQuestion entities in the database.
func (_c *PracticeQuestionCreateBulk) Save(ctx context.Context) ([]*PracticeQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeQuestionMutation)
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
func (_c *PracticeQuestionCreateBulk) SaveX(ctx context.Context) []*PracticeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
