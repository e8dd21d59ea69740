// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
	"github.com/mathsinbites/bitesmith/ent/predicate"
)

// PracticeQuestionUpdate is the builder for updating PracticeQuestion entities.
type PracticeQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeQuestionMutation
}

// Where appends a list predicates to the PracticeQuestionUpdate builder.
func (_u *PracticeQuestionUpdate) Where(ps ...predicate.PracticeQuestion) *PracticeQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *PracticeQuestionUpdate) SetSubtopicID(v string) *PracticeQuestionUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableSubtopicID(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PracticeQuestionUpdate) SetCategory(v string) *PracticeQuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableCategory(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PracticeQuestionUpdate) SetQuestion(v string) *PracticeQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableQuestion(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *PracticeQuestionUpdate) SetOptions(v string) *PracticeQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetNillableOptions sets the "options" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableOptions(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetOptions(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *PracticeQuestionUpdate) SetAnswer(v int) *PracticeQuestionUpdate {
	_u.mutation.ResetAnswer()
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableAnswer(v *int) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// AddAnswer adds value to the "answer" field.
func (_u *PracticeQuestionUpdate) AddAnswer(v int) *PracticeQuestionUpdate {
	_u.mutation.AddAnswer(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *PracticeQuestionUpdate) SetExplanation(v string) *PracticeQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *PracticeQuestionUpdate) SetNillableExplanation(v *string) *PracticeQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *PracticeQuestionUpdate) ClearExplanation() *PracticeQuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_u *PracticeQuestionUpdate) Mutation() *PracticeQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeQuestionUpdate) check() error {
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := practicequestion.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := practicequestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := practicequestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Options(); ok {
		if err := practicequestion.OptionsValidator(v); err != nil {
			return &ValidationError{Name: "options", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.options": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicequestion.Table, practicequestion.Columns, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(practicequestion.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(practicequestion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(practicequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(practicequestion.FieldOptions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(practicequestion.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswer(); ok {
		_spec.AddField(practicequestion.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(practicequestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(practicequestion.FieldExplanation, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeQuestionUpdateOne is the builder for updating a single PracticeQuestion entity.
type PracticeQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeQuestionMutation
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *PracticeQuestionUpdateOne) SetSubtopicID(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableSubtopicID(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PracticeQuestionUpdateOne) SetCategory(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableCategory(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PracticeQuestionUpdateOne) SetQuestion(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableQuestion(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *PracticeQuestionUpdateOne) SetOptions(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetNillableOptions sets the "options" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableOptions(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetOptions(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *PracticeQuestionUpdateOne) SetAnswer(v int) *PracticeQuestionUpdateOne {
	_u.mutation.ResetAnswer()
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableAnswer(v *int) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// AddAnswer adds value to the "answer" field.
func (_u *PracticeQuestionUpdateOne) AddAnswer(v int) *PracticeQuestionUpdateOne {
	_u.mutation.AddAnswer(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *PracticeQuestionUpdateOne) SetExplanation(v string) *PracticeQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *PracticeQuestionUpdateOne) SetNillableExplanation(v *string) *PracticeQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *PracticeQuestionUpdateOne) ClearExplanation() *PracticeQuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the PracticeQuestionMutation object of the builder.
func (_u *PracticeQuestionUpdateOne) Mutation() *PracticeQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeQuestionUpdate builder.
func (_u *PracticeQuestionUpdateOne) Where(ps ...predicate.PracticeQuestion) *PracticeQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeQuestionUpdateOne) Select(field string, fields ...string) *PracticeQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeQuestion entity.
func (_u *PracticeQuestionUpdateOne) Save(ctx context.Context) (*PracticeQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeQuestionUpdateOne) SaveX(ctx context.Context) *PracticeQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := practicequestion.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := practicequestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := practicequestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Options(); ok {
		if err := practicequestion.OptionsValidator(v); err != nil {
			return &ValidationError{Name: "options", err: fmt.Errorf(`ent: validator failed for field "PracticeQuestion.options": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeQuestionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicequestion.Table, practicequestion.Columns, sqlgraph.NewFieldSpec(practicequestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicequestion.FieldID)
		for _, f := range fields {
			if !practicequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicequestion.FieldID {
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
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(practicequestion.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(practicequestion.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(practicequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(practicequestion.FieldOptions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(practicequestion.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswer(); ok {
		_spec.AddField(practicequestion.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(practicequestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(practicequestion.FieldExplanation, field.TypeString)
	}
	_node = &PracticeQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
