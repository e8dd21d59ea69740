// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/genevent"
	"github.com/mathsinbites/bitesmith/ent/predicate"
)

// GenEventUpdate is the builder for updating GenEvent entities.
type GenEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenEventMutation
}

// Where appends a list predicates to the GenEventUpdate builder.
func (_u *GenEventUpdate) Where(ps ...predicate.GenEvent) *GenEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactKind sets the "artifact_kind" field.
func (_u *GenEventUpdate) SetArtifactKind(v string) *GenEventUpdate {
	_u.mutation.SetArtifactKind(v)
	return _u
}

// SetNillableArtifactKind sets the "artifact_kind" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableArtifactKind(v *string) *GenEventUpdate {
	if v != nil {
		_u.SetArtifactKind(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *GenEventUpdate) SetTopicID(v string) *GenEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableTopicID(v *string) *GenEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *GenEventUpdate) SetSubtopicID(v string) *GenEventUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableSubtopicID(v *string) *GenEventUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GenEventUpdate) SetOutcome(v string) *GenEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableOutcome(v *string) *GenEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *GenEventUpdate) SetDetail(v string) *GenEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableDetail(v *string) *GenEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *GenEventUpdate) ClearDetail() *GenEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenEventUpdate) SetLatencyMs(v int64) *GenEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenEventUpdate) SetNillableLatencyMs(v *int64) *GenEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenEventUpdate) AddLatencyMs(v int64) *GenEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GenEventMutation object of the builder.
func (_u *GenEventUpdate) Mutation() *GenEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenEventUpdate) check() error {
	if v, ok := _u.mutation.ArtifactKind(); ok {
		if err := genevent.ArtifactKindValidator(v); err != nil {
			return &ValidationError{Name: "artifact_kind", err: fmt.Errorf(`ent: validator failed for field "GenEvent.artifact_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := genevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := genevent.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := genevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GenEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *GenEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(genevent.Table, genevent.Columns, sqlgraph.NewFieldSpec(genevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactKind(); ok {
		_spec.SetField(genevent.FieldArtifactKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(genevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(genevent.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(genevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(genevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(genevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(genevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(genevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{genevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenEventUpdateOne is the builder for updating a single GenEvent entity.
type GenEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenEventMutation
}

// SetArtifactKind sets the "artifact_kind" field.
func (_u *GenEventUpdateOne) SetArtifactKind(v string) *GenEventUpdateOne {
	_u.mutation.SetArtifactKind(v)
	return _u
}

// SetNillableArtifactKind sets the "artifact_kind" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableArtifactKind(v *string) *GenEventUpdateOne {
	if v != nil {
		_u.SetArtifactKind(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *GenEventUpdateOne) SetTopicID(v string) *GenEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableTopicID(v *string) *GenEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *GenEventUpdateOne) SetSubtopicID(v string) *GenEventUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableSubtopicID(v *string) *GenEventUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *GenEventUpdateOne) SetOutcome(v string) *GenEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableOutcome(v *string) *GenEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *GenEventUpdateOne) SetDetail(v string) *GenEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableDetail(v *string) *GenEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *GenEventUpdateOne) ClearDetail() *GenEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenEventUpdateOne) SetLatencyMs(v int64) *GenEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenEventUpdateOne) SetNillableLatencyMs(v *int64) *GenEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenEventUpdateOne) AddLatencyMs(v int64) *GenEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GenEventMutation object of the builder.
func (_u *GenEventUpdateOne) Mutation() *GenEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenEventUpdate builder.
func (_u *GenEventUpdateOne) Where(ps ...predicate.GenEvent) *GenEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenEventUpdateOne) Select(field string, fields ...string) *GenEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenEvent entity.
func (_u *GenEventUpdateOne) Save(ctx context.Context) (*GenEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenEventUpdateOne) SaveX(ctx context.Context) *GenEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenEventUpdateOne) check() error {
	if v, ok := _u.mutation.ArtifactKind(); ok {
		if err := genevent.ArtifactKindValidator(v); err != nil {
			return &ValidationError{Name: "artifact_kind", err: fmt.Errorf(`ent: validator failed for field "GenEvent.artifact_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := genevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicID(); ok {
		if err := genevent.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.subtopic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := genevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GenEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *GenEventUpdateOne) sqlSave(ctx context.Context) (_node *GenEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(genevent.Table, genevent.Columns, sqlgraph.NewFieldSpec(genevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, genevent.FieldID)
		for _, f := range fields {
			if !genevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != genevent.FieldID {
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
	if value, ok := _u.mutation.ArtifactKind(); ok {
		_spec.SetField(genevent.FieldArtifactKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(genevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(genevent.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(genevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(genevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(genevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(genevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(genevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &GenEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{genevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
