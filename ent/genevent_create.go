// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsinbites/bitesmith/ent/genevent"
)

// GenEventCreate is the builder for creating a GenEvent entity.
type GenEventCreate struct {
	config
	mutation *GenEventMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenEventCreate) SetTimestamp(v time.Time) *GenEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenEventCreate) SetNillableTimestamp(v *time.Time) *GenEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetArtifactKind sets the "artifact_kind" field.
func (_c *GenEventCreate) SetArtifactKind(v string) *GenEventCreate {
	_c.mutation.SetArtifactKind(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *GenEventCreate) SetTopicID(v string) *GenEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *GenEventCreate) SetSubtopicID(v string) *GenEventCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *GenEventCreate) SetOutcome(v string) *GenEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *GenEventCreate) SetDetail(v string) *GenEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *GenEventCreate) SetNillableDetail(v *string) *GenEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GenEventCreate) SetLatencyMs(v int64) *GenEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GenEventCreate) SetNillableLatencyMs(v *int64) *GenEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the GenEventMutation object of the builder.
func (_c *GenEventCreate) Mutation() *GenEventMutation {
	return _c.mutation
}

// Save creates the GenEvent in the database.
func (_c *GenEventCreate) Save(ctx context.Context) (*GenEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenEventCreate) SaveX(ctx context.Context) *GenEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := genevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := genevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := genevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenEventCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ArtifactKind(); !ok {
		return &ValidationError{Name: "artifact_kind", err: errors.New(`ent: missing required field "GenEvent.artifact_kind"`)}
	}
	if v, ok := _c.mutation.ArtifactKind(); ok {
		if err := genevent.ArtifactKindValidator(v); err != nil {
			return &ValidationError{Name: "artifact_kind", err: fmt.Errorf(`ent: validator failed for field "GenEvent.artifact_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "GenEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := genevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "GenEvent.subtopic_id"`)}
	}
	if v, ok := _c.mutation.SubtopicID(); ok {
		if err := genevent.SubtopicIDValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_id", err: fmt.Errorf(`ent: validator failed for field "GenEvent.subtopic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "GenEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := genevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GenEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GenEvent.latency_ms"`)}
	}
	return nil
}

func (_c *GenEventCreate) sqlSave(ctx context.Context) (*GenEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenEventCreate) createSpec() (*GenEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GenEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(genevent.Table, sqlgraph.NewFieldSpec(genevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(genevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ArtifactKind(); ok {
		_spec.SetField(genevent.FieldArtifactKind, field.TypeString, value)
		_node.ArtifactKind = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(genevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(genevent.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(genevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(genevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(genevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// GenEventCreateBulk is the builder for creating many GenEvent entities in bulk.
type GenEventCreateBulk struct {
	config
	err      error
	builders []*GenEventCreate
}

// Save creates the GenEvent entities in the database.
func (_c *GenEventCreateBulk) Save(ctx context.Context) ([]*GenEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *GenEventCreateBulk) SaveX(ctx context.Context) []*GenEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
