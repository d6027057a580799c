// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/seenquestion"
)

// SeenQuestionCreate is the builder for creating a SeenQuestion entity.
type SeenQuestionCreate struct {
	config
	mutation *SeenQuestionMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *SeenQuestionCreate) SetTopicID(v int) *SeenQuestionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SeenQuestionCreate) SetQuestionID(v int) *SeenQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *SeenQuestionCreate) SetFirstSeen(v time.Time) *SeenQuestionCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *SeenQuestionCreate) SetNillableFirstSeen(v *time.Time) *SeenQuestionCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// Mutation returns the SeenQuestionMutation object of the builder.
func (_c *SeenQuestionCreate) Mutation() *SeenQuestionMutation {
	return _c.mutation
}

// Save creates the SeenQuestion in the database.
func (_c *SeenQuestionCreate) Save(ctx context.Context) (*SeenQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SeenQuestionCreate) SaveX(ctx context.Context) *SeenQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeenQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeenQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SeenQuestionCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := seenquestion.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SeenQuestionCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "SeenQuestion.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := seenquestion.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SeenQuestion.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SeenQuestion.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := seenquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SeenQuestion.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "SeenQuestion.first_seen"`)}
	}
	return nil
}

func (_c *SeenQuestionCreate) sqlSave(ctx context.Context) (*SeenQuestion, error) {
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

func (_c *SeenQuestionCreate) createSpec() (*SeenQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &SeenQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(seenquestion.Table, sqlgraph.NewFieldSpec(seenquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(seenquestion.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(seenquestion.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(seenquestion.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	return _node, _spec
}

// SeenQuestionCreateBulk is the builder for creating many SeenQuestion entities in bulk.
type SeenQuestionCreateBulk struct {
	config
	err      error
	builders []*SeenQuestionCreate
}

// Save creates the SeenQuestion entities in the database.
func (_c *SeenQuestionCreateBulk) Save(ctx context.Context) ([]*SeenQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SeenQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeenQuestionMutation)
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
func (_c *SeenQuestionCreateBulk) SaveX(ctx context.Context) []*SeenQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeenQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeenQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
