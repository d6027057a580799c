// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/testevent"
)

// TestEventCreate is the builder for creating a TestEvent entity.
type TestEventCreate struct {
	config
	mutation *TestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TestEventCreate) SetSequence(v int64) *TestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestEventCreate) SetTimestamp(v time.Time) *TestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTimestamp(v *time.Time) *TestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *TestEventCreate) SetTestID(v int) *TestEventCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TestEventCreate) SetSessionID(v int) *TestEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableSessionID(v *int) *TestEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TestEventCreate) SetTopicID(v int) *TestEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *TestEventCreate) SetQuestionCount(v int) *TestEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableQuestionCount(v *int) *TestEventCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *TestEventCreate) SetCorrectCount(v int) *TestEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableCorrectCount(v *int) *TestEventCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *TestEventCreate) SetIncorrectCount(v int) *TestEventCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableIncorrectCount(v *int) *TestEventCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TestEventCreate) SetScore(v float64) *TestEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableScore(v *float64) *TestEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStarEarned sets the "star_earned" field.
func (_c *TestEventCreate) SetStarEarned(v bool) *TestEventCreate {
	_c.mutation.SetStarEarned(v)
	return _c
}

// SetNillableStarEarned sets the "star_earned" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableStarEarned(v *bool) *TestEventCreate {
	if v != nil {
		_c.SetStarEarned(*v)
	}
	return _c
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_c *TestEventCreate) SetTotalTimeSecs(v int) *TestEventCreate {
	_c.mutation.SetTotalTimeSecs(v)
	return _c
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTotalTimeSecs(v *int) *TestEventCreate {
	if v != nil {
		_c.SetTotalTimeSecs(*v)
	}
	return _c
}

// Mutation returns the TestEventMutation object of the builder.
func (_c *TestEventCreate) Mutation() *TestEventMutation {
	return _c.mutation
}

// Save creates the TestEvent in the database.
func (_c *TestEventCreate) Save(ctx context.Context) (*TestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestEventCreate) SaveX(ctx context.Context) *TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := testevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := testevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := testevent.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := testevent.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := testevent.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := testevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.StarEarned(); !ok {
		v := testevent.DefaultStarEarned
		_c.mutation.SetStarEarned(v)
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		v := testevent.DefaultTotalTimeSecs
		_c.mutation.SetTotalTimeSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "TestEvent.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TestEvent.session_id"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TestEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := testevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "TestEvent.question_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "TestEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "TestEvent.incorrect_count"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TestEvent.score"`)}
	}
	if _, ok := _c.mutation.StarEarned(); !ok {
		return &ValidationError{Name: "star_earned", err: errors.New(`ent: missing required field "TestEvent.star_earned"`)}
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		return &ValidationError{Name: "total_time_secs", err: errors.New(`ent: missing required field "TestEvent.total_time_secs"`)}
	}
	return nil
}

func (_c *TestEventCreate) sqlSave(ctx context.Context) (*TestEvent, error) {
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

func (_c *TestEventCreate) createSpec() (*TestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testevent.Table, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(testevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeInt, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(testevent.FieldSessionID, field.TypeInt, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(testevent.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(testevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(testevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(testevent.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.StarEarned(); ok {
		_spec.SetField(testevent.FieldStarEarned, field.TypeBool, value)
		_node.StarEarned = value
	}
	if value, ok := _c.mutation.TotalTimeSecs(); ok {
		_spec.SetField(testevent.FieldTotalTimeSecs, field.TypeInt, value)
		_node.TotalTimeSecs = value
	}
	return _node, _spec
}

// TestEventCreateBulk is the builder for creating many TestEvent entities in bulk.
type TestEventCreateBulk struct {
	config
	err      error
	builders []*TestEventCreate
}

// Save creates the TestEvent entities in the database.
func (_c *TestEventCreateBulk) Save(ctx context.Context) ([]*TestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestEventMutation)
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
func (_c *TestEventCreateBulk) SaveX(ctx context.Context) []*TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
