// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/predicate"
	"github.com/abhisek/prepdeck/ent/testevent"
)

// TestEventUpdate is the builder for updating TestEvent entities.
type TestEventUpdate struct {
	config
	hooks    []Hook
	mutation *TestEventMutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdate) Where(ps ...predicate.TestEvent) *TestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestEventUpdate) SetTestID(v int) *TestEventUpdate {
	_u.mutation.ResetTestID()
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTestID(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// AddTestID adds value to the "test_id" field.
func (_u *TestEventUpdate) AddTestID(v int) *TestEventUpdate {
	_u.mutation.AddTestID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TestEventUpdate) SetSessionID(v int) *TestEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableSessionID(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *TestEventUpdate) AddSessionID(v int) *TestEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TestEventUpdate) SetTopicID(v int) *TestEventUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTopicID(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *TestEventUpdate) AddTopicID(v int) *TestEventUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestEventUpdate) SetQuestionCount(v int) *TestEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableQuestionCount(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestEventUpdate) AddQuestionCount(v int) *TestEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestEventUpdate) SetCorrectCount(v int) *TestEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableCorrectCount(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestEventUpdate) AddCorrectCount(v int) *TestEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *TestEventUpdate) SetIncorrectCount(v int) *TestEventUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableIncorrectCount(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *TestEventUpdate) AddIncorrectCount(v int) *TestEventUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TestEventUpdate) SetScore(v float64) *TestEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableScore(v *float64) *TestEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestEventUpdate) AddScore(v float64) *TestEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetStarEarned sets the "star_earned" field.
func (_u *TestEventUpdate) SetStarEarned(v bool) *TestEventUpdate {
	_u.mutation.SetStarEarned(v)
	return _u
}

// SetNillableStarEarned sets the "star_earned" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableStarEarned(v *bool) *TestEventUpdate {
	if v != nil {
		_u.SetStarEarned(*v)
	}
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *TestEventUpdate) SetTotalTimeSecs(v int) *TestEventUpdate {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTotalTimeSecs(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *TestEventUpdate) AddTotalTimeSecs(v int) *TestEventUpdate {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdate) Mutation() *TestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdate) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := testevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestID(); ok {
		_spec.AddField(testevent.FieldTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(testevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(testevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(testevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(testevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(testevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(testevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(testevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(testevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StarEarned(); ok {
		_spec.SetField(testevent.FieldStarEarned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(testevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(testevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestEventUpdateOne is the builder for updating a single TestEvent entity.
type TestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestEventMutation
}

// SetTestID sets the "test_id" field.
func (_u *TestEventUpdateOne) SetTestID(v int) *TestEventUpdateOne {
	_u.mutation.ResetTestID()
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTestID(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// AddTestID adds value to the "test_id" field.
func (_u *TestEventUpdateOne) AddTestID(v int) *TestEventUpdateOne {
	_u.mutation.AddTestID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TestEventUpdateOne) SetSessionID(v int) *TestEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableSessionID(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *TestEventUpdateOne) AddSessionID(v int) *TestEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TestEventUpdateOne) SetTopicID(v int) *TestEventUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTopicID(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *TestEventUpdateOne) AddTopicID(v int) *TestEventUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestEventUpdateOne) SetQuestionCount(v int) *TestEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableQuestionCount(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestEventUpdateOne) AddQuestionCount(v int) *TestEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *TestEventUpdateOne) SetCorrectCount(v int) *TestEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableCorrectCount(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *TestEventUpdateOne) AddCorrectCount(v int) *TestEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *TestEventUpdateOne) SetIncorrectCount(v int) *TestEventUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableIncorrectCount(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *TestEventUpdateOne) AddIncorrectCount(v int) *TestEventUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TestEventUpdateOne) SetScore(v float64) *TestEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableScore(v *float64) *TestEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestEventUpdateOne) AddScore(v float64) *TestEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetStarEarned sets the "star_earned" field.
func (_u *TestEventUpdateOne) SetStarEarned(v bool) *TestEventUpdateOne {
	_u.mutation.SetStarEarned(v)
	return _u
}

// SetNillableStarEarned sets the "star_earned" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableStarEarned(v *bool) *TestEventUpdateOne {
	if v != nil {
		_u.SetStarEarned(*v)
	}
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *TestEventUpdateOne) SetTotalTimeSecs(v int) *TestEventUpdateOne {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTotalTimeSecs(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *TestEventUpdateOne) AddTotalTimeSecs(v int) *TestEventUpdateOne {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdateOne) Mutation() *TestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdateOne) Where(ps ...predicate.TestEvent) *TestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestEventUpdateOne) Select(field string, fields ...string) *TestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestEvent entity.
func (_u *TestEventUpdateOne) Save(ctx context.Context) (*TestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdateOne) SaveX(ctx context.Context) *TestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdateOne) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := testevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdateOne) sqlSave(ctx context.Context) (_node *TestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testevent.FieldID)
		for _, f := range fields {
			if !testevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testevent.FieldID {
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
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestID(); ok {
		_spec.AddField(testevent.FieldTestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(testevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(testevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(testevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(testevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(testevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(testevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(testevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(testevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(testevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(testevent.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StarEarned(); ok {
		_spec.SetField(testevent.FieldStarEarned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(testevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(testevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	_node = &TestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
