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
	"github.com/abhisek/prepdeck/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v int) *SessionEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *SessionEventUpdate) AddSessionID(v int) *SessionEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionEventUpdate) SetTopicID(v int) *SessionEventUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopicID(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *SessionEventUpdate) AddTopicID(v int) *SessionEventUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlannedMins sets the "planned_mins" field.
func (_u *SessionEventUpdate) SetPlannedMins(v int) *SessionEventUpdate {
	_u.mutation.ResetPlannedMins()
	_u.mutation.SetPlannedMins(v)
	return _u
}

// SetNillablePlannedMins sets the "planned_mins" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePlannedMins(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPlannedMins(*v)
	}
	return _u
}

// AddPlannedMins adds value to the "planned_mins" field.
func (_u *SessionEventUpdate) AddPlannedMins(v int) *SessionEventUpdate {
	_u.mutation.AddPlannedMins(v)
	return _u
}

// SetActualMins sets the "actual_mins" field.
func (_u *SessionEventUpdate) SetActualMins(v int) *SessionEventUpdate {
	_u.mutation.ResetActualMins()
	_u.mutation.SetActualMins(v)
	return _u
}

// SetNillableActualMins sets the "actual_mins" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableActualMins(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetActualMins(*v)
	}
	return _u
}

// AddActualMins adds value to the "actual_mins" field.
func (_u *SessionEventUpdate) AddActualMins(v int) *SessionEventUpdate {
	_u.mutation.AddActualMins(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SessionEventUpdate) SetOutcome(v string) *SessionEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableOutcome(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(sessionevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedMins(); ok {
		_spec.SetField(sessionevent.FieldPlannedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMins(); ok {
		_spec.AddField(sessionevent.FieldPlannedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualMins(); ok {
		_spec.SetField(sessionevent.FieldActualMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMins(); ok {
		_spec.AddField(sessionevent.FieldActualMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(sessionevent.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v int) *SessionEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *SessionEventUpdateOne) AddSessionID(v int) *SessionEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionEventUpdateOne) SetTopicID(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopicID(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *SessionEventUpdateOne) AddTopicID(v int) *SessionEventUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlannedMins sets the "planned_mins" field.
func (_u *SessionEventUpdateOne) SetPlannedMins(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPlannedMins()
	_u.mutation.SetPlannedMins(v)
	return _u
}

// SetNillablePlannedMins sets the "planned_mins" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePlannedMins(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPlannedMins(*v)
	}
	return _u
}

// AddPlannedMins adds value to the "planned_mins" field.
func (_u *SessionEventUpdateOne) AddPlannedMins(v int) *SessionEventUpdateOne {
	_u.mutation.AddPlannedMins(v)
	return _u
}

// SetActualMins sets the "actual_mins" field.
func (_u *SessionEventUpdateOne) SetActualMins(v int) *SessionEventUpdateOne {
	_u.mutation.ResetActualMins()
	_u.mutation.SetActualMins(v)
	return _u
}

// SetNillableActualMins sets the "actual_mins" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableActualMins(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetActualMins(*v)
	}
	return _u
}

// AddActualMins adds value to the "actual_mins" field.
func (_u *SessionEventUpdateOne) AddActualMins(v int) *SessionEventUpdateOne {
	_u.mutation.AddActualMins(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SessionEventUpdateOne) SetOutcome(v string) *SessionEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableOutcome(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(sessionevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(sessionevent.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedMins(); ok {
		_spec.SetField(sessionevent.FieldPlannedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlannedMins(); ok {
		_spec.AddField(sessionevent.FieldPlannedMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualMins(); ok {
		_spec.SetField(sessionevent.FieldActualMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualMins(); ok {
		_spec.AddField(sessionevent.FieldActualMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(sessionevent.FieldOutcome, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
