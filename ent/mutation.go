// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/predicate"
	"github.com/abhisek/prepdeck/ent/seenquestion"
	"github.com/abhisek/prepdeck/ent/sessionevent"
	"github.com/abhisek/prepdeck/ent/testevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSeenQuestion = "SeenQuestion"
	TypeSessionEvent = "SessionEvent"
	TypeTestEvent    = "TestEvent"
)

// SeenQuestionMutation represents an operation that mutates the SeenQuestion nodes in the graph.
type SeenQuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	topic_id       *int
	addtopic_id    *int
	question_id    *int
	addquestion_id *int
	first_seen     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SeenQuestion, error)
	predicates     []predicate.SeenQuestion
}

var _ ent.Mutation = (*SeenQuestionMutation)(nil)

// seenquestionOption allows management of the mutation configuration using functional options.
type seenquestionOption func(*SeenQuestionMutation)

// newSeenQuestionMutation creates new mutation for the SeenQuestion entity.
func newSeenQuestionMutation(c config, op Op, opts ...seenquestionOption) *SeenQuestionMutation {
	m := &SeenQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSeenQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeenQuestionID sets the ID field of the mutation.
func withSeenQuestionID(id int) seenquestionOption {
	return func(m *SeenQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *SeenQuestion
		)
		m.oldValue = func(ctx context.Context) (*SeenQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeenQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeenQuestion sets the old SeenQuestion of the mutation.
func withSeenQuestion(node *SeenQuestion) seenquestionOption {
	return func(m *SeenQuestionMutation) {
		m.oldValue = func(context.Context) (*SeenQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeenQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeenQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeenQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeenQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeenQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *SeenQuestionMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SeenQuestionMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the SeenQuestion entity.
// If the SeenQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeenQuestionMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *SeenQuestionMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *SeenQuestionMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SeenQuestionMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SeenQuestionMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SeenQuestionMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SeenQuestion entity.
// If the SeenQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeenQuestionMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *SeenQuestionMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *SeenQuestionMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SeenQuestionMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *SeenQuestionMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *SeenQuestionMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the SeenQuestion entity.
// If the SeenQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeenQuestionMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *SeenQuestionMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// Where appends a list predicates to the SeenQuestionMutation builder.
func (m *SeenQuestionMutation) Where(ps ...predicate.SeenQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeenQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeenQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeenQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeenQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeenQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeenQuestion).
func (m *SeenQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeenQuestionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.topic_id != nil {
		fields = append(fields, seenquestion.FieldTopicID)
	}
	if m.question_id != nil {
		fields = append(fields, seenquestion.FieldQuestionID)
	}
	if m.first_seen != nil {
		fields = append(fields, seenquestion.FieldFirstSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeenQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seenquestion.FieldTopicID:
		return m.TopicID()
	case seenquestion.FieldQuestionID:
		return m.QuestionID()
	case seenquestion.FieldFirstSeen:
		return m.FirstSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeenQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seenquestion.FieldTopicID:
		return m.OldTopicID(ctx)
	case seenquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case seenquestion.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	}
	return nil, fmt.Errorf("unknown SeenQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeenQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seenquestion.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case seenquestion.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case seenquestion.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	}
	return fmt.Errorf("unknown SeenQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeenQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, seenquestion.FieldTopicID)
	}
	if m.addquestion_id != nil {
		fields = append(fields, seenquestion.FieldQuestionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeenQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case seenquestion.FieldTopicID:
		return m.AddedTopicID()
	case seenquestion.FieldQuestionID:
		return m.AddedQuestionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeenQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case seenquestion.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case seenquestion.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown SeenQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeenQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeenQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeenQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SeenQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeenQuestionMutation) ResetField(name string) error {
	switch name {
	case seenquestion.FieldTopicID:
		m.ResetTopicID()
		return nil
	case seenquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case seenquestion.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	}
	return fmt.Errorf("unknown SeenQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeenQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeenQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeenQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeenQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeenQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeenQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeenQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeenQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeenQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeenQuestion edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	session_id      *int
	addsession_id   *int
	topic_id        *int
	addtopic_id     *int
	action          *string
	planned_mins    *int
	addplanned_mins *int
	actual_mins     *int
	addactual_mins  *int
	outcome         *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SessionEvent, error)
	predicates      []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *SessionEventMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *SessionEventMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *SessionEventMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SessionEventMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *SessionEventMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *SessionEventMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SessionEventMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetPlannedMins sets the "planned_mins" field.
func (m *SessionEventMutation) SetPlannedMins(i int) {
	m.planned_mins = &i
	m.addplanned_mins = nil
}

// PlannedMins returns the value of the "planned_mins" field in the mutation.
func (m *SessionEventMutation) PlannedMins() (r int, exists bool) {
	v := m.planned_mins
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedMins returns the old "planned_mins" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPlannedMins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedMins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedMins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedMins: %w", err)
	}
	return oldValue.PlannedMins, nil
}

// AddPlannedMins adds i to the "planned_mins" field.
func (m *SessionEventMutation) AddPlannedMins(i int) {
	if m.addplanned_mins != nil {
		*m.addplanned_mins += i
	} else {
		m.addplanned_mins = &i
	}
}

// AddedPlannedMins returns the value that was added to the "planned_mins" field in this mutation.
func (m *SessionEventMutation) AddedPlannedMins() (r int, exists bool) {
	v := m.addplanned_mins
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedMins resets all changes to the "planned_mins" field.
func (m *SessionEventMutation) ResetPlannedMins() {
	m.planned_mins = nil
	m.addplanned_mins = nil
}

// SetActualMins sets the "actual_mins" field.
func (m *SessionEventMutation) SetActualMins(i int) {
	m.actual_mins = &i
	m.addactual_mins = nil
}

// ActualMins returns the value of the "actual_mins" field in the mutation.
func (m *SessionEventMutation) ActualMins() (r int, exists bool) {
	v := m.actual_mins
	if v == nil {
		return
	}
	return *v, true
}

// OldActualMins returns the old "actual_mins" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldActualMins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualMins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualMins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualMins: %w", err)
	}
	return oldValue.ActualMins, nil
}

// AddActualMins adds i to the "actual_mins" field.
func (m *SessionEventMutation) AddActualMins(i int) {
	if m.addactual_mins != nil {
		*m.addactual_mins += i
	} else {
		m.addactual_mins = &i
	}
}

// AddedActualMins returns the value that was added to the "actual_mins" field in this mutation.
func (m *SessionEventMutation) AddedActualMins() (r int, exists bool) {
	v := m.addactual_mins
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualMins resets all changes to the "actual_mins" field.
func (m *SessionEventMutation) ResetActualMins() {
	m.actual_mins = nil
	m.addactual_mins = nil
}

// SetOutcome sets the "outcome" field.
func (m *SessionEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *SessionEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *SessionEventMutation) ResetOutcome() {
	m.outcome = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, sessionevent.FieldTopicID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.planned_mins != nil {
		fields = append(fields, sessionevent.FieldPlannedMins)
	}
	if m.actual_mins != nil {
		fields = append(fields, sessionevent.FieldActualMins)
	}
	if m.outcome != nil {
		fields = append(fields, sessionevent.FieldOutcome)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldTopicID:
		return m.TopicID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldPlannedMins:
		return m.PlannedMins()
	case sessionevent.FieldActualMins:
		return m.ActualMins()
	case sessionevent.FieldOutcome:
		return m.Outcome()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldTopicID:
		return m.OldTopicID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldPlannedMins:
		return m.OldPlannedMins(ctx)
	case sessionevent.FieldActualMins:
		return m.OldActualMins(ctx)
	case sessionevent.FieldOutcome:
		return m.OldOutcome(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldPlannedMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedMins(v)
		return nil
	case sessionevent.FieldActualMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualMins(v)
		return nil
	case sessionevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addsession_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, sessionevent.FieldTopicID)
	}
	if m.addplanned_mins != nil {
		fields = append(fields, sessionevent.FieldPlannedMins)
	}
	if m.addactual_mins != nil {
		fields = append(fields, sessionevent.FieldActualMins)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldSessionID:
		return m.AddedSessionID()
	case sessionevent.FieldTopicID:
		return m.AddedTopicID()
	case sessionevent.FieldPlannedMins:
		return m.AddedPlannedMins()
	case sessionevent.FieldActualMins:
		return m.AddedActualMins()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case sessionevent.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case sessionevent.FieldPlannedMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedMins(v)
		return nil
	case sessionevent.FieldActualMins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualMins(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldTopicID:
		m.ResetTopicID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldPlannedMins:
		m.ResetPlannedMins()
		return nil
	case sessionevent.FieldActualMins:
		m.ResetActualMins()
		return nil
	case sessionevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// TestEventMutation represents an operation that mutates the TestEvent nodes in the graph.
type TestEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	test_id            *int
	addtest_id         *int
	session_id         *int
	addsession_id      *int
	topic_id           *int
	addtopic_id        *int
	question_count     *int
	addquestion_count  *int
	correct_count      *int
	addcorrect_count   *int
	incorrect_count    *int
	addincorrect_count *int
	score              *float64
	addscore           *float64
	star_earned        *bool
	total_time_secs    *int
	addtotal_time_secs *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TestEvent, error)
	predicates         []predicate.TestEvent
}

var _ ent.Mutation = (*TestEventMutation)(nil)

// testeventOption allows management of the mutation configuration using functional options.
type testeventOption func(*TestEventMutation)

// newTestEventMutation creates new mutation for the TestEvent entity.
func newTestEventMutation(c config, op Op, opts ...testeventOption) *TestEventMutation {
	m := &TestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestEventID sets the ID field of the mutation.
func withTestEventID(id int) testeventOption {
	return func(m *TestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TestEvent
		)
		m.oldValue = func(ctx context.Context) (*TestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestEvent sets the old TestEvent of the mutation.
func withTestEvent(node *TestEvent) testeventOption {
	return func(m *TestEventMutation) {
		m.oldValue = func(context.Context) (*TestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTestID sets the "test_id" field.
func (m *TestEventMutation) SetTestID(i int) {
	m.test_id = &i
	m.addtest_id = nil
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *TestEventMutation) TestID() (r int, exists bool) {
	v := m.test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldTestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// AddTestID adds i to the "test_id" field.
func (m *TestEventMutation) AddTestID(i int) {
	if m.addtest_id != nil {
		*m.addtest_id += i
	} else {
		m.addtest_id = &i
	}
}

// AddedTestID returns the value that was added to the "test_id" field in this mutation.
func (m *TestEventMutation) AddedTestID() (r int, exists bool) {
	v := m.addtest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestID resets all changes to the "test_id" field.
func (m *TestEventMutation) ResetTestID() {
	m.test_id = nil
	m.addtest_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *TestEventMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TestEventMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *TestEventMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *TestEventMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TestEventMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TestEventMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TestEventMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TestEventMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TestEventMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TestEventMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *TestEventMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *TestEventMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *TestEventMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *TestEventMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *TestEventMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *TestEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *TestEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *TestEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *TestEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *TestEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetIncorrectCount sets the "incorrect_count" field.
func (m *TestEventMutation) SetIncorrectCount(i int) {
	m.incorrect_count = &i
	m.addincorrect_count = nil
}

// IncorrectCount returns the value of the "incorrect_count" field in the mutation.
func (m *TestEventMutation) IncorrectCount() (r int, exists bool) {
	v := m.incorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIncorrectCount returns the old "incorrect_count" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldIncorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncorrectCount: %w", err)
	}
	return oldValue.IncorrectCount, nil
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (m *TestEventMutation) AddIncorrectCount(i int) {
	if m.addincorrect_count != nil {
		*m.addincorrect_count += i
	} else {
		m.addincorrect_count = &i
	}
}

// AddedIncorrectCount returns the value that was added to the "incorrect_count" field in this mutation.
func (m *TestEventMutation) AddedIncorrectCount() (r int, exists bool) {
	v := m.addincorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncorrectCount resets all changes to the "incorrect_count" field.
func (m *TestEventMutation) ResetIncorrectCount() {
	m.incorrect_count = nil
	m.addincorrect_count = nil
}

// SetScore sets the "score" field.
func (m *TestEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TestEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *TestEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TestEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TestEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetStarEarned sets the "star_earned" field.
func (m *TestEventMutation) SetStarEarned(b bool) {
	m.star_earned = &b
}

// StarEarned returns the value of the "star_earned" field in the mutation.
func (m *TestEventMutation) StarEarned() (r bool, exists bool) {
	v := m.star_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldStarEarned returns the old "star_earned" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldStarEarned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStarEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStarEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStarEarned: %w", err)
	}
	return oldValue.StarEarned, nil
}

// ResetStarEarned resets all changes to the "star_earned" field.
func (m *TestEventMutation) ResetStarEarned() {
	m.star_earned = nil
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (m *TestEventMutation) SetTotalTimeSecs(i int) {
	m.total_time_secs = &i
	m.addtotal_time_secs = nil
}

// TotalTimeSecs returns the value of the "total_time_secs" field in the mutation.
func (m *TestEventMutation) TotalTimeSecs() (r int, exists bool) {
	v := m.total_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSecs returns the old "total_time_secs" field's value of the TestEvent entity.
// If the TestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestEventMutation) OldTotalTimeSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSecs: %w", err)
	}
	return oldValue.TotalTimeSecs, nil
}

// AddTotalTimeSecs adds i to the "total_time_secs" field.
func (m *TestEventMutation) AddTotalTimeSecs(i int) {
	if m.addtotal_time_secs != nil {
		*m.addtotal_time_secs += i
	} else {
		m.addtotal_time_secs = &i
	}
}

// AddedTotalTimeSecs returns the value that was added to the "total_time_secs" field in this mutation.
func (m *TestEventMutation) AddedTotalTimeSecs() (r int, exists bool) {
	v := m.addtotal_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSecs resets all changes to the "total_time_secs" field.
func (m *TestEventMutation) ResetTotalTimeSecs() {
	m.total_time_secs = nil
	m.addtotal_time_secs = nil
}

// Where appends a list predicates to the TestEventMutation builder.
func (m *TestEventMutation) Where(ps ...predicate.TestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestEvent).
func (m *TestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, testevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, testevent.FieldTimestamp)
	}
	if m.test_id != nil {
		fields = append(fields, testevent.FieldTestID)
	}
	if m.session_id != nil {
		fields = append(fields, testevent.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, testevent.FieldTopicID)
	}
	if m.question_count != nil {
		fields = append(fields, testevent.FieldQuestionCount)
	}
	if m.correct_count != nil {
		fields = append(fields, testevent.FieldCorrectCount)
	}
	if m.incorrect_count != nil {
		fields = append(fields, testevent.FieldIncorrectCount)
	}
	if m.score != nil {
		fields = append(fields, testevent.FieldScore)
	}
	if m.star_earned != nil {
		fields = append(fields, testevent.FieldStarEarned)
	}
	if m.total_time_secs != nil {
		fields = append(fields, testevent.FieldTotalTimeSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testevent.FieldSequence:
		return m.Sequence()
	case testevent.FieldTimestamp:
		return m.Timestamp()
	case testevent.FieldTestID:
		return m.TestID()
	case testevent.FieldSessionID:
		return m.SessionID()
	case testevent.FieldTopicID:
		return m.TopicID()
	case testevent.FieldQuestionCount:
		return m.QuestionCount()
	case testevent.FieldCorrectCount:
		return m.CorrectCount()
	case testevent.FieldIncorrectCount:
		return m.IncorrectCount()
	case testevent.FieldScore:
		return m.Score()
	case testevent.FieldStarEarned:
		return m.StarEarned()
	case testevent.FieldTotalTimeSecs:
		return m.TotalTimeSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testevent.FieldSequence:
		return m.OldSequence(ctx)
	case testevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case testevent.FieldTestID:
		return m.OldTestID(ctx)
	case testevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case testevent.FieldTopicID:
		return m.OldTopicID(ctx)
	case testevent.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case testevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case testevent.FieldIncorrectCount:
		return m.OldIncorrectCount(ctx)
	case testevent.FieldScore:
		return m.OldScore(ctx)
	case testevent.FieldStarEarned:
		return m.OldStarEarned(ctx)
	case testevent.FieldTotalTimeSecs:
		return m.OldTotalTimeSecs(ctx)
	}
	return nil, fmt.Errorf("unknown TestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case testevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case testevent.FieldTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case testevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case testevent.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case testevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case testevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case testevent.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncorrectCount(v)
		return nil
	case testevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case testevent.FieldStarEarned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStarEarned(v)
		return nil
	case testevent.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSecs(v)
		return nil
	}
	return fmt.Errorf("unknown TestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, testevent.FieldSequence)
	}
	if m.addtest_id != nil {
		fields = append(fields, testevent.FieldTestID)
	}
	if m.addsession_id != nil {
		fields = append(fields, testevent.FieldSessionID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, testevent.FieldTopicID)
	}
	if m.addquestion_count != nil {
		fields = append(fields, testevent.FieldQuestionCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, testevent.FieldCorrectCount)
	}
	if m.addincorrect_count != nil {
		fields = append(fields, testevent.FieldIncorrectCount)
	}
	if m.addscore != nil {
		fields = append(fields, testevent.FieldScore)
	}
	if m.addtotal_time_secs != nil {
		fields = append(fields, testevent.FieldTotalTimeSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testevent.FieldSequence:
		return m.AddedSequence()
	case testevent.FieldTestID:
		return m.AddedTestID()
	case testevent.FieldSessionID:
		return m.AddedSessionID()
	case testevent.FieldTopicID:
		return m.AddedTopicID()
	case testevent.FieldQuestionCount:
		return m.AddedQuestionCount()
	case testevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case testevent.FieldIncorrectCount:
		return m.AddedIncorrectCount()
	case testevent.FieldScore:
		return m.AddedScore()
	case testevent.FieldTotalTimeSecs:
		return m.AddedTotalTimeSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case testevent.FieldTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestID(v)
		return nil
	case testevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case testevent.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case testevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case testevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case testevent.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncorrectCount(v)
		return nil
	case testevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case testevent.FieldTotalTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSecs(v)
		return nil
	}
	return fmt.Errorf("unknown TestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestEventMutation) ResetField(name string) error {
	switch name {
	case testevent.FieldSequence:
		m.ResetSequence()
		return nil
	case testevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case testevent.FieldTestID:
		m.ResetTestID()
		return nil
	case testevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case testevent.FieldTopicID:
		m.ResetTopicID()
		return nil
	case testevent.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case testevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case testevent.FieldIncorrectCount:
		m.ResetIncorrectCount()
		return nil
	case testevent.FieldScore:
		m.ResetScore()
		return nil
	case testevent.FieldStarEarned:
		m.ResetStarEarned()
		return nil
	case testevent.FieldTotalTimeSecs:
		m.ResetTotalTimeSecs()
		return nil
	}
	return fmt.Errorf("unknown TestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestEvent edge %s", name)
}
