// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/prepdeck/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/seenquestion"
	"github.com/abhisek/prepdeck/ent/sessionevent"
	"github.com/abhisek/prepdeck/ent/testevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// SeenQuestion is the client for interacting with the SeenQuestion builders.
	SeenQuestion *SeenQuestionClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// TestEvent is the client for interacting with the TestEvent builders.
	TestEvent *TestEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.SeenQuestion = NewSeenQuestionClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.TestEvent = NewTestEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		SeenQuestion: NewSeenQuestionClient(cfg),
		SessionEvent: NewSessionEventClient(cfg),
		TestEvent:    NewTestEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		SeenQuestion: NewSeenQuestionClient(cfg),
		SessionEvent: NewSessionEventClient(cfg),
		TestEvent:    NewTestEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		SeenQuestion.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.SeenQuestion.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.TestEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.SeenQuestion.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.TestEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SeenQuestionMutation:
		return c.SeenQuestion.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *TestEventMutation:
		return c.TestEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SeenQuestionClient is a client for the SeenQuestion schema.
type SeenQuestionClient struct {
	config
}

// NewSeenQuestionClient returns a client for the SeenQuestion from the given config.
func NewSeenQuestionClient(c config) *SeenQuestionClient {
	return &SeenQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seenquestion.Hooks(f(g(h())))`.
func (c *SeenQuestionClient) Use(hooks ...Hook) {
	c.hooks.SeenQuestion = append(c.hooks.SeenQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seenquestion.Intercept(f(g(h())))`.
func (c *SeenQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeenQuestion = append(c.inters.SeenQuestion, interceptors...)
}

// Create returns a builder for creating a SeenQuestion entity.
func (c *SeenQuestionClient) Create() *SeenQuestionCreate {
	mutation := newSeenQuestionMutation(c.config, OpCreate)
	return &SeenQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeenQuestion entities.
func (c *SeenQuestionClient) CreateBulk(builders ...*SeenQuestionCreate) *SeenQuestionCreateBulk {
	return &SeenQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeenQuestionClient) MapCreateBulk(slice any, setFunc func(*SeenQuestionCreate, int)) *SeenQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeenQuestionCreateBulk{err: fmt.Errorf("calling to SeenQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeenQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeenQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeenQuestion.
func (c *SeenQuestionClient) Update() *SeenQuestionUpdate {
	mutation := newSeenQuestionMutation(c.config, OpUpdate)
	return &SeenQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeenQuestionClient) UpdateOne(_m *SeenQuestion) *SeenQuestionUpdateOne {
	mutation := newSeenQuestionMutation(c.config, OpUpdateOne, withSeenQuestion(_m))
	return &SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeenQuestionClient) UpdateOneID(id int) *SeenQuestionUpdateOne {
	mutation := newSeenQuestionMutation(c.config, OpUpdateOne, withSeenQuestionID(id))
	return &SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeenQuestion.
func (c *SeenQuestionClient) Delete() *SeenQuestionDelete {
	mutation := newSeenQuestionMutation(c.config, OpDelete)
	return &SeenQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeenQuestionClient) DeleteOne(_m *SeenQuestion) *SeenQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeenQuestionClient) DeleteOneID(id int) *SeenQuestionDeleteOne {
	builder := c.Delete().Where(seenquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeenQuestionDeleteOne{builder}
}

// Query returns a query builder for SeenQuestion.
func (c *SeenQuestionClient) Query() *SeenQuestionQuery {
	return &SeenQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeenQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a SeenQuestion entity by its id.
func (c *SeenQuestionClient) Get(ctx context.Context, id int) (*SeenQuestion, error) {
	return c.Query().Where(seenquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeenQuestionClient) GetX(ctx context.Context, id int) *SeenQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeenQuestionClient) Hooks() []Hook {
	return c.hooks.SeenQuestion
}

// Interceptors returns the client interceptors.
func (c *SeenQuestionClient) Interceptors() []Interceptor {
	return c.inters.SeenQuestion
}

func (c *SeenQuestionClient) mutate(ctx context.Context, m *SeenQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeenQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeenQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeenQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeenQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SeenQuestion mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// TestEventClient is a client for the TestEvent schema.
type TestEventClient struct {
	config
}

// NewTestEventClient returns a client for the TestEvent from the given config.
func NewTestEventClient(c config) *TestEventClient {
	return &TestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testevent.Hooks(f(g(h())))`.
func (c *TestEventClient) Use(hooks ...Hook) {
	c.hooks.TestEvent = append(c.hooks.TestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testevent.Intercept(f(g(h())))`.
func (c *TestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestEvent = append(c.inters.TestEvent, interceptors...)
}

// Create returns a builder for creating a TestEvent entity.
func (c *TestEventClient) Create() *TestEventCreate {
	mutation := newTestEventMutation(c.config, OpCreate)
	return &TestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestEvent entities.
func (c *TestEventClient) CreateBulk(builders ...*TestEventCreate) *TestEventCreateBulk {
	return &TestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestEventClient) MapCreateBulk(slice any, setFunc func(*TestEventCreate, int)) *TestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestEventCreateBulk{err: fmt.Errorf("calling to TestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestEvent.
func (c *TestEventClient) Update() *TestEventUpdate {
	mutation := newTestEventMutation(c.config, OpUpdate)
	return &TestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestEventClient) UpdateOne(_m *TestEvent) *TestEventUpdateOne {
	mutation := newTestEventMutation(c.config, OpUpdateOne, withTestEvent(_m))
	return &TestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestEventClient) UpdateOneID(id int) *TestEventUpdateOne {
	mutation := newTestEventMutation(c.config, OpUpdateOne, withTestEventID(id))
	return &TestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestEvent.
func (c *TestEventClient) Delete() *TestEventDelete {
	mutation := newTestEventMutation(c.config, OpDelete)
	return &TestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestEventClient) DeleteOne(_m *TestEvent) *TestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestEventClient) DeleteOneID(id int) *TestEventDeleteOne {
	builder := c.Delete().Where(testevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestEventDeleteOne{builder}
}

// Query returns a query builder for TestEvent.
func (c *TestEventClient) Query() *TestEventQuery {
	return &TestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TestEvent entity by its id.
func (c *TestEventClient) Get(ctx context.Context, id int) (*TestEvent, error) {
	return c.Query().Where(testevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestEventClient) GetX(ctx context.Context, id int) *TestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestEventClient) Hooks() []Hook {
	return c.hooks.TestEvent
}

// Interceptors returns the client interceptors.
func (c *TestEventClient) Interceptors() []Interceptor {
	return c.inters.TestEvent
}

func (c *TestEventClient) mutate(ctx context.Context, m *TestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		SeenQuestion, SessionEvent, TestEvent []ent.Hook
	}
	inters struct {
		SeenQuestion, SessionEvent, TestEvent []ent.Interceptor
	}
)
