// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adaptifocus/adaptifocus/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptifocus/adaptifocus/ent/browsingevent"
	"github.com/adaptifocus/adaptifocus/ent/interventionevent"
	"github.com/adaptifocus/adaptifocus/ent/patternsnapshot"
	"github.com/adaptifocus/adaptifocus/ent/studysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BrowsingEvent is the client for interacting with the BrowsingEvent builders.
	BrowsingEvent *BrowsingEventClient
	// InterventionEvent is the client for interacting with the InterventionEvent builders.
	InterventionEvent *InterventionEventClient
	// PatternSnapshot is the client for interacting with the PatternSnapshot builders.
	PatternSnapshot *PatternSnapshotClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BrowsingEvent = NewBrowsingEventClient(c.config)
	c.InterventionEvent = NewInterventionEventClient(c.config)
	c.PatternSnapshot = NewPatternSnapshotClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		BrowsingEvent:     NewBrowsingEventClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		PatternSnapshot:   NewPatternSnapshotClient(cfg),
		StudySession:      NewStudySessionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		BrowsingEvent:     NewBrowsingEventClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		PatternSnapshot:   NewPatternSnapshotClient(cfg),
		StudySession:      NewStudySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BrowsingEvent.
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
	c.BrowsingEvent.Use(hooks...)
	c.InterventionEvent.Use(hooks...)
	c.PatternSnapshot.Use(hooks...)
	c.StudySession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BrowsingEvent.Intercept(interceptors...)
	c.InterventionEvent.Intercept(interceptors...)
	c.PatternSnapshot.Intercept(interceptors...)
	c.StudySession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BrowsingEventMutation:
		return c.BrowsingEvent.mutate(ctx, m)
	case *InterventionEventMutation:
		return c.InterventionEvent.mutate(ctx, m)
	case *PatternSnapshotMutation:
		return c.PatternSnapshot.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BrowsingEventClient is a client for the BrowsingEvent schema.
type BrowsingEventClient struct {
	config
}

// NewBrowsingEventClient returns a client for the BrowsingEvent from the given config.
func NewBrowsingEventClient(c config) *BrowsingEventClient {
	return &BrowsingEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `browsingevent.Hooks(f(g(h())))`.
func (c *BrowsingEventClient) Use(hooks ...Hook) {
	c.hooks.BrowsingEvent = append(c.hooks.BrowsingEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `browsingevent.Intercept(f(g(h())))`.
func (c *BrowsingEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BrowsingEvent = append(c.inters.BrowsingEvent, interceptors...)
}

// Create returns a builder for creating a BrowsingEvent entity.
func (c *BrowsingEventClient) Create() *BrowsingEventCreate {
	mutation := newBrowsingEventMutation(c.config, OpCreate)
	return &BrowsingEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BrowsingEvent entities.
func (c *BrowsingEventClient) CreateBulk(builders ...*BrowsingEventCreate) *BrowsingEventCreateBulk {
	return &BrowsingEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BrowsingEventClient) MapCreateBulk(slice any, setFunc func(*BrowsingEventCreate, int)) *BrowsingEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BrowsingEventCreateBulk{err: fmt.Errorf("calling to BrowsingEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BrowsingEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BrowsingEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BrowsingEvent.
func (c *BrowsingEventClient) Update() *BrowsingEventUpdate {
	mutation := newBrowsingEventMutation(c.config, OpUpdate)
	return &BrowsingEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BrowsingEventClient) UpdateOne(_m *BrowsingEvent) *BrowsingEventUpdateOne {
	mutation := newBrowsingEventMutation(c.config, OpUpdateOne, withBrowsingEvent(_m))
	return &BrowsingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BrowsingEventClient) UpdateOneID(id int) *BrowsingEventUpdateOne {
	mutation := newBrowsingEventMutation(c.config, OpUpdateOne, withBrowsingEventID(id))
	return &BrowsingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BrowsingEvent.
func (c *BrowsingEventClient) Delete() *BrowsingEventDelete {
	mutation := newBrowsingEventMutation(c.config, OpDelete)
	return &BrowsingEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BrowsingEventClient) DeleteOne(_m *BrowsingEvent) *BrowsingEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BrowsingEventClient) DeleteOneID(id int) *BrowsingEventDeleteOne {
	builder := c.Delete().Where(browsingevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BrowsingEventDeleteOne{builder}
}

// Query returns a query builder for BrowsingEvent.
func (c *BrowsingEventClient) Query() *BrowsingEventQuery {
	return &BrowsingEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBrowsingEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BrowsingEvent entity by its id.
func (c *BrowsingEventClient) Get(ctx context.Context, id int) (*BrowsingEvent, error) {
	return c.Query().Where(browsingevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BrowsingEventClient) GetX(ctx context.Context, id int) *BrowsingEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BrowsingEventClient) Hooks() []Hook {
	return c.hooks.BrowsingEvent
}

// Interceptors returns the client interceptors.
func (c *BrowsingEventClient) Interceptors() []Interceptor {
	return c.inters.BrowsingEvent
}

func (c *BrowsingEventClient) mutate(ctx context.Context, m *BrowsingEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BrowsingEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BrowsingEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BrowsingEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BrowsingEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BrowsingEvent mutation op: %q", m.Op())
	}
}

// InterventionEventClient is a client for the InterventionEvent schema.
type InterventionEventClient struct {
	config
}

// NewInterventionEventClient returns a client for the InterventionEvent from the given config.
func NewInterventionEventClient(c config) *InterventionEventClient {
	return &InterventionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interventionevent.Hooks(f(g(h())))`.
func (c *InterventionEventClient) Use(hooks ...Hook) {
	c.hooks.InterventionEvent = append(c.hooks.InterventionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interventionevent.Intercept(f(g(h())))`.
func (c *InterventionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterventionEvent = append(c.inters.InterventionEvent, interceptors...)
}

// Create returns a builder for creating a InterventionEvent entity.
func (c *InterventionEventClient) Create() *InterventionEventCreate {
	mutation := newInterventionEventMutation(c.config, OpCreate)
	return &InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterventionEvent entities.
func (c *InterventionEventClient) CreateBulk(builders ...*InterventionEventCreate) *InterventionEventCreateBulk {
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterventionEventClient) MapCreateBulk(slice any, setFunc func(*InterventionEventCreate, int)) *InterventionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterventionEventCreateBulk{err: fmt.Errorf("calling to InterventionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterventionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterventionEvent.
func (c *InterventionEventClient) Update() *InterventionEventUpdate {
	mutation := newInterventionEventMutation(c.config, OpUpdate)
	return &InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterventionEventClient) UpdateOne(_m *InterventionEvent) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEvent(_m))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterventionEventClient) UpdateOneID(id int) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEventID(id))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterventionEvent.
func (c *InterventionEventClient) Delete() *InterventionEventDelete {
	mutation := newInterventionEventMutation(c.config, OpDelete)
	return &InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterventionEventClient) DeleteOne(_m *InterventionEvent) *InterventionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterventionEventClient) DeleteOneID(id int) *InterventionEventDeleteOne {
	builder := c.Delete().Where(interventionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterventionEventDeleteOne{builder}
}

// Query returns a query builder for InterventionEvent.
func (c *InterventionEventClient) Query() *InterventionEventQuery {
	return &InterventionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterventionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InterventionEvent entity by its id.
func (c *InterventionEventClient) Get(ctx context.Context, id int) (*InterventionEvent, error) {
	return c.Query().Where(interventionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterventionEventClient) GetX(ctx context.Context, id int) *InterventionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterventionEventClient) Hooks() []Hook {
	return c.hooks.InterventionEvent
}

// Interceptors returns the client interceptors.
func (c *InterventionEventClient) Interceptors() []Interceptor {
	return c.inters.InterventionEvent
}

func (c *InterventionEventClient) mutate(ctx context.Context, m *InterventionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterventionEvent mutation op: %q", m.Op())
	}
}

// PatternSnapshotClient is a client for the PatternSnapshot schema.
type PatternSnapshotClient struct {
	config
}

// NewPatternSnapshotClient returns a client for the PatternSnapshot from the given config.
func NewPatternSnapshotClient(c config) *PatternSnapshotClient {
	return &PatternSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patternsnapshot.Hooks(f(g(h())))`.
func (c *PatternSnapshotClient) Use(hooks ...Hook) {
	c.hooks.PatternSnapshot = append(c.hooks.PatternSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patternsnapshot.Intercept(f(g(h())))`.
func (c *PatternSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternSnapshot = append(c.inters.PatternSnapshot, interceptors...)
}

// Create returns a builder for creating a PatternSnapshot entity.
func (c *PatternSnapshotClient) Create() *PatternSnapshotCreate {
	mutation := newPatternSnapshotMutation(c.config, OpCreate)
	return &PatternSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternSnapshot entities.
func (c *PatternSnapshotClient) CreateBulk(builders ...*PatternSnapshotCreate) *PatternSnapshotCreateBulk {
	return &PatternSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternSnapshotClient) MapCreateBulk(slice any, setFunc func(*PatternSnapshotCreate, int)) *PatternSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternSnapshotCreateBulk{err: fmt.Errorf("calling to PatternSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternSnapshot.
func (c *PatternSnapshotClient) Update() *PatternSnapshotUpdate {
	mutation := newPatternSnapshotMutation(c.config, OpUpdate)
	return &PatternSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternSnapshotClient) UpdateOne(_m *PatternSnapshot) *PatternSnapshotUpdateOne {
	mutation := newPatternSnapshotMutation(c.config, OpUpdateOne, withPatternSnapshot(_m))
	return &PatternSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternSnapshotClient) UpdateOneID(id int) *PatternSnapshotUpdateOne {
	mutation := newPatternSnapshotMutation(c.config, OpUpdateOne, withPatternSnapshotID(id))
	return &PatternSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternSnapshot.
func (c *PatternSnapshotClient) Delete() *PatternSnapshotDelete {
	mutation := newPatternSnapshotMutation(c.config, OpDelete)
	return &PatternSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternSnapshotClient) DeleteOne(_m *PatternSnapshot) *PatternSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternSnapshotClient) DeleteOneID(id int) *PatternSnapshotDeleteOne {
	builder := c.Delete().Where(patternsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternSnapshotDeleteOne{builder}
}

// Query returns a query builder for PatternSnapshot.
func (c *PatternSnapshotClient) Query() *PatternSnapshotQuery {
	return &PatternSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternSnapshot entity by its id.
func (c *PatternSnapshotClient) Get(ctx context.Context, id int) (*PatternSnapshot, error) {
	return c.Query().Where(patternsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternSnapshotClient) GetX(ctx context.Context, id int) *PatternSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatternSnapshotClient) Hooks() []Hook {
	return c.hooks.PatternSnapshot
}

// Interceptors returns the client interceptors.
func (c *PatternSnapshotClient) Interceptors() []Interceptor {
	return c.inters.PatternSnapshot
}

func (c *PatternSnapshotClient) mutate(ctx context.Context, m *PatternSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternSnapshot mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id int) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id int) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id int) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id int) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BrowsingEvent, InterventionEvent, PatternSnapshot, StudySession []ent.Hook
	}
	inters struct {
		BrowsingEvent, InterventionEvent, PatternSnapshot,
		StudySession []ent.Interceptor
	}
)
