// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/serkanatas/kopya/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/serkanatas/kopya/ent/analysisrun"
	"github.com/serkanatas/kopya/ent/answerkey"
	"github.com/serkanatas/kopya/ent/flaggedpair"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisRun is the client for interacting with the AnalysisRun builders.
	AnalysisRun *AnalysisRunClient
	// AnswerKey is the client for interacting with the AnswerKey builders.
	AnswerKey *AnswerKeyClient
	// FlaggedPair is the client for interacting with the FlaggedPair builders.
	FlaggedPair *FlaggedPairClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisRun = NewAnalysisRunClient(c.config)
	c.AnswerKey = NewAnswerKeyClient(c.config)
	c.FlaggedPair = NewFlaggedPairClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		AnalysisRun: NewAnalysisRunClient(cfg),
		AnswerKey:   NewAnswerKeyClient(cfg),
		FlaggedPair: NewFlaggedPairClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		AnalysisRun: NewAnalysisRunClient(cfg),
		AnswerKey:   NewAnswerKeyClient(cfg),
		FlaggedPair: NewFlaggedPairClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisRun.
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
	c.AnalysisRun.Use(hooks...)
	c.AnswerKey.Use(hooks...)
	c.FlaggedPair.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisRun.Intercept(interceptors...)
	c.AnswerKey.Intercept(interceptors...)
	c.FlaggedPair.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisRunMutation:
		return c.AnalysisRun.mutate(ctx, m)
	case *AnswerKeyMutation:
		return c.AnswerKey.mutate(ctx, m)
	case *FlaggedPairMutation:
		return c.FlaggedPair.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisRunClient is a client for the AnalysisRun schema.
type AnalysisRunClient struct {
	config
}

// NewAnalysisRunClient returns a client for the AnalysisRun from the given config.
func NewAnalysisRunClient(c config) *AnalysisRunClient {
	return &AnalysisRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisrun.Hooks(f(g(h())))`.
func (c *AnalysisRunClient) Use(hooks ...Hook) {
	c.hooks.AnalysisRun = append(c.hooks.AnalysisRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisrun.Intercept(f(g(h())))`.
func (c *AnalysisRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisRun = append(c.inters.AnalysisRun, interceptors...)
}

// Create returns a builder for creating a AnalysisRun entity.
func (c *AnalysisRunClient) Create() *AnalysisRunCreate {
	mutation := newAnalysisRunMutation(c.config, OpCreate)
	return &AnalysisRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisRun entities.
func (c *AnalysisRunClient) CreateBulk(builders ...*AnalysisRunCreate) *AnalysisRunCreateBulk {
	return &AnalysisRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisRunClient) MapCreateBulk(slice any, setFunc func(*AnalysisRunCreate, int)) *AnalysisRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisRunCreateBulk{err: fmt.Errorf("calling to AnalysisRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisRun.
func (c *AnalysisRunClient) Update() *AnalysisRunUpdate {
	mutation := newAnalysisRunMutation(c.config, OpUpdate)
	return &AnalysisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisRunClient) UpdateOne(_m *AnalysisRun) *AnalysisRunUpdateOne {
	mutation := newAnalysisRunMutation(c.config, OpUpdateOne, withAnalysisRun(_m))
	return &AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisRunClient) UpdateOneID(id int) *AnalysisRunUpdateOne {
	mutation := newAnalysisRunMutation(c.config, OpUpdateOne, withAnalysisRunID(id))
	return &AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisRun.
func (c *AnalysisRunClient) Delete() *AnalysisRunDelete {
	mutation := newAnalysisRunMutation(c.config, OpDelete)
	return &AnalysisRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisRunClient) DeleteOne(_m *AnalysisRun) *AnalysisRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisRunClient) DeleteOneID(id int) *AnalysisRunDeleteOne {
	builder := c.Delete().Where(analysisrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisRunDeleteOne{builder}
}

// Query returns a query builder for AnalysisRun.
func (c *AnalysisRunClient) Query() *AnalysisRunQuery {
	return &AnalysisRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisRun entity by its id.
func (c *AnalysisRunClient) Get(ctx context.Context, id int) (*AnalysisRun, error) {
	return c.Query().Where(analysisrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisRunClient) GetX(ctx context.Context, id int) *AnalysisRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisRunClient) Hooks() []Hook {
	return c.hooks.AnalysisRun
}

// Interceptors returns the client interceptors.
func (c *AnalysisRunClient) Interceptors() []Interceptor {
	return c.inters.AnalysisRun
}

func (c *AnalysisRunClient) mutate(ctx context.Context, m *AnalysisRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisRun mutation op: %q", m.Op())
	}
}

// AnswerKeyClient is a client for the AnswerKey schema.
type AnswerKeyClient struct {
	config
}

// NewAnswerKeyClient returns a client for the AnswerKey from the given config.
func NewAnswerKeyClient(c config) *AnswerKeyClient {
	return &AnswerKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerkey.Hooks(f(g(h())))`.
func (c *AnswerKeyClient) Use(hooks ...Hook) {
	c.hooks.AnswerKey = append(c.hooks.AnswerKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerkey.Intercept(f(g(h())))`.
func (c *AnswerKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerKey = append(c.inters.AnswerKey, interceptors...)
}

// Create returns a builder for creating a AnswerKey entity.
func (c *AnswerKeyClient) Create() *AnswerKeyCreate {
	mutation := newAnswerKeyMutation(c.config, OpCreate)
	return &AnswerKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerKey entities.
func (c *AnswerKeyClient) CreateBulk(builders ...*AnswerKeyCreate) *AnswerKeyCreateBulk {
	return &AnswerKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerKeyClient) MapCreateBulk(slice any, setFunc func(*AnswerKeyCreate, int)) *AnswerKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerKeyCreateBulk{err: fmt.Errorf("calling to AnswerKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerKey.
func (c *AnswerKeyClient) Update() *AnswerKeyUpdate {
	mutation := newAnswerKeyMutation(c.config, OpUpdate)
	return &AnswerKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerKeyClient) UpdateOne(_m *AnswerKey) *AnswerKeyUpdateOne {
	mutation := newAnswerKeyMutation(c.config, OpUpdateOne, withAnswerKey(_m))
	return &AnswerKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerKeyClient) UpdateOneID(id int) *AnswerKeyUpdateOne {
	mutation := newAnswerKeyMutation(c.config, OpUpdateOne, withAnswerKeyID(id))
	return &AnswerKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerKey.
func (c *AnswerKeyClient) Delete() *AnswerKeyDelete {
	mutation := newAnswerKeyMutation(c.config, OpDelete)
	return &AnswerKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerKeyClient) DeleteOne(_m *AnswerKey) *AnswerKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerKeyClient) DeleteOneID(id int) *AnswerKeyDeleteOne {
	builder := c.Delete().Where(answerkey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerKeyDeleteOne{builder}
}

// Query returns a query builder for AnswerKey.
func (c *AnswerKeyClient) Query() *AnswerKeyQuery {
	return &AnswerKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerKey},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerKey entity by its id.
func (c *AnswerKeyClient) Get(ctx context.Context, id int) (*AnswerKey, error) {
	return c.Query().Where(answerkey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerKeyClient) GetX(ctx context.Context, id int) *AnswerKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerKeyClient) Hooks() []Hook {
	return c.hooks.AnswerKey
}

// Interceptors returns the client interceptors.
func (c *AnswerKeyClient) Interceptors() []Interceptor {
	return c.inters.AnswerKey
}

func (c *AnswerKeyClient) mutate(ctx context.Context, m *AnswerKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerKey mutation op: %q", m.Op())
	}
}

// FlaggedPairClient is a client for the FlaggedPair schema.
type FlaggedPairClient struct {
	config
}

// NewFlaggedPairClient returns a client for the FlaggedPair from the given config.
func NewFlaggedPairClient(c config) *FlaggedPairClient {
	return &FlaggedPairClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flaggedpair.Hooks(f(g(h())))`.
func (c *FlaggedPairClient) Use(hooks ...Hook) {
	c.hooks.FlaggedPair = append(c.hooks.FlaggedPair, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flaggedpair.Intercept(f(g(h())))`.
func (c *FlaggedPairClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlaggedPair = append(c.inters.FlaggedPair, interceptors...)
}

// Create returns a builder for creating a FlaggedPair entity.
func (c *FlaggedPairClient) Create() *FlaggedPairCreate {
	mutation := newFlaggedPairMutation(c.config, OpCreate)
	return &FlaggedPairCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlaggedPair entities.
func (c *FlaggedPairClient) CreateBulk(builders ...*FlaggedPairCreate) *FlaggedPairCreateBulk {
	return &FlaggedPairCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlaggedPairClient) MapCreateBulk(slice any, setFunc func(*FlaggedPairCreate, int)) *FlaggedPairCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlaggedPairCreateBulk{err: fmt.Errorf("calling to FlaggedPairClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlaggedPairCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlaggedPairCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlaggedPair.
func (c *FlaggedPairClient) Update() *FlaggedPairUpdate {
	mutation := newFlaggedPairMutation(c.config, OpUpdate)
	return &FlaggedPairUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlaggedPairClient) UpdateOne(_m *FlaggedPair) *FlaggedPairUpdateOne {
	mutation := newFlaggedPairMutation(c.config, OpUpdateOne, withFlaggedPair(_m))
	return &FlaggedPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlaggedPairClient) UpdateOneID(id int) *FlaggedPairUpdateOne {
	mutation := newFlaggedPairMutation(c.config, OpUpdateOne, withFlaggedPairID(id))
	return &FlaggedPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlaggedPair.
func (c *FlaggedPairClient) Delete() *FlaggedPairDelete {
	mutation := newFlaggedPairMutation(c.config, OpDelete)
	return &FlaggedPairDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlaggedPairClient) DeleteOne(_m *FlaggedPair) *FlaggedPairDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlaggedPairClient) DeleteOneID(id int) *FlaggedPairDeleteOne {
	builder := c.Delete().Where(flaggedpair.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlaggedPairDeleteOne{builder}
}

// Query returns a query builder for FlaggedPair.
func (c *FlaggedPairClient) Query() *FlaggedPairQuery {
	return &FlaggedPairQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlaggedPair},
		inters: c.Interceptors(),
	}
}

// Get returns a FlaggedPair entity by its id.
func (c *FlaggedPairClient) Get(ctx context.Context, id int) (*FlaggedPair, error) {
	return c.Query().Where(flaggedpair.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlaggedPairClient) GetX(ctx context.Context, id int) *FlaggedPair {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlaggedPairClient) Hooks() []Hook {
	return c.hooks.FlaggedPair
}

// Interceptors returns the client interceptors.
func (c *FlaggedPairClient) Interceptors() []Interceptor {
	return c.inters.FlaggedPair
}

func (c *FlaggedPairClient) mutate(ctx context.Context, m *FlaggedPairMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlaggedPairCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlaggedPairUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlaggedPairUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlaggedPairDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlaggedPair mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisRun, AnswerKey, FlaggedPair []ent.Hook
	}
	inters struct {
		AnalysisRun, AnswerKey, FlaggedPair []ent.Interceptor
	}
)
