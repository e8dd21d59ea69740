// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mathsinbites/bitesmith/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mathsinbites/bitesmith/ent/genevent"
	"github.com/mathsinbites/bitesmith/ent/learningpath"
	"github.com/mathsinbites/bitesmith/ent/lesson"
	"github.com/mathsinbites/bitesmith/ent/llmevent"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
	"github.com/mathsinbites/bitesmith/ent/subtopic"
	"github.com/mathsinbites/bitesmith/ent/topic"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GenEvent is the client for interacting with the GenEvent builders.
	GenEvent *GenEventClient
	// LLMEvent is the client for interacting with the LLMEvent builders.
	LLMEvent *LLMEventClient
	// LearningPath is the client for interacting with the LearningPath builders.
	LearningPath *LearningPathClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// PracticeQuestion is the client for interacting with the PracticeQuestion builders.
	PracticeQuestion *PracticeQuestionClient
	// Subtopic is the client for interacting with the Subtopic builders.
	Subtopic *SubtopicClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GenEvent = NewGenEventClient(c.config)
	c.LLMEvent = NewLLMEventClient(c.config)
	c.LearningPath = NewLearningPathClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.PracticeQuestion = NewPracticeQuestionClient(c.config)
	c.Subtopic = NewSubtopicClient(c.config)
	c.Topic = NewTopicClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		GenEvent:         NewGenEventClient(cfg),
		LLMEvent:         NewLLMEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		Lesson:           NewLessonClient(cfg),
		PracticeQuestion: NewPracticeQuestionClient(cfg),
		Subtopic:         NewSubtopicClient(cfg),
		Topic:            NewTopicClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		GenEvent:         NewGenEventClient(cfg),
		LLMEvent:         NewLLMEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		Lesson:           NewLessonClient(cfg),
		PracticeQuestion: NewPracticeQuestionClient(cfg),
		Subtopic:         NewSubtopicClient(cfg),
		Topic:            NewTopicClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GenEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.GenEvent, c.LLMEvent, c.LearningPath, c.Lesson, c.PracticeQuestion,
		c.Subtopic, c.Topic,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GenEvent, c.LLMEvent, c.LearningPath, c.Lesson, c.PracticeQuestion,
		c.Subtopic, c.Topic,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GenEventMutation:
		return c.GenEvent.mutate(ctx, m)
	case *LLMEventMutation:
		return c.LLMEvent.mutate(ctx, m)
	case *LearningPathMutation:
		return c.LearningPath.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *PracticeQuestionMutation:
		return c.PracticeQuestion.mutate(ctx, m)
	case *SubtopicMutation:
		return c.Subtopic.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GenEventClient is a client for the GenEvent schema.
type GenEventClient struct {
	config
}

// NewGenEventClient returns a client for the GenEvent from the given config.
func NewGenEventClient(c config) *GenEventClient {
	return &GenEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `genevent.Hooks(f(g(h())))`.
func (c *GenEventClient) Use(hooks ...Hook) {
	c.hooks.GenEvent = append(c.hooks.GenEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `genevent.Intercept(f(g(h())))`.
func (c *GenEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenEvent = append(c.inters.GenEvent, interceptors...)
}

// Create returns a builder for creating a GenEvent entity.
func (c *GenEventClient) Create() *GenEventCreate {
	mutation := newGenEventMutation(c.config, OpCreate)
	return &GenEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenEvent entities.
func (c *GenEventClient) CreateBulk(builders ...*GenEventCreate) *GenEventCreateBulk {
	return &GenEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenEventClient) MapCreateBulk(slice any, setFunc func(*GenEventCreate, int)) *GenEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenEventCreateBulk{err: fmt.Errorf("calling to GenEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenEvent.
func (c *GenEventClient) Update() *GenEventUpdate {
	mutation := newGenEventMutation(c.config, OpUpdate)
	return &GenEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenEventClient) UpdateOne(_m *GenEvent) *GenEventUpdateOne {
	mutation := newGenEventMutation(c.config, OpUpdateOne, withGenEvent(_m))
	return &GenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenEventClient) UpdateOneID(id int) *GenEventUpdateOne {
	mutation := newGenEventMutation(c.config, OpUpdateOne, withGenEventID(id))
	return &GenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenEvent.
func (c *GenEventClient) Delete() *GenEventDelete {
	mutation := newGenEventMutation(c.config, OpDelete)
	return &GenEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenEventClient) DeleteOne(_m *GenEvent) *GenEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenEventClient) DeleteOneID(id int) *GenEventDeleteOne {
	builder := c.Delete().Where(genevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenEventDeleteOne{builder}
}

// Query returns a query builder for GenEvent.
func (c *GenEventClient) Query() *GenEventQuery {
	return &GenEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenEvent entity by its id.
func (c *GenEventClient) Get(ctx context.Context, id int) (*GenEvent, error) {
	return c.Query().Where(genevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenEventClient) GetX(ctx context.Context, id int) *GenEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenEventClient) Hooks() []Hook {
	return c.hooks.GenEvent
}

// Interceptors returns the client interceptors.
func (c *GenEventClient) Interceptors() []Interceptor {
	return c.inters.GenEvent
}

func (c *GenEventClient) mutate(ctx context.Context, m *GenEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenEvent mutation op: %q", m.Op())
	}
}

// LLMEventClient is a client for the LLMEvent schema.
type LLMEventClient struct {
	config
}

// NewLLMEventClient returns a client for the LLMEvent from the given config.
func NewLLMEventClient(c config) *LLMEventClient {
	return &LLMEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmevent.Hooks(f(g(h())))`.
func (c *LLMEventClient) Use(hooks ...Hook) {
	c.hooks.LLMEvent = append(c.hooks.LLMEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmevent.Intercept(f(g(h())))`.
func (c *LLMEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMEvent = append(c.inters.LLMEvent, interceptors...)
}

// Create returns a builder for creating a LLMEvent entity.
func (c *LLMEventClient) Create() *LLMEventCreate {
	mutation := newLLMEventMutation(c.config, OpCreate)
	return &LLMEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMEvent entities.
func (c *LLMEventClient) CreateBulk(builders ...*LLMEventCreate) *LLMEventCreateBulk {
	return &LLMEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMEventClient) MapCreateBulk(slice any, setFunc func(*LLMEventCreate, int)) *LLMEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMEventCreateBulk{err: fmt.Errorf("calling to LLMEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMEvent.
func (c *LLMEventClient) Update() *LLMEventUpdate {
	mutation := newLLMEventMutation(c.config, OpUpdate)
	return &LLMEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMEventClient) UpdateOne(_m *LLMEvent) *LLMEventUpdateOne {
	mutation := newLLMEventMutation(c.config, OpUpdateOne, withLLMEvent(_m))
	return &LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMEventClient) UpdateOneID(id int) *LLMEventUpdateOne {
	mutation := newLLMEventMutation(c.config, OpUpdateOne, withLLMEventID(id))
	return &LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMEvent.
func (c *LLMEventClient) Delete() *LLMEventDelete {
	mutation := newLLMEventMutation(c.config, OpDelete)
	return &LLMEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMEventClient) DeleteOne(_m *LLMEvent) *LLMEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMEventClient) DeleteOneID(id int) *LLMEventDeleteOne {
	builder := c.Delete().Where(llmevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMEventDeleteOne{builder}
}

// Query returns a query builder for LLMEvent.
func (c *LLMEventClient) Query() *LLMEventQuery {
	return &LLMEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMEvent entity by its id.
func (c *LLMEventClient) Get(ctx context.Context, id int) (*LLMEvent, error) {
	return c.Query().Where(llmevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMEventClient) GetX(ctx context.Context, id int) *LLMEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMEventClient) Hooks() []Hook {
	return c.hooks.LLMEvent
}

// Interceptors returns the client interceptors.
func (c *LLMEventClient) Interceptors() []Interceptor {
	return c.inters.LLMEvent
}

func (c *LLMEventClient) mutate(ctx context.Context, m *LLMEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMEvent mutation op: %q", m.Op())
	}
}

// LearningPathClient is a client for the LearningPath schema.
type LearningPathClient struct {
	config
}

// NewLearningPathClient returns a client for the LearningPath from the given config.
func NewLearningPathClient(c config) *LearningPathClient {
	return &LearningPathClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningpath.Hooks(f(g(h())))`.
func (c *LearningPathClient) Use(hooks ...Hook) {
	c.hooks.LearningPath = append(c.hooks.LearningPath, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningpath.Intercept(f(g(h())))`.
func (c *LearningPathClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPath = append(c.inters.LearningPath, interceptors...)
}

// Create returns a builder for creating a LearningPath entity.
func (c *LearningPathClient) Create() *LearningPathCreate {
	mutation := newLearningPathMutation(c.config, OpCreate)
	return &LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPath entities.
func (c *LearningPathClient) CreateBulk(builders ...*LearningPathCreate) *LearningPathCreateBulk {
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPathClient) MapCreateBulk(slice any, setFunc func(*LearningPathCreate, int)) *LearningPathCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPathCreateBulk{err: fmt.Errorf("calling to LearningPathClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPathCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPath.
func (c *LearningPathClient) Update() *LearningPathUpdate {
	mutation := newLearningPathMutation(c.config, OpUpdate)
	return &LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPathClient) UpdateOne(_m *LearningPath) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPath(_m))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPathClient) UpdateOneID(id string) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPathID(id))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPath.
func (c *LearningPathClient) Delete() *LearningPathDelete {
	mutation := newLearningPathMutation(c.config, OpDelete)
	return &LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPathClient) DeleteOne(_m *LearningPath) *LearningPathDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPathClient) DeleteOneID(id string) *LearningPathDeleteOne {
	builder := c.Delete().Where(learningpath.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPathDeleteOne{builder}
}

// Query returns a query builder for LearningPath.
func (c *LearningPathClient) Query() *LearningPathQuery {
	return &LearningPathQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPath},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPath entity by its id.
func (c *LearningPathClient) Get(ctx context.Context, id string) (*LearningPath, error) {
	return c.Query().Where(learningpath.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPathClient) GetX(ctx context.Context, id string) *LearningPath {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPathClient) Hooks() []Hook {
	return c.hooks.LearningPath
}

// Interceptors returns the client interceptors.
func (c *LearningPathClient) Interceptors() []Interceptor {
	return c.inters.LearningPath
}

func (c *LearningPathClient) mutate(ctx context.Context, m *LearningPathMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPath mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// PracticeQuestionClient is a client for the PracticeQuestion schema.
type PracticeQuestionClient struct {
	config
}

// NewPracticeQuestionClient returns a client for the PracticeQuestion from the given config.
func NewPracticeQuestionClient(c config) *PracticeQuestionClient {
	return &PracticeQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicequestion.Hooks(f(g(h())))`.
func (c *PracticeQuestionClient) Use(hooks ...Hook) {
	c.hooks.PracticeQuestion = append(c.hooks.PracticeQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicequestion.Intercept(f(g(h())))`.
func (c *PracticeQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeQuestion = append(c.inters.PracticeQuestion, interceptors...)
}

// Create returns a builder for creating a PracticeQuestion entity.
func (c *PracticeQuestionClient) Create() *PracticeQuestionCreate {
	mutation := newPracticeQuestionMutation(c.config, OpCreate)
	return &PracticeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeQuestion entities.
func (c *PracticeQuestionClient) CreateBulk(builders ...*PracticeQuestionCreate) *PracticeQuestionCreateBulk {
	return &PracticeQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeQuestionClient) MapCreateBulk(slice any, setFunc func(*PracticeQuestionCreate, int)) *PracticeQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeQuestionCreateBulk{err: fmt.Errorf("calling to PracticeQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeQuestion.
func (c *PracticeQuestionClient) Update() *PracticeQuestionUpdate {
	mutation := newPracticeQuestionMutation(c.config, OpUpdate)
	return &PracticeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeQuestionClient) UpdateOne(_m *PracticeQuestion) *PracticeQuestionUpdateOne {
	mutation := newPracticeQuestionMutation(c.config, OpUpdateOne, withPracticeQuestion(_m))
	return &PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeQuestionClient) UpdateOneID(id string) *PracticeQuestionUpdateOne {
	mutation := newPracticeQuestionMutation(c.config, OpUpdateOne, withPracticeQuestionID(id))
	return &PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeQuestion.
func (c *PracticeQuestionClient) Delete() *PracticeQuestionDelete {
	mutation := newPracticeQuestionMutation(c.config, OpDelete)
	return &PracticeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeQuestionClient) DeleteOne(_m *PracticeQuestion) *PracticeQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeQuestionClient) DeleteOneID(id string) *PracticeQuestionDeleteOne {
	builder := c.Delete().Where(practicequestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeQuestionDeleteOne{builder}
}

// Query returns a query builder for PracticeQuestion.
func (c *PracticeQuestionClient) Query() *PracticeQuestionQuery {
	return &PracticeQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeQuestion entity by its id.
func (c *PracticeQuestionClient) Get(ctx context.Context, id string) (*PracticeQuestion, error) {
	return c.Query().Where(practicequestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeQuestionClient) GetX(ctx context.Context, id string) *PracticeQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeQuestionClient) Hooks() []Hook {
	return c.hooks.PracticeQuestion
}

// Interceptors returns the client interceptors.
func (c *PracticeQuestionClient) Interceptors() []Interceptor {
	return c.inters.PracticeQuestion
}

func (c *PracticeQuestionClient) mutate(ctx context.Context, m *PracticeQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeQuestion mutation op: %q", m.Op())
	}
}

// SubtopicClient is a client for the Subtopic schema.
type SubtopicClient struct {
	config
}

// NewSubtopicClient returns a client for the Subtopic from the given config.
func NewSubtopicClient(c config) *SubtopicClient {
	return &SubtopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopic.Hooks(f(g(h())))`.
func (c *SubtopicClient) Use(hooks ...Hook) {
	c.hooks.Subtopic = append(c.hooks.Subtopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopic.Intercept(f(g(h())))`.
func (c *SubtopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtopic = append(c.inters.Subtopic, interceptors...)
}

// Create returns a builder for creating a Subtopic entity.
func (c *SubtopicClient) Create() *SubtopicCreate {
	mutation := newSubtopicMutation(c.config, OpCreate)
	return &SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtopic entities.
func (c *SubtopicClient) CreateBulk(builders ...*SubtopicCreate) *SubtopicCreateBulk {
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtopicClient) MapCreateBulk(slice any, setFunc func(*SubtopicCreate, int)) *SubtopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtopicCreateBulk{err: fmt.Errorf("calling to SubtopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtopic.
func (c *SubtopicClient) Update() *SubtopicUpdate {
	mutation := newSubtopicMutation(c.config, OpUpdate)
	return &SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtopicClient) UpdateOne(_m *Subtopic) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopic(_m))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtopicClient) UpdateOneID(id string) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopicID(id))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtopic.
func (c *SubtopicClient) Delete() *SubtopicDelete {
	mutation := newSubtopicMutation(c.config, OpDelete)
	return &SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtopicClient) DeleteOne(_m *Subtopic) *SubtopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtopicClient) DeleteOneID(id string) *SubtopicDeleteOne {
	builder := c.Delete().Where(subtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtopicDeleteOne{builder}
}

// Query returns a query builder for Subtopic.
func (c *SubtopicClient) Query() *SubtopicQuery {
	return &SubtopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtopic entity by its id.
func (c *SubtopicClient) Get(ctx context.Context, id string) (*Subtopic, error) {
	return c.Query().Where(subtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtopicClient) GetX(ctx context.Context, id string) *Subtopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubtopicClient) Hooks() []Hook {
	return c.hooks.Subtopic
}

// Interceptors returns the client interceptors.
func (c *SubtopicClient) Interceptors() []Interceptor {
	return c.inters.Subtopic
}

func (c *SubtopicClient) mutate(ctx context.Context, m *SubtopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtopic mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id string) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id string) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id string) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id string) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GenEvent, LLMEvent, LearningPath, Lesson, PracticeQuestion, Subtopic,
		Topic []ent.Hook
	}
	inters struct {
		GenEvent, LLMEvent, LearningPath, Lesson, PracticeQuestion, Subtopic,
		Topic []ent.Interceptor
	}
)
