// Package crud keeps a displayed collection in sync with a REST resource
// across create, update and delete. A Controller never performs I/O itself:
// Load, Save and Remove return Effects that the caller runs (usually inside a
// tea.Cmd) and feeds back through Apply.
package crud

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Schema describes how an entity maps to and from its form.
type Schema[T any] struct {
	Fields []Field
	// FromItem returns the form values for an existing item.
	FromItem func(T) map[string]string
	// Payload builds the request body from form values.
	Payload func(map[string]string) T
	// ID returns the identifier used in PUT and DELETE paths.
	ID func(T) string
}

// Ops are the network calls backing a controller. Create and Update return
// the HTTP status. Any nil op makes the matching action fail.
type Ops[T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, item T) (int, error)
	Update func(ctx context.Context, id string, item T) (int, error)
	Delete func(ctx context.Context, id string) error
}

// Messages are the message ids used for notices.
type Messages struct {
	LoadFailed    string
	SaveFailed    string
	DeleteFailed  string
	Created       string
	Updated       string
	Deleted       string
	MissingFields string
}

// Notice is a user-visible message. ID is resolved by the caller.
type Notice struct {
	ID    string
	Data  map[string]any
	Error bool
}

// Notifier receives notices.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Kind tells Apply which action produced a Result.
type Kind int

const (
	KindLoad Kind = iota
	KindCreate
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Result is the outcome of an Effect.
type Result[T any] struct {
	Kind   Kind
	Items  []T
	Status int
	Err    error
}

// Effect is deferred network work. It must not touch controller state.
type Effect[T any] func(ctx context.Context) Result[T]

// Controller holds list state, form state and modal visibility for one
// resource. It is not safe for concurrent use; mutate it from one goroutine.
type Controller[T any] struct {
	Items   []T
	Form    Form
	Editing string
	Visible bool

	schema   Schema[T]
	ops      Ops[T]
	msgs     Messages
	notifier Notifier
	logger   *zap.Logger
	data     map[string]any
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithNotifier sets where notices go. The default drops them.
func WithNotifier[T any](n Notifier) Option[T] {
	return func(c *Controller[T]) { c.notifier = n }
}

// WithLogger sets the logger for swallowed errors.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(c *Controller[T]) { c.logger = l }
}

// WithNoticeData adds template data to every notice (e.g. "Endpoint").
func WithNoticeData[T any](data map[string]any) Option[T] {
	return func(c *Controller[T]) { c.data = data }
}

// New returns a controller with an empty list and a hidden, empty form.
func New[T any](schema Schema[T], ops Ops[T], msgs Messages, opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		Items:    []T{},
		Form:     NewForm(schema.Fields),
		schema:   schema,
		ops:      ops,
		msgs:     msgs,
		notifier: NotifierFunc(func(Notice) {}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schema returns the controller's schema.
func (c *Controller[T]) Schema() Schema[T] {
	return c.schema
}

// Load fetches the collection.
func (c *Controller[T]) Load() Effect[T] {
	list := c.ops.List
	return func(ctx context.Context) Result[T] {
		if list == nil {
			return Result[T]{Kind: KindLoad, Err: errNoOp("list")}
		}
		items, err := list(ctx)
		return Result[T]{Kind: KindLoad, Items: items, Err: err}
	}
}

// OpenForm shows the form. With an item the fields are filled from it and
// its id becomes the editing target; with nil the form is cleared.
func (c *Controller[T]) OpenForm(item *T) {
	c.Form.Reset()
	c.Editing = ""
	if item != nil {
		for k, v := range c.schema.FromItem(*item) {
			c.Form.Set(k, v)
		}
		c.Editing = c.schema.ID(*item)
	}
	c.Visible = true
}

// CloseForm hides the form without touching its values.
func (c *Controller[T]) CloseForm() {
	c.Visible = false
}

// Save validates the form and returns the PUT or POST to run. When fields
// are blank it notifies, returns *ErrMissingFields and no effect.
func (c *Controller[T]) Save() (Effect[T], error) {
	if missing := c.Form.Missing(); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = f.Key
		}
		c.notify(c.msgs.MissingFields, true, map[string]any{"Fields": labels})
		return nil, &ErrMissingFields{Fields: missing}
	}

	item := c.schema.Payload(c.Form.Values())
	if id := c.Editing; id != "" {
		update := c.ops.Update
		return func(ctx context.Context) Result[T] {
			if update == nil {
				return Result[T]{Kind: KindUpdate, Err: errNoOp("update")}
			}
			status, err := update(ctx, id, item)
			return Result[T]{Kind: KindUpdate, Status: status, Err: err}
		}, nil
	}
	create := c.ops.Create
	return func(ctx context.Context) Result[T] {
		if create == nil {
			return Result[T]{Kind: KindCreate, Err: errNoOp("create")}
		}
		status, err := create(ctx, item)
		return Result[T]{Kind: KindCreate, Status: status, Err: err}
	}, nil
}

// Remove returns the DELETE for id.
func (c *Controller[T]) Remove(id string) Effect[T] {
	del := c.ops.Delete
	return func(ctx context.Context) Result[T] {
		if del == nil {
			return Result[T]{Kind: KindDelete, Err: errNoOp("delete")}
		}
		return Result[T]{Kind: KindDelete, Err: del(ctx, id)}
	}
}

// Apply folds r into the controller and reports whether the collection must
// be reloaded.
func (c *Controller[T]) Apply(r Result[T]) bool {
	switch r.Kind {
	case KindLoad:
		if r.Err != nil {
			c.warn(r)
			c.notify(c.msgs.LoadFailed, true, nil)
			return false
		}
		if r.Items == nil {
			r.Items = []T{}
		}
		c.Items = r.Items
		return false

	case KindCreate, KindUpdate:
		if r.Err != nil || (r.Status != http.StatusOK && r.Status != http.StatusCreated) {
			c.warn(r)
			c.notify(c.msgs.SaveFailed, true, nil)
			return false
		}
		if r.Kind == KindCreate {
			c.notify(c.msgs.Created, false, nil)
		} else {
			c.notify(c.msgs.Updated, false, nil)
		}
		c.Visible = false
		c.Editing = ""
		c.Form.Reset()
		return true

	case KindDelete:
		if r.Err != nil {
			c.warn(r)
			c.notify(c.msgs.DeleteFailed, true, nil)
			return false
		}
		c.notify(c.msgs.Deleted, false, nil)
		return true
	}
	return false
}

// Do runs eff, applies it and performs the follow-up reload if one is due.
func (c *Controller[T]) Do(ctx context.Context, eff Effect[T]) {
	if eff == nil {
		return
	}
	if c.Apply(eff(ctx)) {
		c.Apply(c.Load()(ctx))
	}
}

func (c *Controller[T]) notify(id string, isErr bool, extra map[string]any) {
	if id == "" {
		return
	}
	var data map[string]any
	if len(c.data) > 0 || len(extra) > 0 {
		data = make(map[string]any, len(c.data)+len(extra))
		for k, v := range c.data {
			data[k] = v
		}
		for k, v := range extra {
			data[k] = v
		}
	}
	c.notifier.Notify(Notice{ID: id, Data: data, Error: isErr})
}

func (c *Controller[T]) warn(r Result[T]) {
	c.logger.Warn("crud action failed",
		zap.Stringer("action", r.Kind),
		zap.Int("status", r.Status),
		zap.Error(r.Err),
	)
}

type errNoOp string

func (e errNoOp) Error() string { return "crud: no " + string(e) + " operation" }
