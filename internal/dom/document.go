package dom

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/monitoring"
)

// Document is the rendering host for one client: it owns the attached
// element tree, the change log and the before-client-response tasks
type Document struct {
	id      string
	root    *Element
	changes []Change

	pending  []*task
	byOwner  map[*Element]*task
	flushing bool

	logger  *zap.Logger
	metrics *monitoring.Metrics
}

type task struct {
	owner    *Element
	fn       func(*Document)
	canceled bool
}

// Option configures a Document
type Option func(*Document)

// WithLogger sets the document logger
func WithLogger(logger *zap.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics enables flush metrics
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(d *Document) { d.metrics = metrics }
}

// NewDocument creates an empty document with a "body" root
func NewDocument(opts ...Option) *Document {
	d := &Document{
		id:      uuid.New().String(),
		byOwner: make(map[*Element]*task),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.root = NewElement("body")
	d.root.doc = d
	return d
}

// ID returns the document identifier
func (d *Document) ID() string { return d.id }

// Root returns the root element
func (d *Document) Root() *Element { return d.root }

// Attach appends elements under the root, firing attach listeners on each subtree
func (d *Document) Attach(elements ...*Element) {
	d.root.AppendChild(elements...)
}

// Detach removes elements from the root, firing detach listeners
func (d *Document) Detach(elements ...*Element) error {
	return d.root.RemoveChild(elements...)
}

// BeforeClientResponse schedules fn to run once during the next Flush.
// A task still pending for the same owner is replaced.
func (d *Document) BeforeClientResponse(owner *Element, fn func(*Document)) Registration {
	if prev, ok := d.byOwner[owner]; ok && !prev.canceled {
		prev.canceled = true
		d.metrics.IncTasksReplaced()
		d.logger.Debug("Replacing pending client response task", zap.String("owner", owner.ID()))
	}

	t := &task{owner: owner, fn: fn}
	d.byOwner[owner] = t
	d.pending = append(d.pending, t)
	d.metrics.SetPendingTasks(d.PendingTasks())

	return once(func() {
		if t.canceled {
			return
		}
		t.canceled = true
		if d.byOwner[owner] == t {
			delete(d.byOwner, owner)
		}
		d.metrics.IncTasksCanceled()
		d.metrics.SetPendingTasks(d.PendingTasks())
	})
}

// PendingTasks returns the number of tasks waiting for the next flush
func (d *Document) PendingTasks() int {
	n := 0
	for _, t := range d.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Flush runs every pending task in scheduling order, then returns and
// clears the accumulated change log. Tasks scheduled by a running task
// run in the same flush.
func (d *Document) Flush() []Change {
	if d.flushing {
		return nil
	}
	d.flushing = true
	defer func() { d.flushing = false }()
	timer := monitoring.NewTimer(d.metrics)

	ran := 0
	for len(d.pending) > 0 {
		batch := d.pending
		d.pending = nil
		for _, t := range batch {
			if t.canceled {
				continue
			}
			t.canceled = true
			if d.byOwner[t.owner] == t {
				delete(d.byOwner, t.owner)
			}
			t.fn(d)
			ran++
		}
	}

	changes := d.changes
	d.changes = nil

	d.metrics.RecordFlush(ran, len(changes))
	d.metrics.SetPendingTasks(0)
	elapsed := timer.Stop()
	d.logger.Debug("Flushed document",
		zap.String("document", d.id),
		zap.Int("tasks", ran),
		zap.Int("changes", len(changes)),
		zap.Duration("duration", elapsed),
	)
	return changes
}

func (d *Document) record(c Change) {
	d.changes = append(d.changes, c)
}
