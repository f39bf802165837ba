package nav

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

// Entry is one step in the navigation history.
type Entry struct {
	Token       string // Token as dispatched
	Route       route.Route
	Resolved    bool // False when the token named no registered destination
	Destination registry.Destination
}

// Router is the application's Navigator. It keeps a history stack of entries
// and never fails a dispatch: unknown tokens become unresolved entries that the
// host renders as a not-found screen.
//
// A Router is owned by a single UI event loop and is not safe for concurrent use.
type Router struct {
	reg      *registry.Registry
	logger   *log.Logger
	recorder Recorder
	session  string
	history  []Entry
	serial   uint64
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for dispatch events.
func WithLogger(l *log.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets a recorder that is told about every dispatch.
func WithRecorder(rec Recorder) Option {
	return func(r *Router) {
		r.recorder = rec
	}
}

// WithSession tags recorded dispatches and log lines with a session ID.
func WithSession(id string) Option {
	return func(r *Router) {
		r.session = id
	}
}

// NewRouter creates a router whose history starts at root.
func NewRouter(reg *registry.Registry, root route.Route, opts ...Option) *Router {
	r := &Router{
		reg:    reg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.history = []Entry{r.resolve(root.String())}
	return r
}

// Navigate pushes the destination for token onto the history.
// Every call produces exactly one new entry.
func (r *Router) Navigate(token string) {
	e := r.resolve(token)
	r.history = append(r.history, e)
	r.serial++

	if e.Resolved {
		r.logger.Debug("navigate", "route", token, "session", r.session, "depth", len(r.history))
	} else {
		r.logger.Warn("unresolved route", "route", token, "session", r.session)
	}

	r.record(e)
}

// Back pops the current entry. Returns false if already at the root.
func (r *Router) Back() bool {
	if len(r.history) <= 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	r.serial++
	r.logger.Debug("back", "route", r.Current().Token, "session", r.session)
	return true
}

// Reset clears the history and starts again at root.
func (r *Router) Reset(root route.Route) {
	r.history = []Entry{r.resolve(root.String())}
	r.serial++
}

// Current returns the entry on top of the history.
func (r *Router) Current() Entry {
	return r.history[len(r.history)-1]
}

// Depth returns the number of entries in the history.
func (r *Router) Depth() int {
	return len(r.history)
}

// Serial returns a counter that changes whenever the current entry changes.
func (r *Router) Serial() uint64 {
	return r.serial
}

// resolve maps a token to a history entry.
func (r *Router) resolve(token string) Entry {
	e := Entry{Token: token}

	rt, err := route.Parse(token)
	if err != nil {
		return e
	}
	e.Route = rt

	if r.reg == nil {
		return e
	}
	d, err := r.reg.Lookup(rt)
	if err != nil {
		return e
	}
	e.Destination = d
	e.Resolved = true
	return e
}

// record forwards a dispatch to the recorder. Failures are logged only.
func (r *Router) record(e Entry) {
	if r.recorder == nil {
		return
	}
	if _, err := r.recorder.SaveVisit(r.session, e.Token, e.Resolved); err != nil {
		r.logger.Error("could not record visit", "route", e.Token, "error", err)
	}
}
