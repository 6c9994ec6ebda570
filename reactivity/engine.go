package reactivity

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	mapset "github.com/deckarep/golang-set/v2"
)

// OnErrorFunc receives errors returned by effect bodies that were run by a
// trigger or a scheduler rather than by an explicit call to Run.
type OnErrorFunc func(from *Effect, err error)

// Engine is one dependency graph. It owns the dependency store, the stack of
// running effects and the deferred task queue. Engines share nothing, so tests
// can build as many as they like.
//
// Apart from Post, an Engine must only be used from one goroutine at a time.
type Engine struct {
	// target -> key -> effects that read target[key] during their last run
	bucket map[any]map[any]mapset.Set[*Effect]
	// top is the effect currently tracking reads, a nil frame pauses tracking
	stack  []*Effect
	nextID uint64

	// raw map -> *Object so a target is only ever wrapped once
	objects map[unsafe.Pointer]any

	tasksMu sync.Mutex
	tasks   []func()
	wake    chan struct{}

	onError OnErrorFunc
	logger  *slog.Logger
	stats   counters
}

type Option func(*Engine)

// WithLogger sets the logger used for scheduling traces and unhandled errors.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithErrorHandler routes errors from triggered effect runs to fn instead of
// the logger.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(e *Engine) {
		e.onError = fn
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		bucket:  map[any]map[any]mapset.Set[*Effect]{},
		objects: map[unsafe.Pointer]any{},
		wake:    make(chan struct{}, 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) active() *Effect {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

func (e *Engine) push(eff *Effect) {
	e.stack = append(e.stack, eff)
}

func (e *Engine) pop() {
	last := len(e.stack) - 1
	e.stack[last] = nil
	e.stack = e.stack[:last]
}

// Tracking reports whether a read right now would record a dependency.
func (e *Engine) Tracking() bool {
	eff := e.active()
	return eff != nil && !eff.stopped
}

// Untracked runs fn with dependency tracking paused. Reads inside fn are not
// attributed to whichever effect is running.
func (e *Engine) Untracked(fn func()) {
	e.push(nil)
	defer e.pop()
	fn()
}

func (e *Engine) handleError(from *Effect, err error) {
	if e.onError != nil {
		e.onError(from, err)
		return
	}
	e.logger.Error("reactivity: effect run failed", "effect", from.id, "err", err)
}

type counters struct {
	effectRuns    atomic.Uint64
	triggers      atomic.Uint64
	scheduled     atomic.Uint64
	computedEvals atomic.Uint64
	watchJobs     atomic.Uint64
	tasks         atomic.Uint64
	targets       atomic.Int64
}

// Stats is a snapshot of the engine's counters. It is safe to take from any
// goroutine.
type Stats struct {
	EffectRuns    uint64
	Triggers      uint64
	Scheduled     uint64
	ComputedEvals uint64
	WatchJobs     uint64
	Tasks         uint64
	// Targets counts objects and cells that currently have a subscriber.
	Targets int64
}

func (e *Engine) Stats() Stats {
	return Stats{
		EffectRuns:    e.stats.effectRuns.Load(),
		Triggers:      e.stats.triggers.Load(),
		Scheduled:     e.stats.scheduled.Load(),
		ComputedEvals: e.stats.computedEvals.Load(),
		WatchJobs:     e.stats.watchJobs.Load(),
		Tasks:         e.stats.tasks.Load(),
		Targets:       e.stats.targets.Load(),
	}
}
