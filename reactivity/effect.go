package reactivity

import "fmt"

// Effect is a tracked, re-runnable computation. Every run drops all of its
// subscriptions and rebuilds them from whatever the body reads this time.
type Effect struct {
	engine *Engine
	id     uint64
	fn     func() (any, error)

	// reverse index of the subscriber sets this effect sits in
	deps []dep

	lazy      bool
	scheduler Scheduler
	stopped   bool
}

type EffectOption func(*Effect)

// Lazy skips the initial run, the effect only runs when Run is called or a
// dependency changes after that.
func Lazy() EffectOption {
	return func(eff *Effect) {
		eff.lazy = true
	}
}

// WithScheduler hands re-runs caused by a trigger to s instead of running
// them inline.
func WithScheduler(s Scheduler) EffectOption {
	return func(eff *Effect) {
		eff.scheduler = s
	}
}

// Effect registers fn and, unless Lazy is given, runs it once right away.
// The error from that first run is returned alongside the effect, which is
// usable either way.
func (e *Engine) Effect(fn func() error, opts ...EffectOption) (*Effect, error) {
	eff := e.newEffect(func() (any, error) {
		return nil, fn()
	}, opts...)
	if eff.lazy {
		return eff, nil
	}
	if _, err := eff.Run(); err != nil {
		return eff, fmt.Errorf("initial effect run: %w", err)
	}
	return eff, nil
}

func (e *Engine) newEffect(fn func() (any, error), opts ...EffectOption) *Effect {
	e.nextID++
	eff := &Effect{
		engine: e,
		id:     e.nextID,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(eff)
	}
	return eff
}

func (eff *Effect) ID() uint64 {
	return eff.id
}

// Active is false once Stop has been called.
func (eff *Effect) Active() bool {
	return !eff.stopped
}

// Run executes the body as the active effect and returns what it returned.
// Subscriptions from the previous run are removed first, even if the body
// then fails.
func (eff *Effect) Run() (any, error) {
	e := eff.engine
	e.stats.effectRuns.Add(1)
	if eff.stopped {
		// a nil frame keeps the body's reads away from the caller's effect
		e.push(nil)
		defer e.pop()
		return eff.fn()
	}

	eff.cleanup()
	e.push(eff)
	defer e.pop()

	return eff.fn()
}

// Stop unsubscribes the effect for good. Calling Run afterwards still runs
// the body but records nothing.
func (eff *Effect) Stop() {
	if eff.stopped {
		return
	}
	eff.cleanup()
	eff.stopped = true
}

func (eff *Effect) cleanup() {
	for _, d := range eff.deps {
		eff.engine.untrack(eff, d)
	}
	clear(eff.deps)
	eff.deps = eff.deps[:0]
}

// runReported is Run for callers that have nowhere to return an error to.
func (eff *Effect) runReported() {
	if _, err := eff.Run(); err != nil {
		eff.engine.handleError(eff, err)
	}
}
