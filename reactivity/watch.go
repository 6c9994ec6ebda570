package reactivity

import (
	"context"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Flush controls when a watcher callback runs relative to the write that
// triggered it.
type Flush int

const (
	// FlushSync runs the callback before the write returns.
	FlushSync Flush = iota
	// FlushPost runs the callback on the engine's next Tick.
	FlushPost
)

func (f Flush) String() string {
	switch f {
	case FlushSync:
		return "sync"
	case FlushPost:
		return "post"
	default:
		return "unknown"
	}
}

type watchOptions struct {
	immediate bool
	flush     Flush
}

type WatchOption func(*watchOptions)

// FireImmediately calls the callback once at setup, with a zero old value.
func FireImmediately() WatchOption {
	return func(o *watchOptions) {
		o.immediate = true
	}
}

func WithFlush(flush Flush) WatchOption {
	return func(o *watchOptions) {
		o.flush = flush
	}
}

// WatchCallback receives the previous and current value of the source and a
// token that expires once a newer change supersedes this call.
type WatchCallback[T any] func(oldValue, newValue T, inv *Invalidation)

type StopFunc func()

// Invalidation is handed to each callback call. A callback doing slow or
// asynchronous work checks Expired (or watches Context) before committing
// results, because by then a newer call may have started.
type Invalidation struct {
	slot    *func()
	expired atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func newInvalidation(slot *func()) *Invalidation {
	ctx, cancel := context.WithCancel(context.Background())
	return &Invalidation{
		slot:   slot,
		ctx:    ctx,
		cancel: cancel,
	}
}

// OnInvalidate registers fn to run right before the next callback call.
// There is one slot per watcher, the last registration wins. Call it from the
// callback itself, not from goroutines it starts.
func (inv *Invalidation) OnInvalidate(fn func()) {
	*inv.slot = fn
}

// Expired reports whether a newer callback call has superseded this one. Safe
// from any goroutine.
func (inv *Invalidation) Expired() bool {
	return inv.expired.Load()
}

// Context is cancelled when the token expires.
func (inv *Invalidation) Context() context.Context {
	return inv.ctx
}

func (inv *Invalidation) expire() {
	if inv.expired.CompareAndSwap(false, true) {
		inv.cancel()
	}
}

type watcher[T any] struct {
	engine   *Engine
	effect   *Effect
	cb       WatchCallback[T]
	latest   T
	oldValue T
	hook     func()
	token    *Invalidation
	stopped  bool
}

// Watch calls cb with old and new values whenever something getter reads
// changes.
func Watch[T any](e *Engine, getter func() T, cb WatchCallback[T], opts ...WatchOption) StopFunc {
	o := watchOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	w := &watcher[T]{engine: e, cb: cb}
	w.effect = e.newEffect(
		func() (any, error) {
			w.latest = getter()
			return nil, nil
		},
		Lazy(),
		WithScheduler(SchedulerFunc(func(*Effect) {
			if o.flush == FlushPost {
				e.Post(w.job)
				return
			}
			w.job()
		})),
	)

	if o.immediate {
		w.job()
	} else {
		w.effect.Run()
		w.oldValue = w.latest
	}
	return w.stop
}

// WatchDeep watches every reachable property under source, which is usually
// an *Object whose values may hold further objects. Old and new value are
// both source itself.
func WatchDeep(e *Engine, source any, cb WatchCallback[any], opts ...WatchOption) StopFunc {
	return Watch(e, func() any {
		traverse(source, mapset.NewThreadUnsafeSet[any]())
		return source
	}, cb, opts...)
}

func (w *watcher[T]) job() {
	if w.stopped {
		return
	}
	w.effect.Run()
	newValue := w.latest

	w.invalidate()
	w.token = newInvalidation(&w.hook)
	w.engine.stats.watchJobs.Add(1)

	w.cb(w.oldValue, newValue, w.token)
	w.oldValue = newValue
}

// invalidate calls the registered hook at most once and expires the
// outstanding token.
func (w *watcher[T]) invalidate() {
	if hook := w.hook; hook != nil {
		w.hook = nil
		hook()
	}
	if w.token != nil {
		w.token.expire()
	}
}

func (w *watcher[T]) stop() {
	if w.stopped {
		return
	}
	w.stopped = true
	w.effect.Stop()
	w.invalidate()
}
