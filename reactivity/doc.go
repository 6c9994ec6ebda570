// Package reactivity implements fine-grained dependency tracking over map
// backed objects.
//
// Reads made through an Object while an Effect runs subscribe that effect to
// the (object, key) pair; writes re-run exactly the subscribed effects. Every
// run throws away its old subscriptions and records new ones, so branches that
// stop reading a key stop depending on it.
//
//	e := reactivity.New()
//	obj := reactivity.Reactive(e, map[string]any{"foo": 1, "bar": 2})
//
//	sum := reactivity.Computed(e, func() int {
//	    return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
//	})
//	e.Effect(func() error {
//	    log.Printf("sum is %d", sum.Value())
//	    return nil
//	})
//	obj.Set("foo", 2) // logs "sum is 4"
//
// Re-runs can be routed through a Scheduler: Immediate, Deferred (next Tick),
// a JobQueue that coalesces runs, or any SchedulerFunc. Watch and WatchDeep
// layer old/new value callbacks on top, with an Invalidation token per call
// so slow callbacks can tell when their result went stale.
//
// An Engine is single threaded. Work that leaves the engine's goroutine comes
// back through Post and runs on the next Tick, or continuously under Run.
package reactivity
