package reactivity

import mapset "github.com/deckarep/golang-set/v2"

// Scheduler decides when a triggered effect re-runs.
type Scheduler interface {
	Schedule(eff *Effect)
}

// SchedulerFunc adapts a plain function to a Scheduler.
type SchedulerFunc func(eff *Effect)

func (f SchedulerFunc) Schedule(eff *Effect) {
	f(eff)
}

var (
	// Immediate re-runs the effect inline, same as having no scheduler.
	Immediate Scheduler = immediate{}
	// Deferred re-runs the effect on the engine's next Tick.
	Deferred Scheduler = deferred{}
)

type immediate struct{}

func (immediate) Schedule(eff *Effect) {
	eff.runReported()
}

type deferred struct{}

func (deferred) Schedule(eff *Effect) {
	eff.engine.Post(eff.runReported)
}

// JobQueue coalesces triggered effects into one flush per tick. An effect
// queued several times before the flush runs once. The flush runs jobs in the
// order they were first queued.
type JobQueue struct {
	engine   *Engine
	pending  mapset.Set[*Effect]
	order    []*Effect
	flushing bool
}

func (e *Engine) NewJobQueue() *JobQueue {
	return &JobQueue{
		engine:  e,
		pending: mapset.NewThreadUnsafeSet[*Effect](),
	}
}

func (q *JobQueue) Schedule(eff *Effect) {
	if q.pending.Add(eff) {
		q.order = append(q.order, eff)
	}
	if q.flushing {
		return
	}
	q.flushing = true
	q.engine.Post(q.flush)
}

// Len is the number of jobs waiting for the next flush.
func (q *JobQueue) Len() int {
	return len(q.order)
}

func (q *JobQueue) flush() {
	defer func() {
		q.flushing = false
	}()

	// jobs queued by a running job join this flush
	for len(q.order) > 0 {
		eff := q.order[0]
		q.order[0] = nil
		q.order = q.order[1:]
		q.pending.Remove(eff)
		if eff.stopped {
			continue
		}
		eff.runReported()
	}
}
