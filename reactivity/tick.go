package reactivity

import "context"

// Post queues fn to run on the next Tick. It is the one method that is safe
// to call from other goroutines, which is how asynchronous work hands its
// results back to the engine.
func (e *Engine) Post(fn func()) {
	e.tasksMu.Lock()
	e.tasks = append(e.tasks, fn)
	e.tasksMu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Pending is the number of tasks waiting for a Tick.
func (e *Engine) Pending() int {
	e.tasksMu.Lock()
	defer e.tasksMu.Unlock()
	return len(e.tasks)
}

// Tick runs queued tasks in FIFO order until the queue is empty, including
// tasks posted by the tasks themselves. It returns how many ran.
func (e *Engine) Tick() int {
	ran := 0
	for {
		e.tasksMu.Lock()
		if len(e.tasks) == 0 {
			e.tasksMu.Unlock()
			return ran
		}
		task := e.tasks[0]
		e.tasks[0] = nil
		e.tasks = e.tasks[1:]
		e.tasksMu.Unlock()

		task()
		ran++
		e.stats.tasks.Add(1)
	}
}

// Run ticks every time tasks are posted until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	for {
		e.Tick()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wake:
		}
	}
}
