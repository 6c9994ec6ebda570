package reactivity_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/effectparty/reactivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateSchedulerRunsInline(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	var logged []int
	e.Effect(func() error {
		logged = append(logged, reactivity.GetAs[int](obj, "num"))
		return nil
	}, reactivity.WithScheduler(reactivity.Immediate))

	obj.Set("num", 1)
	assert.Equal(t, []int{0, 1}, logged)
	assert.Equal(t, uint64(1), e.Stats().Scheduled)
}

func TestDeferredSchedulerWaitsForTick(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	var logged []int
	e.Effect(func() error {
		logged = append(logged, reactivity.GetAs[int](obj, "num"))
		return nil
	}, reactivity.WithScheduler(reactivity.Deferred))

	obj.Set("num", 1)
	obj.Set("num", 2)
	assert.Equal(t, []int{0}, logged)
	assert.Equal(t, 2, e.Pending())

	// no coalescing, one run per trigger
	assert.Equal(t, 2, e.Tick())
	assert.Equal(t, []int{0, 2, 2}, logged)
	assert.Equal(t, 0, e.Tick())
}

func TestJobQueueCoalesces(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	queue := e.NewJobQueue()

	var logged []int
	e.Effect(func() error {
		logged = append(logged, reactivity.GetAs[int](obj, "num"))
		return nil
	}, reactivity.WithScheduler(queue))
	require.Equal(t, []int{0}, logged)

	obj.Update("num", increment)
	obj.Update("num", increment)
	assert.Equal(t, []int{0}, logged)
	assert.Equal(t, 1, queue.Len())
	assert.Equal(t, 1, e.Pending())

	e.Tick()
	assert.Equal(t, []int{0, 2}, logged)
	assert.Equal(t, 0, queue.Len())

	// the queue is usable again on the next turn
	obj.Set("num", 7)
	e.Tick()
	assert.Equal(t, []int{0, 2, 7}, logged)
}

func TestJobQueueRunsInFirstQueuedOrder(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	queue := e.NewJobQueue()

	var order []string
	e.Effect(func() error {
		obj.Get("bar")
		order = append(order, "bar")
		return nil
	}, reactivity.WithScheduler(queue))
	e.Effect(func() error {
		obj.Get("foo")
		order = append(order, "foo")
		return nil
	}, reactivity.WithScheduler(queue))
	order = nil

	obj.Set("foo", 2)
	obj.Set("bar", 3)
	obj.Set("foo", 4)
	e.Tick()
	assert.Equal(t, []string{"foo", "bar"}, order)
}

func TestJobQueueJobsQueuedDuringFlushJoinIt(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	queue := e.NewJobQueue()

	var order []string
	e.Effect(func() error {
		n := reactivity.GetAs[int](obj, "foo")
		order = append(order, "writer")
		if n > 1 {
			obj.Set("bar", n)
		}
		return nil
	}, reactivity.WithScheduler(queue))
	e.Effect(func() error {
		obj.Get("bar")
		order = append(order, "reader")
		return nil
	}, reactivity.WithScheduler(queue))
	order = nil

	obj.Set("foo", 2)
	assert.Equal(t, 1, e.Tick())
	assert.Equal(t, []string{"writer", "reader"}, order)
}

func TestTickRunsTasksPostedWhileDraining(t *testing.T) {
	e := reactivity.New()

	var order []int
	e.Post(func() {
		order = append(order, 1)
		e.Post(func() {
			order = append(order, 3)
		})
	})
	e.Post(func() {
		order = append(order, 2)
	})

	assert.Equal(t, 3, e.Tick())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, uint64(3), e.Stats().Tasks)
}

func TestRunProcessesPostsFromOtherGoroutines(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	var mu sync.Mutex
	var logged []int
	e.Effect(func() error {
		n := reactivity.GetAs[int](obj, "num")
		mu.Lock()
		logged = append(logged, n)
		mu.Unlock()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- e.Run(ctx)
	}()

	var wg sync.WaitGroup
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Post(func() {
				obj.Update("num", increment)
			})
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(logged) == 4
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3}, logged)
}
