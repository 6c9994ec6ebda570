package reactivity

import "fmt"

const valueKey = "value"

// ComputedCell is a lazily evaluated, cached derived value. It only
// re-evaluates when read after one of its dependencies changed, and readers of
// the cell are notified when it goes stale.
type ComputedCell[T any] struct {
	engine *Engine
	effect *Effect
	value  T
	dirty  bool
	// last evaluation returned an error, the next change must still notify
	failed bool
}

// Computed builds a cell over getter. Nothing runs until the first read.
func Computed[T any](e *Engine, getter func() T) *ComputedCell[T] {
	return ComputedErr(e, func() (T, error) {
		return getter(), nil
	})
}

// ComputedErr is Computed for getters that can fail. A failed evaluation
// leaves the cell dirty so the next read tries again.
func ComputedErr[T any](e *Engine, getter func() (T, error)) *ComputedCell[T] {
	c := &ComputedCell[T]{
		engine: e,
		dirty:  true,
	}
	c.effect = e.newEffect(
		func() (any, error) {
			v, err := getter()
			if err != nil {
				return nil, err
			}
			c.value = v
			return nil, nil
		},
		Lazy(),
		WithScheduler(SchedulerFunc(c.invalidate)),
	)
	return c
}

// invalidate runs when a dependency changes. Only the first change after a
// read notifies, further ones before the next read are absorbed. A cell whose
// last evaluation failed notifies again so its readers retry.
func (c *ComputedCell[T]) invalidate(*Effect) {
	if c.dirty && !c.failed {
		return
	}
	c.dirty = true
	c.failed = false
	c.engine.Trigger(c, valueKey)
}

// Value returns the cached value, evaluating first if stale. Errors from a
// ComputedErr getter are only visible through Load.
func (c *ComputedCell[T]) Value() T {
	v, _ := c.Load()
	return v
}

func (c *ComputedCell[T]) Load() (T, error) {
	if c.dirty {
		if _, err := c.effect.Run(); err != nil {
			c.failed = true
			c.engine.Track(c, valueKey)
			return c.value, fmt.Errorf("computed evaluation: %w", err)
		}
		c.dirty = false
		c.failed = false
		c.engine.stats.computedEvals.Add(1)
	}
	// tracked after evaluating so the getter's own effect never subscribes here
	c.engine.Track(c, valueKey)
	return c.value, nil
}

func (c *ComputedCell[T]) Dirty() bool {
	return c.dirty
}
