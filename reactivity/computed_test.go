package reactivity_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/effectparty/reactivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputedMemoizes(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	callCount := 0
	sum := reactivity.Computed(e, func() int {
		callCount++
		return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
	})
	assert.True(t, sum.Dirty())
	assert.Equal(t, 0, callCount)

	assert.Equal(t, 3, sum.Value())
	assert.Equal(t, 1, callCount)

	assert.Equal(t, 3, sum.Value())
	assert.Equal(t, 1, callCount)

	obj.Update("foo", increment)
	// invalidated, not recomputed yet
	assert.True(t, sum.Dirty())
	assert.Equal(t, 1, callCount)

	assert.Equal(t, 4, sum.Value())
	assert.Equal(t, 2, callCount)
	assert.False(t, sum.Dirty())
}

func TestComputedAbsorbsRepeatedInvalidation(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	sum := reactivity.Computed(e, func() int {
		return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
	})

	effectRuns := 0
	e.Effect(func() error {
		effectRuns++
		sum.Value()
		return nil
	})
	require.Equal(t, 1, effectRuns)

	// the effect re-reads the cell each time so each write notifies once
	obj.Set("foo", 10)
	assert.Equal(t, 2, effectRuns)
	obj.Set("bar", 20)
	assert.Equal(t, 3, effectRuns)
	assert.Equal(t, 30, sum.Value())
}

func TestComputedDirtyTwiceNotifiesOnce(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	getterRuns := 0
	sum := reactivity.Computed(e, func() int {
		getterRuns++
		return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
	})

	var scheduled int
	reader, err := e.Effect(func() error {
		sum.Value()
		return nil
	}, reactivity.WithScheduler(reactivity.SchedulerFunc(func(*reactivity.Effect) {
		scheduled++
	})))
	require.NoError(t, err)
	require.NotNil(t, reader)

	// nobody reads between the writes, only the first one notifies
	obj.Set("foo", 5)
	obj.Set("bar", 5)
	assert.Equal(t, 1, scheduled)
	assert.Equal(t, 1, getterRuns)

	assert.Equal(t, 10, sum.Value())
	assert.Equal(t, 2, getterRuns)
}

func TestComputedEffectSeesNewValue(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)

	sumRes := reactivity.Computed(e, func() int {
		return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
	})

	var logged []int
	e.Effect(func() error {
		logged = append(logged, sumRes.Value())
		return nil
	})

	obj.Update("foo", increment)
	assert.Equal(t, []int{3, 4}, logged)
}

func TestComputedChain(t *testing.T) {
	//  foo   bar
	//    \   /
	//     sum
	//      |
	//    double
	e := reactivity.New()
	obj := newState(e)

	sumCalls, doubleCalls := 0, 0
	sum := reactivity.Computed(e, func() int {
		sumCalls++
		return reactivity.GetAs[int](obj, "foo") + reactivity.GetAs[int](obj, "bar")
	})
	double := reactivity.Computed(e, func() int {
		doubleCalls++
		return sum.Value() * 2
	})

	assert.Equal(t, 6, double.Value())
	assert.Equal(t, 1, sumCalls)
	assert.Equal(t, 1, doubleCalls)

	obj.Set("bar", 3)
	assert.True(t, double.Dirty())
	assert.Equal(t, 8, double.Value())
	assert.Equal(t, 2, sumCalls)
	assert.Equal(t, 2, doubleCalls)

	double.Value()
	assert.Equal(t, 2, doubleCalls)
}

func TestComputedErr(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	errNegative := errors.New("negative")

	calls := 0
	c := reactivity.ComputedErr(e, func() (int, error) {
		calls++
		n := reactivity.GetAs[int](obj, "num")
		if n < 0 {
			return 0, errNegative
		}
		return n * 10, nil
	})

	v, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	obj.Set("num", -1)
	_, err = c.Load()
	assert.ErrorIs(t, err, errNegative)
	assert.True(t, c.Dirty())

	obj.Set("num", 2)
	v, err = c.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, calls)
}

func TestComputedErrReaderRecovers(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	errNegative := errors.New("negative")

	c := reactivity.ComputedErr(e, func() (int, error) {
		n := reactivity.GetAs[int](obj, "num")
		if n < 0 {
			return 0, errNegative
		}
		return n, nil
	})

	var seen []int
	var failures []error
	e.Effect(func() error {
		v, err := c.Load()
		if err != nil {
			failures = append(failures, err)
			return nil
		}
		seen = append(seen, v)
		return nil
	})
	require.Equal(t, []int{0}, seen)

	obj.Set("num", -1)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], errNegative)

	// still failing, the reader retries each time
	obj.Set("num", -2)
	assert.Len(t, failures, 2)

	obj.Set("num", 5)
	assert.Equal(t, []int{0, 5}, seen)
	assert.False(t, c.Dirty())

	// back to normal absorption once healthy
	obj.Set("num", 6)
	assert.Equal(t, []int{0, 5, 6}, seen)
}

func TestComputedStats(t *testing.T) {
	e := reactivity.New()
	obj := newState(e)
	c := reactivity.Computed(e, func() int {
		return reactivity.GetAs[int](obj, "foo")
	})

	c.Value()
	c.Value()
	obj.Set("foo", 9)
	c.Value()

	stats := e.Stats()
	assert.Equal(t, uint64(2), stats.ComputedEvals)
	assert.Equal(t, uint64(1), stats.Scheduled)
	assert.Equal(t, uint64(1), stats.Triggers)
}
