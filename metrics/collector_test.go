package metrics_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/delaneyj/effectparty/metrics"
	"github.com/delaneyj/effectparty/reactivity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorReportsEngineStats(t *testing.T) {
	e := reactivity.New()
	obj := reactivity.Reactive(e, map[string]any{"num": 0})

	queue := e.NewJobQueue()
	_, err := e.Effect(func() error {
		obj.Get("num")
		return nil
	}, reactivity.WithScheduler(queue))
	require.NoError(t, err)

	obj.Set("num", 1)
	obj.Set("num", 2)
	e.Tick()

	c := metrics.NewCollector(e, metrics.WithNamespace("test"))
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	expected := `
# HELP test_effect_runs_total Effect body executions, including computed and watcher effects
# TYPE test_effect_runs_total counter
test_effect_runs_total 2
# HELP test_scheduled_total Triggered effects handed to a scheduler instead of run inline
# TYPE test_scheduled_total counter
test_scheduled_total 2
# HELP test_tasks_total Deferred tasks executed by Tick
# TYPE test_tasks_total counter
test_tasks_total 1
# HELP test_tracked_targets Objects and cells with at least one subscriber
# TYPE test_tracked_targets gauge
test_tracked_targets 1
# HELP test_triggers_total Writes that found at least one tracked subscriber set
# TYPE test_triggers_total counter
test_triggers_total 2
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_effect_runs_total",
		"test_scheduled_total",
		"test_tasks_total",
		"test_tracked_targets",
		"test_triggers_total",
	)
	assert.NoError(t, err)
}

func TestCollectorTargetsGaugeFalls(t *testing.T) {
	e := reactivity.New()
	obj := reactivity.Reactive(e, map[string]any{"num": 0})
	eff, err := e.Effect(func() error {
		obj.Get("num")
		return nil
	})
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(metrics.NewCollector(e)))

	targets := func(n int) string {
		return fmt.Sprintf(`
# HELP reactivity_tracked_targets Objects and cells with at least one subscriber
# TYPE reactivity_tracked_targets gauge
reactivity_tracked_targets %d
`, n)
	}
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(targets(1)), "reactivity_tracked_targets"))

	eff.Stop()
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(targets(0)), "reactivity_tracked_targets"))
}

func TestCollectorConstLabels(t *testing.T) {
	e := reactivity.New()
	c := metrics.NewCollector(e, metrics.WithConstLabels(prometheus.Labels{"engine": "ui"}))

	assert.Equal(t, 7, testutil.CollectAndCount(c))
	assert.Equal(t, 7, testutil.CollectAndCount(c, "reactivity_effect_runs_total", "reactivity_triggers_total",
		"reactivity_scheduled_total", "reactivity_computed_evaluations_total", "reactivity_watch_jobs_total",
		"reactivity_tasks_total", "reactivity_tracked_targets"))
}
