// Package metrics exports reactivity.Engine counters to Prometheus.
package metrics

import (
	"github.com/delaneyj/effectparty/reactivity"
	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "reactivity").
	Namespace string

	// ConstLabels are added to every metric, useful to tell engines apart.
	ConstLabels prometheus.Labels
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

type collector struct {
	engine *reactivity.Engine

	effectRuns    *prometheus.Desc
	triggers      *prometheus.Desc
	scheduled     *prometheus.Desc
	computedEvals *prometheus.Desc
	watchJobs     *prometheus.Desc
	tasks         *prometheus.Desc
	targets       *prometheus.Desc
}

// NewCollector reads e.Stats on every scrape. Stats is safe to read while the
// engine runs on another goroutine.
func NewCollector(e *reactivity.Engine, opts ...Option) prometheus.Collector {
	cfg := Config{Namespace: "reactivity"}
	for _, opt := range opts {
		opt(&cfg)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, "", name),
			help, nil, cfg.ConstLabels,
		)
	}

	return &collector{
		engine:        e,
		effectRuns:    desc("effect_runs_total", "Effect body executions, including computed and watcher effects"),
		triggers:      desc("triggers_total", "Writes that found at least one tracked subscriber set"),
		scheduled:     desc("scheduled_total", "Triggered effects handed to a scheduler instead of run inline"),
		computedEvals: desc("computed_evaluations_total", "Computed cell re-evaluations"),
		watchJobs:     desc("watch_jobs_total", "Watcher callback invocations"),
		tasks:         desc("tasks_total", "Deferred tasks executed by Tick"),
		targets:       desc("tracked_targets", "Objects and cells with at least one subscriber"),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.effectRuns
	ch <- c.triggers
	ch <- c.scheduled
	ch <- c.computedEvals
	ch <- c.watchJobs
	ch <- c.tasks
	ch <- c.targets
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.engine.Stats()
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.effectRuns, s.EffectRuns)
	counter(c.triggers, s.Triggers)
	counter(c.scheduled, s.Scheduled)
	counter(c.computedEvals, s.ComputedEvals)
	counter(c.watchJobs, s.WatchJobs)
	counter(c.tasks, s.Tasks)
	ch <- prometheus.MustNewConstMetric(c.targets, prometheus.GaugeValue, float64(s.Targets))
}
