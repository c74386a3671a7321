package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the rendering host and layouts.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Document metrics
	FlushesTotal  prometheus.Counter
	FlushDuration prometheus.Histogram
	ChangesTotal  prometheus.Counter
	TasksRun      prometheus.Counter
	TasksReplaced prometheus.Counter
	TasksCanceled prometheus.Counter
	TasksPending  prometheus.Gauge

	// Layout metrics
	SlotRenders  *prometheus.CounterVec
	StyleUpdates *prometheus.CounterVec

	// Snapshot for tests and debug output
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values
type Snapshot struct {
	Flushes       int64
	Changes       int64
	TasksRun      int64
	TasksReplaced int64
	TasksCanceled int64
	SlotRenders   int64
	StyleUpdates  int64
}

// NewMetrics creates collectors registered on a private registry.
// namespace prefixes every metric name, e.g. "splitlayout".
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		FlushesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_flushes_total",
				Help:      "Total number of document flushes",
			},
		),
		FlushDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "document_flush_duration_seconds",
				Help:      "Document flush duration in seconds",
				Buckets:   []float64{.00001, .0001, .0005, .001, .005, .01, .05, .1},
			},
		),
		ChangesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_changes_total",
				Help:      "Total number of tree changes flushed to clients",
			},
		),
		TasksRun: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_response_tasks_run_total",
				Help:      "Total number of before-client-response tasks executed",
			},
		),
		TasksReplaced: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_response_tasks_replaced_total",
				Help:      "Pending tasks replaced by a newer task for the same owner",
			},
		),
		TasksCanceled: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_response_tasks_canceled_total",
				Help:      "Pending tasks removed before running",
			},
		),
		TasksPending: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "client_response_tasks_pending",
				Help:      "Tasks waiting for the next flush",
			},
		),

		SlotRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layout_slot_renders_total",
				Help:      "Total number of split layout slot re-renders",
			},
			[]string{"reason"},
		),
		StyleUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layout_style_updates_total",
				Help:      "Total number of splitter style recalculations",
			},
			[]string{"orientation"},
		),
	}
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordFlush records one document flush
func (m *Metrics) RecordFlush(tasks, changes int) {
	if m == nil {
		return
	}
	m.FlushesTotal.Inc()
	m.TasksRun.Add(float64(tasks))
	m.ChangesTotal.Add(float64(changes))

	m.mu.Lock()
	m.snapshot.Flushes++
	m.snapshot.TasksRun += int64(tasks)
	m.snapshot.Changes += int64(changes)
	m.mu.Unlock()
}

// ObserveFlushDuration records how long a flush took
func (m *Metrics) ObserveFlushDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.FlushDuration.Observe(d.Seconds())
}

// IncTasksReplaced counts a pending task replaced by a newer one
func (m *Metrics) IncTasksReplaced() {
	if m == nil {
		return
	}
	m.TasksReplaced.Inc()
	m.mu.Lock()
	m.snapshot.TasksReplaced++
	m.mu.Unlock()
}

// IncTasksCanceled counts a pending task removed through its registration
func (m *Metrics) IncTasksCanceled() {
	if m == nil {
		return
	}
	m.TasksCanceled.Inc()
	m.mu.Lock()
	m.snapshot.TasksCanceled++
	m.mu.Unlock()
}

// SetPendingTasks sets the pending task gauge
func (m *Metrics) SetPendingTasks(n int) {
	if m == nil {
		return
	}
	m.TasksPending.Set(float64(n))
}

// IncSlotRenders counts a slot re-render
func (m *Metrics) IncSlotRenders(reason string) {
	if m == nil {
		return
	}
	m.SlotRenders.WithLabelValues(reason).Inc()
	m.mu.Lock()
	m.snapshot.SlotRenders++
	m.mu.Unlock()
}

// IncStyleUpdates counts a splitter style recalculation
func (m *Metrics) IncStyleUpdates(orientation string) {
	if m == nil {
		return
	}
	m.StyleUpdates.WithLabelValues(orientation).Inc()
	m.mu.Lock()
	m.snapshot.StyleUpdates++
	m.mu.Unlock()
}

// Snapshot returns the current metric values
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
