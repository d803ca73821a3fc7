// Package metrics records Prometheus metrics for organize passes.
//
// desksort is a short-lived command, so collectors live in a private
// registry that is written to a node_exporter textfile at the end of a run
// instead of being scraped.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Placement outcomes.
const (
	StatusApplied = "applied"
	StatusFailed  = "failed"
	StatusPlanned = "planned"
)

// Collectors holds the desksort metrics. A nil *Collectors records nothing.
type Collectors struct {
	registry *prometheus.Registry

	IconsClassified *prometheus.CounterVec
	Placements      *prometheus.CounterVec
	Unplaced        *prometheus.CounterVec
	PassDuration    *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collectors{
		registry: reg,
		IconsClassified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desksort_icons_classified_total",
				Help: "Total number of icons classified, by category",
			},
			[]string{"category"},
		),
		Placements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desksort_placements_total",
				Help: "Total number of placement commands, by bucket and outcome",
			},
			[]string{"bucket", "status"},
		),
		Unplaced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desksort_unplaced_icons_total",
				Help: "Total number of icons that found no room on screen",
			},
			[]string{"bucket"},
		),
		PassDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desksort_pass_duration_seconds",
				Help:    "Duration of organize passes",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"mode"},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (c *Collectors) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordClassification counts one classified icon.
func (c *Collectors) RecordClassification(cat types.Category) {
	if c == nil {
		return
	}
	c.IconsClassified.WithLabelValues(string(cat)).Inc()
}

// RecordPlacement counts one placement command with its outcome.
func (c *Collectors) RecordPlacement(bucket types.Bucket, status string) {
	if c == nil {
		return
	}
	c.Placements.WithLabelValues(bucket.String(), status).Inc()
}

// RecordUnplaced adds n icons of bucket that were left where they were.
func (c *Collectors) RecordUnplaced(bucket types.Bucket, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.Unplaced.WithLabelValues(bucket.String()).Add(float64(n))
}

// RecordPass observes the duration of a pass; mode is "plan" or "run".
func (c *Collectors) RecordPass(mode string, d time.Duration) {
	if c == nil {
		return
	}
	c.PassDuration.WithLabelValues(mode).Observe(d.Seconds())
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// replacing the file atomically.
func (c *Collectors) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

// Timer measures the duration of a pass.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the time elapsed since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
