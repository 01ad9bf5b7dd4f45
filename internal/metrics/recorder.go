// Package metrics records hook runs on a private Prometheus registry that
// can be exported for the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "heckler"
	subsystem = "report"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Recorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	kept        prometheus.Counter
	dropped     prometheus.Counter
	lastSuccess prometheus.Gauge
	now         func() time.Time
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	r := &Recorder{
		registry: registry,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Report hook invocations by result.",
		}, []string{"result"}),
		kept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resources_kept_total",
			Help:      "Resource statuses kept in written reports.",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resources_dropped_total",
			Help:      "Resource statuses dropped from written reports.",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last report written successfully.",
		}),
		now: time.Now,
	}

	// Both series exist from the start so rate() works on the first failure.
	r.runs.WithLabelValues(ResultSuccess)
	r.runs.WithLabelValues(ResultFailure)
	return r
}

func (r *Recorder) RecordSuccess(kept int, dropped int) {
	r.runs.WithLabelValues(ResultSuccess).Inc()
	r.kept.Add(float64(kept))
	r.dropped.Add(float64(dropped))
	r.lastSuccess.Set(float64(r.now().Unix()))
}

func (r *Recorder) RecordFailure() {
	r.runs.WithLabelValues(ResultFailure).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the registry in text exposition format. The write
// goes through a temporary file and a rename.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
