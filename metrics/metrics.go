/*
File    : libretto/metrics/metrics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package metrics exposes the Prometheus instruments a host process can
// register for a running Libretto runtime, grounded in
// holomush-holomush/internal/command/ratelimit.go's
// NewRateLimiterWithRegistry nil-safe registration pattern.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds a set of optional Prometheus instruments. A nil *Recorder
// (or one built with a nil Registerer) records nothing; every method is
// nil-safe so callers don't have to guard each call site.
type Recorder struct {
	compileTotal       *prometheus.CounterVec
	compileErrorsTotal prometheus.Counter
	evaluateDuration   prometheus.Histogram
	scopeDepth         prometheus.Gauge
}

// NewRecorder builds a Recorder and registers its instruments with reg. If
// reg is nil, NewRecorder returns nil and every Recorder method becomes a
// no-op through the nil receiver guards below.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return nil
	}

	r := &Recorder{
		compileTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "libretto_compile_total",
			Help: "Total number of Compile invocations, labeled by result.",
		}, []string{"result"}),
		compileErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "libretto_compile_errors_total",
			Help: "Total number of compile errors recorded across all Compile invocations.",
		}),
		evaluateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "libretto_evaluate_duration_seconds",
			Help:    "Duration of Evaluate invocations.",
			Buckets: prometheus.DefBuckets,
		}),
		scopeDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "libretto_scope_depth",
			Help: "Current runtime scope stack depth, sampled on push/pop.",
		}),
	}

	reg.MustRegister(r.compileTotal, r.compileErrorsTotal, r.evaluateDuration, r.scopeDepth)
	return r
}

// ObserveCompile records one Compile invocation's outcome and error count.
func (r *Recorder) ObserveCompile(errCount int) {
	if r == nil {
		return
	}
	if errCount > 0 {
		r.compileTotal.WithLabelValues("error").Inc()
	} else {
		r.compileTotal.WithLabelValues("ok").Inc()
	}
	r.compileErrorsTotal.Add(float64(errCount))
}

// ObserveEvaluateDuration records how long a single Evaluate call took.
func (r *Recorder) ObserveEvaluateDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.evaluateDuration.Observe(d.Seconds())
}

// ObserveScopeDepth samples the current runtime scope depth.
func (r *Recorder) ObserveScopeDepth(depth int) {
	if r == nil {
		return
	}
	r.scopeDepth.Set(float64(depth))
}
