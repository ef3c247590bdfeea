package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	phaseDuration *prom.HistogramVec
	buckets       *prom.GaugeVec
	runs          *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		phaseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "schash",
			Name:      "phase_duration_seconds",
			Help:      "Duration of a timed batch of table operations",
			Buckets:   prom.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"order", "phase"}),
		buckets: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "schash",
			Name:      "table_buckets",
			Help:      "Bucket count of the table after the insert phase",
		}, []string{"order"}),
		runs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "schash",
			Name:      "runs_total",
			Help:      "Benchmark runs by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.phaseDuration, pr.buckets, pr.runs)
	return pr
}

func (p *PrometheusRecorder) ObservePhase(order, phase string, d time.Duration) {
	p.phaseDuration.WithLabelValues(order, phase).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetBuckets(order string, n int) {
	p.buckets.WithLabelValues(order).Set(float64(n))
}

func (p *PrometheusRecorder) IncRun(outcome Outcome) {
	p.runs.WithLabelValues(string(outcome)).Inc()
}
