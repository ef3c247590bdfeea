// Package metrics records benchmark run observations.
package metrics

import "time"

// Outcome labels a finished run.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Recorder receives timing and table observations from a driver run.
type Recorder interface {
	ObservePhase(order, phase string, d time.Duration)
	SetBuckets(order string, n int)
	IncRun(outcome Outcome)
}

// NoopRecorder is the default when metrics are not configured.
type NoopRecorder struct{}

func (NoopRecorder) ObservePhase(string, string, time.Duration) {}
func (NoopRecorder) SetBuckets(string, int)                     {}
func (NoopRecorder) IncRun(Outcome)                             {}
