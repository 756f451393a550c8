package metrics

import "time"

// OutcomeLabel enumerates build outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeEmpty   OutcomeLabel = "empty"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for menu builds.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
	AddDocuments(n int)
	SetSidebarSections(n int)
	SetNavEntries(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)               {}
func (NoopRecorder) AddDocuments(int)                           {}
func (NoopRecorder) SetSidebarSections(int)                     {}
func (NoopRecorder) SetNavEntries(int)                          {}
