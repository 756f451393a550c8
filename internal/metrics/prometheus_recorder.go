package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	stageDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	buildOutcome    *prom.CounterVec
	documents       prom.Counter
	sidebarSections prom.Gauge
	navEntries      prom.Gauge
}

// NewPrometheusRecorder constructs and registers docnav metrics on reg. A nil
// reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docnav",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docnav",
			Name:      "build_duration_seconds",
			Help:      "Total menu build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docnav",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		documents: prom.NewCounter(prom.CounterOpts{
			Namespace: "docnav",
			Name:      "documents_parsed_total",
			Help:      "Markdown documents read for title extraction",
		}),
		sidebarSections: prom.NewGauge(prom.GaugeOpts{
			Namespace: "docnav",
			Name:      "sidebar_sections",
			Help:      "Sidebar sections produced by the last build",
		}),
		navEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: "docnav",
			Name:      "nav_entries",
			Help:      "Top navigation entries produced by the last build",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.buildOutcome, pr.documents, pr.sidebarSections, pr.navEntries)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome OutcomeLabel) {
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddDocuments(n int) {
	p.documents.Add(float64(n))
}

func (p *PrometheusRecorder) SetSidebarSections(n int) {
	p.sidebarSections.Set(float64(n))
}

func (p *PrometheusRecorder) SetNavEntries(n int) {
	p.navEntries.Set(float64(n))
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// WriteTextfile writes the current metrics in the text exposition format to
// path, atomically, for the node_exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
