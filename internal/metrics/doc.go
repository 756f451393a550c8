// Package metrics provides build metrics for docnav.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never check for nil:
//
//	builder := menu.NewBuilder(fsys, opts)             // NoopRecorder
//	builder = builder.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// docnav runs as a one-shot CLI, so the Prometheus recorder is exported
// through the node_exporter textfile collector (WriteTextfile) rather than
// an HTTP endpoint.
package metrics
