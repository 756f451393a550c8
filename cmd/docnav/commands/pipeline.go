package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/output"
)

// pipeline runs one build and publishes its result. It is reused across
// rebuilds in watch mode so metrics accumulate.
type pipeline struct {
	builder  *menu.Builder
	writer   *output.Writer
	format   output.Format
	stdout   io.Writer
	recorder *metrics.PrometheusRecorder
	textfile string
}

func newPipeline(cfg *config.Config, stdout io.Writer) *pipeline {
	p := &pipeline{
		builder:  menu.NewBuilder(os.DirFS(cfg.Docs.Root), cfg.MenuOptions()),
		format:   output.Format(cfg.Output.Format),
		stdout:   stdout,
		textfile: cfg.Metrics.Textfile,
	}
	if stdout == nil {
		p.writer = output.NewWriter(cfg.Output.Path, p.format)
	}
	if p.textfile != "" {
		p.recorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		p.builder.WithRecorder(p.recorder)
	}
	return p
}

func (p *pipeline) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer p.flushMetrics(ctx)

	res, err := p.builder.Build()
	if err != nil {
		return err
	}

	if p.writer != nil {
		_, err := p.writer.Write(res)
		return err
	}
	data, err := output.Render(res, p.format)
	if err != nil {
		return err
	}
	if _, err := p.stdout.Write(data); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryOutput, "write to stdout").Build()
	}
	return nil
}

// flushMetrics exports the registry. A failed export does not fail the build.
func (p *pipeline) flushMetrics(ctx context.Context) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.WriteTextfile(p.textfile); err != nil {
		ferrors.LogError(ctx, slog.Default(),
			ferrors.WrapError(err, ferrors.CategoryOutput, "write metrics textfile").
				Warning().
				WithContext("path", p.textfile).
				Build())
	}
}
