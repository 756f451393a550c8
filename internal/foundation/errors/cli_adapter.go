package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter turns command errors into a message on stderr, a log
// record and an exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(code int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor returns 0 for nil, the category exit code for classified
// errors and 1 otherwise.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if classified, ok := AsClassified(err); ok {
		return classified.Category().ExitCode()
	}
	return 1
}

// FormatError renders err for the terminal. Internal errors are only
// detailed in verbose mode.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	switch {
	case !ok:
		return "Error: " + err.Error()
	case a.verbose:
		return "Error: " + classified.Detail()
	case classified.Category() == CategoryInternal:
		return "Internal error occurred (use -v for details)"
	default:
		return "Error: " + classified.Error()
	}
}

// HandleError logs err, prints it and exits with the mapped code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.verbose {
		LogError(context.Background(), a.logger, err)
	}
	fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

// LogError writes err to logger at the level of its severity, with its
// category, retry strategy and context as attributes.
func LogError(ctx context.Context, logger *slog.Logger, err error, attrs ...slog.Attr) {
	classified, ok := AsClassified(err)
	if !ok {
		logger.LogAttrs(ctx, slog.LevelError, "Unclassified error", append(attrs, slog.Any("error", err))...)
		return
	}
	attrs = append(attrs,
		slog.String("category", string(classified.Category())),
		slog.String("retry", string(classified.RetryStrategy())),
	)
	for _, k := range classified.Context().Keys() {
		attrs = append(attrs, slog.Any(k, classified.Context()[k]))
	}
	if cause := classified.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	logger.LogAttrs(ctx, levelFor(classified.Severity()), classified.Message(), attrs...)
}

func levelFor(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
