package errors

import (
	"maps"
	"slices"
)

// ErrorCategory groups errors by the subsystem that produced them. The CLI
// maps each category to an exit code.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// Documentation tree and menu build.
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDocs       ErrorCategory = "docs"
	CategoryBuild      ErrorCategory = "build"
	CategoryOutput     ErrorCategory = "output"

	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ExitCode returns the process exit status for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 4
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryFileSystem, CategoryDocs, CategoryBuild:
		return 11
	case CategoryRuntime:
		return 12
	case CategoryOutput:
		return 13
	default:
		return 1
	}
}

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // aborts the command
	SeverityError   ErrorSeverity = "error"   // fails the current build
	SeverityWarning ErrorSeverity = "warning" // build continues
	SeverityInfo    ErrorSeverity = "info"
)

// RetryStrategy tells long running callers such as watch mode whether
// repeating the operation can succeed.
type RetryStrategy string

const (
	RetryNever      RetryStrategy = "never"
	RetryImmediate  RetryStrategy = "immediate"
	RetryNextChange RetryStrategy = "change" // after the documentation tree changes
	RetryUserAction RetryStrategy = "user"   // after the user fixes configuration or input
)

// Retryable reports whether the strategy allows an automatic retry.
func (r RetryStrategy) Retryable() bool {
	return r == RetryImmediate || r == RetryNextChange
}

// ErrorContext holds key/value details such as the offending path.
type ErrorContext map[string]any

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// Keys returns the context keys in sorted order.
func (c ErrorContext) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// with returns a copy of c holding key=value.
func (c ErrorContext) with(key string, value any) ErrorContext {
	out := make(ErrorContext, len(c)+1)
	maps.Copy(out, c)
	out[key] = value
	return out
}
