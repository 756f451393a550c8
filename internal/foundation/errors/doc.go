// Package errors provides foundational, type-safe error primitives used across docnav.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, docs, output, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior hint for long-running callers such as watch mode
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryFileSystem, "read markdown file").
//		Fatal().
//		WithContext("path", p).
//		Build()
package errors
