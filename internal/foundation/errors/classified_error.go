package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ClassifiedError is an error carrying a category, a severity, a retry hint
// and context. It wraps its cause.
type ClassifiedError struct {
	category ErrorCategory
	severity ErrorSeverity
	retry    RetryStrategy
	message  string
	cause    error
	context  ErrorContext
}

// Error renders "message (key=value, ...): cause".
func (e *ClassifiedError) Error() string {
	var b strings.Builder
	b.WriteString(e.message)
	if keys := e.context.Keys(); len(keys) > 0 {
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.context[k])
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Detail prefixes Error with the classification, for verbose output.
func (e *ClassifiedError) Detail() string {
	return fmt.Sprintf("[%s/%s retry=%s] %s", e.category, e.severity, e.retry, e.Error())
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

func (e *ClassifiedError) Category() ErrorCategory      { return e.category }
func (e *ClassifiedError) Severity() ErrorSeverity      { return e.severity }
func (e *ClassifiedError) RetryStrategy() RetryStrategy { return e.retry }
func (e *ClassifiedError) Message() string              { return e.message }
func (e *ClassifiedError) Context() ErrorContext        { return e.context }

// WithContext returns a copy of e with key=value added to its context.
func (e *ClassifiedError) WithContext(key string, value any) *ClassifiedError {
	cp := *e
	cp.context = e.context.with(key, value)
	return &cp
}

// CanRetry reports whether an automatic retry may succeed.
func (e *ClassifiedError) CanRetry() bool {
	return e.retry.Retryable()
}

// AsClassified finds the first ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}

// HasCategory reports whether the classified error in err's chain belongs to category.
func HasCategory(err error, category ErrorCategory) bool {
	classified, ok := AsClassified(err)
	return ok && classified.category == category
}

// GetRetryStrategy returns the retry hint of err, or RetryNever for
// unclassified errors.
func GetRetryStrategy(err error) RetryStrategy {
	if classified, ok := AsClassified(err); ok {
		return classified.retry
	}
	return RetryNever
}
