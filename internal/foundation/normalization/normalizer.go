// Package normalization maps user supplied strings onto enumerated values.
package normalization

import (
	"fmt"
	"slices"
	"strings"
)

// Normalizer maps case and whitespace insensitive spellings to enum values.
type Normalizer[T comparable] struct {
	values map[string]T
	keys   []string
}

// NewNormalizer creates a normalizer from spelling->value pairs. Several
// spellings may map to the same value.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		key := Clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	slices.Sort(n.keys)
	return n
}

// Lookup returns the value spelled by raw.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[Clean(raw)]
	return v, ok
}

// NormalizeWithError is Lookup with an error naming the accepted spellings.
func (n *Normalizer[T]) NormalizeWithError(field, raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %s", field, raw, strings.Join(n.keys, ", "))
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.keys)
}

// Clean lower-cases and trims s.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
