package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnum string

const (
	testEnumAlpha testEnum = "alpha"
	testEnumBeta  testEnum = "beta"
)

func newTestNormalizer() *Normalizer[testEnum] {
	return NewNormalizer(map[string]testEnum{
		"alpha": testEnumAlpha,
		"Beta":  testEnumBeta,
		"b":     testEnumBeta,
	})
}

func TestNormalizerLookup(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		input string
		want  testEnum
		ok    bool
	}{
		{"alpha", testEnumAlpha, true},
		{"ALPHA", testEnumAlpha, true},
		{"  beta  ", testEnumBeta, true},
		{"B", testEnumBeta, true},
		{"gamma", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := n.Lookup(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizerWithError(t *testing.T) {
	n := newTestNormalizer()

	v, err := n.NormalizeWithError("kind", " Alpha")
	require.NoError(t, err)
	require.Equal(t, testEnumAlpha, v)

	_, err = n.NormalizeWithError("kind", "gamma")
	require.EqualError(t, err, `invalid kind "gamma", valid options: alpha, b, beta`)
}

func TestValidKeysIsCopy(t *testing.T) {
	n := newTestNormalizer()
	keys := n.ValidKeys()
	require.Equal(t, []string{"alpha", "b", "beta"}, keys)
	keys[0] = "changed"
	require.Equal(t, "alpha", n.ValidKeys()[0])
}
