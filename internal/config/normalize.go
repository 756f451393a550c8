package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

var formatNormalizer = normalization.NewNormalizer(map[string]OutputFormat{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
})

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct {
	Warnings []string
}

// NormalizeConfig canonicalizes enumerated fields before defaults are
// applied. It mutates c in place.
func NormalizeConfig(c *Config) *NormalizationResult {
	res := &NormalizationResult{}

	if raw := c.Output.Format; raw != "" {
		f, ok := formatNormalizer.Lookup(string(raw))
		if !ok {
			// Left for Validate to reject.
			f = OutputFormat(normalization.Clean(string(raw)))
		}
		if f != raw {
			res.Warnings = append(res.Warnings, warnChanged("output.format", raw, f))
		}
		c.Output.Format = f
	}

	if raw := c.Locale; raw != "" {
		l := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
		if l != raw {
			res.Warnings = append(res.Warnings, warnChanged("locale", raw, l))
		}
		c.Locale = l
	}

	c.Docs.Root = strings.TrimSpace(c.Docs.Root)
	c.Docs.IndexFile = strings.TrimSpace(c.Docs.IndexFile)
	return res
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
