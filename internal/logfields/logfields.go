package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID     = "build_id"
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeySection     = "section"
	KeyPath        = "path"
	KeyFile        = "file"
	KeyLink        = "link"
	KeyTitle       = "title"
	KeyCount       = "count"
	KeyFormat      = "format"
	KeyOp          = "op"
	KeyFingerprint = "fingerprint"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Op(op string) slog.Attr          { return slog.String(KeyOp, op) }
func Fingerprint(fp string) slog.Attr { return slog.String(KeyFingerprint, fp) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
