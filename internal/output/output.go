// Package output serializes menu build results and writes them to disk.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

// Format selects the serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Render serializes res. JSON output is indented with two spaces and ends
// with a newline; absent menus are omitted in both formats.
func Render(res *menu.Result, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "encode json").Build()
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "encode yaml").Build()
		}
		if err := enc.Close(); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "encode yaml").Build()
		}
		return buf.Bytes(), nil
	default:
		return nil, ferrors.ValidationError("unsupported output format").
			WithContext("format", string(format)).
			Build()
	}
}

// Fingerprint identifies rendered output in logs.
func Fingerprint(data []byte) string {
	return mdfp.CalculateFingerprintFromParts("", string(data))
}

// Writer writes rendered results to a single file.
type Writer struct {
	path   string
	format Format
}

// NewWriter returns a Writer targeting path.
func NewWriter(path string, format Format) *Writer {
	return &Writer{path: path, format: format}
}

// Path returns the target file.
func (w *Writer) Path() string { return w.path }

// Write renders res and replaces the target file when its content changed.
// It reports whether the file was written.
func (w *Writer) Write(res *menu.Result) (bool, error) {
	data, err := Render(res, w.format)
	if err != nil {
		return false, err
	}
	fp := Fingerprint(data)
	log := slog.With(logfields.File(w.path), logfields.Format(string(w.format)))

	existing, err := os.ReadFile(w.path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			log.Debug("Output unchanged, skipping write", logfields.Fingerprint(fp))
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, ferrors.WrapError(err, ferrors.CategoryOutput, "read existing output").
			WithContext("path", w.path).
			Build()
	}

	if err := writeAtomic(w.path, data); err != nil {
		return false, ferrors.WrapError(err, ferrors.CategoryOutput, "write output").
			Fatal().
			WithContext("path", w.path).
			Build()
	}
	log.Info("Wrote menu output", logfields.Fingerprint(fp), slog.Int("bytes", len(data)))
	return true, nil
}

// writeAtomic replaces path through a temporary file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
