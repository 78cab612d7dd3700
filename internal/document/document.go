// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document serializes a converted table. Each row becomes one
// object whose keys follow the table's column order; null cells are written
// as an explicit null.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/quizconv/pkg/types"
)

// ResolveFormat returns f when set, otherwise the format implied by the
// output path's extension (.yaml and .yml mean YAML, anything else JSON).
func ResolveFormat(f types.OutputFormat, path string) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(string(f))) {
	case types.FormatJSON:
		return types.FormatJSON, nil
	case types.FormatYAML, "yml":
		return types.FormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported format %q: use json or yaml", f)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	}
	return types.FormatJSON, nil
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, t *types.Table, f types.OutputFormat) error {
	switch f {
	case types.FormatJSON:
		return EncodeJSON(w, t)
	case types.FormatYAML:
		return EncodeYAML(w, t)
	}
	return fmt.Errorf("unsupported format %q: use json or yaml", f)
}

// WriteFile encodes t into a temporary file next to path and renames it
// over path once encoding succeeded. On any error path is left untouched.
func WriteFile(path string, t *types.Table, f types.OutputFormat) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, t, f); err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
