// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a quiz-question sheet into a structured document.
//
// A run validates field counts against the header before touching any
// value, then normalizes column names, maps missing values to null,
// replaces commas in free-text columns, and rewrites image placeholders to
// paths under the configured image directory. The output file is written
// only when every step succeeded.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pdiddy/quizconv/internal/document"
	"github.com/pdiddy/quizconv/internal/logging"
	"github.com/pdiddy/quizconv/internal/tabular"
	"github.com/pdiddy/quizconv/pkg/types"
)

// Result describes a finished (or dry) run.
type Result struct {
	RunID  string
	Input  string
	Output string
	Format types.OutputFormat

	Rows    int
	Columns []string

	// ImagePaths counts the placeholders rewritten to image paths.
	ImagePaths int
	Warnings   []Warning

	// Table is the transformed dataset that was serialized.
	Table *types.Table
}

// HasWarnings reports whether any placeholder was left unresolved.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Converter runs conversions with a fixed configuration.
type Converter struct {
	cfg        types.ConverterConfig
	log        *logging.Logger
	nullTokens map[string]struct{}
}

// New returns a Converter. A nil logger discards output.
func New(cfg types.ConverterConfig, log *logging.Logger) *Converter {
	if log == nil {
		log = logging.Discard()
	}
	tokens := make(map[string]struct{}, len(cfg.NullTokens))
	for _, tok := range cfg.NullTokens {
		tokens[tok] = struct{}{}
	}
	return &Converter{cfg: cfg, log: log, nullTokens: tokens}
}

// Convert reads inputPath, transforms it, and writes the document to
// outputPath. On any error outputPath is neither created nor modified.
//
// Errors are ErrInputNotFound, *SchemaError, *DuplicateColumnError, or
// *TransformError.
func (c *Converter) Convert(inputPath, outputPath string) (*Result, error) {
	res, prior, err := c.run(inputPath)
	if err != nil {
		return nil, err
	}
	format, err := document.ResolveFormat(c.cfg.Format, outputPath)
	if err != nil {
		return nil, &TransformError{Stage: "write", Err: err, Prior: prior}
	}
	res.Output = outputPath
	res.Format = format

	if err := os.MkdirAll(c.cfg.ImageDir, 0o755); err != nil {
		return nil, &TransformError{Stage: "image directory", Err: err, Prior: prior}
	}
	if err := document.WriteFile(outputPath, res.Table, format); err != nil {
		return nil, &TransformError{Stage: "write", Err: err, Prior: prior}
	}

	c.log.Info("converted %s to %s (%d rows, %d image paths, %d warnings)",
		inputPath, outputPath, res.Rows, res.ImagePaths, len(res.Warnings))
	c.log.Info("image paths are relative to %s/", c.cfg.ImageDir)
	return res, nil
}

// Validate runs every step of Convert except writing files, so a sheet can
// be checked before it is converted.
func (c *Converter) Validate(inputPath string) (*Result, error) {
	res, _, err := c.run(inputPath)
	if err != nil {
		return nil, err
	}
	c.log.Info("%s is valid (%d rows, %d columns, %d warnings)",
		inputPath, res.Rows, len(res.Columns), len(res.Warnings))
	return res, nil
}

func (c *Converter) run(inputPath string) (*Result, *SchemaError, error) {
	sheet, err := tabular.Load(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, nil, &TransformError{Stage: "load", Err: err}
	}
	c.log.Debug("loaded %s: %d columns, %d records", inputPath, len(sheet.Header), len(sheet.Records))

	if err := validateFieldCounts(sheet); err != nil {
		return nil, nil, err
	}
	prior := priorIssue(sheet)
	if prior != nil {
		c.log.Debug("%d short spreadsheet rows padded, first at line %d", len(sheet.Padded), prior.Line)
	}

	table, err := c.buildTable(sheet)
	if err != nil {
		return nil, prior, err
	}

	res := &Result{
		RunID:   c.log.RunID(),
		Input:   inputPath,
		Rows:    len(table.Rows),
		Columns: table.Columns,
		Table:   table,
	}
	c.transform(table, res)
	return res, prior, nil
}
