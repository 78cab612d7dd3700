// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// SchemaError reports a data row whose field count differs from the header.
type SchemaError struct {
	// Line is the 1-based line number, counting the header as line 1.
	Line     int
	Expected int
	Actual   int
	// Content is the row's parsed fields re-joined with commas.
	Content string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Expected, e.Actual)
}

// DuplicateColumnError reports two header fields that normalize to the same name.
type DuplicateColumnError struct {
	Name string
	// First and Second are 1-based header positions.
	First  int
	Second int
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("columns %d and %d both normalize to %q", e.First, e.Second, e.Name)
}

// TransformError wraps any other failure during load, transform, or write.
type TransformError struct {
	// Stage names the step that failed ("load", "image directory", "write").
	Stage string
	Err   error
	// Prior is a non-fatal field-count irregularity noticed earlier in the
	// same run, reported as likely context.
	Prior *SchemaError
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Describe turns a conversion error into the console lines shown to the user.
func Describe(err error) []string {
	var (
		schemaErr    *SchemaError
		dupErr       *DuplicateColumnError
		transformErr *TransformError
	)
	switch {
	case errors.Is(err, ErrInputNotFound):
		return []string{err.Error()}
	case errors.As(err, &schemaErr):
		return []string{
			fmt.Sprintf("field count mismatch on line %d", schemaErr.Line),
			fmt.Sprintf("expected %d fields, got %d", schemaErr.Expected, schemaErr.Actual),
			fmt.Sprintf("row content (parsed): '%s'", schemaErr.Content),
		}
	case errors.As(err, &dupErr):
		return []string{
			fmt.Sprintf("duplicate column: %v", dupErr),
			"column names must be unique after whitespace is removed",
		}
	case errors.As(err, &transformErr):
		lines := []string{fmt.Sprintf("conversion failed during %s: %v", transformErr.Stage, transformErr.Err)}
		if p := transformErr.Prior; p != nil {
			lines = append(lines,
				fmt.Sprintf("previously noted problem line: %d (%d of %d fields)", p.Line, p.Actual, p.Expected),
				fmt.Sprintf("previously noted line content: '%s'", p.Content),
			)
		}
		return append(lines,
			"the CSV structure or encoding may be malformed",
			`fields containing a comma must be wrapped in double quotes`,
		)
	}
	return []string{err.Error()}
}
