// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the document encoding written by convert.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ColumnNames holds the normalized header names that receive special
// handling. Every other column is passed through after null coercion.
type ColumnNames struct {
	// Date is the exam date column (e.g. "20240101").
	Date string `json:"date" yaml:"date" mapstructure:"date"`

	// QuestionNumber is the question number within one exam.
	QuestionNumber string `json:"question_number" yaml:"question_number" mapstructure:"question_number"`

	// Answer is the correct-answer column.
	Answer string `json:"answer" yaml:"answer" mapstructure:"answer"`

	// Choices is the free-text "view" column that may hold an image marker.
	Choices string `json:"choices" yaml:"choices" mapstructure:"choices"`

	// Prompt is the question text column.
	Prompt string `json:"prompt" yaml:"prompt" mapstructure:"prompt"`

	// Explanation is the answer explanation column.
	Explanation string `json:"explanation" yaml:"explanation" mapstructure:"explanation"`

	// OptionPrefix identifies multiple-choice option columns ("선택지1", "선택지2", ...).
	OptionPrefix string `json:"option_prefix" yaml:"option_prefix" mapstructure:"option_prefix"`
}

// ConverterConfig holds settings for one conversion run.
type ConverterConfig struct {
	// ImageDir is the directory referenced by synthesized image paths. It is
	// created before the output is written; no image files are produced.
	ImageDir string `json:"image_dir" yaml:"image_dir" mapstructure:"image_dir"`

	// ImageMarker is the cell value (case-insensitive, trimmed) that marks an image placeholder.
	ImageMarker string `json:"image_marker" yaml:"image_marker" mapstructure:"image_marker"`

	// Comma is the delimiter replaced inside free-text cells.
	Comma string `json:"comma" yaml:"comma" mapstructure:"comma"`

	// CommaReplacement is written in place of Comma.
	CommaReplacement string `json:"comma_replacement" yaml:"comma_replacement" mapstructure:"comma_replacement"`

	// NullTokens lists cell values treated as missing. Empty cells are always null.
	NullTokens []string `json:"null_tokens" yaml:"null_tokens" mapstructure:"null_tokens"`

	// Format selects the output encoding. Empty means infer from the output extension.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`

	Columns ColumnNames `json:"columns" yaml:"columns" mapstructure:"columns"`
}

// DefaultNullTokens are the missing-value strings recognized by the pandas CSV reader.
var DefaultNullTokens = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// DefaultColumnNames returns the header names used by the quiz bank sheets.
func DefaultColumnNames() ColumnNames {
	return ColumnNames{
		Date:           "연월일",
		QuestionNumber: "문제번호",
		Answer:         "정답",
		Choices:        "보기",
		Prompt:         "문제내용",
		Explanation:    "해설",
		OptionPrefix:   "선택지",
	}
}

// DefaultConverterConfig returns the configuration used when no config file,
// environment variable, or flag overrides a value.
func DefaultConverterConfig() ConverterConfig {
	tokens := make([]string, len(DefaultNullTokens))
	copy(tokens, DefaultNullTokens)
	return ConverterConfig{
		ImageDir:         "images",
		ImageMarker:      "image",
		Comma:            ",",
		CommaReplacement: "_",
		NullTokens:       tokens,
		Columns:          DefaultColumnNames(),
	}
}
