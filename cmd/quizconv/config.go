// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/quizconv/pkg/types"
)

// setDefaults registers every converter key so config files, QUIZCONV_*
// environment variables, and flags can override it.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConverterConfig()
	v.SetDefault("image_dir", d.ImageDir)
	v.SetDefault("image_marker", d.ImageMarker)
	v.SetDefault("comma", d.Comma)
	v.SetDefault("comma_replacement", d.CommaReplacement)
	v.SetDefault("null_tokens", d.NullTokens)
	v.SetDefault("format", string(d.Format))
	v.SetDefault("log_level", "info")

	v.SetDefault("columns.date", d.Columns.Date)
	v.SetDefault("columns.question_number", d.Columns.QuestionNumber)
	v.SetDefault("columns.answer", d.Columns.Answer)
	v.SetDefault("columns.choices", d.Columns.Choices)
	v.SetDefault("columns.prompt", d.Columns.Prompt)
	v.SetDefault("columns.explanation", d.Columns.Explanation)
	v.SetDefault("columns.option_prefix", d.Columns.OptionPrefix)
}

// converterConfig decodes the merged configuration.
func converterConfig(v *viper.Viper) (types.ConverterConfig, error) {
	var cfg types.ConverterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}
