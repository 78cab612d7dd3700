// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizconv/internal/convert"
	"github.com/pdiddy/quizconv/internal/store"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a quiz sheet to a JSON or YAML document",
	Long: `Convert validates the input sheet, transforms its cells, and writes the
document to output. The output file is written only when the whole run
succeeds; a field-count mismatch reports the line, the expected and actual
field counts, and the row content, and writes nothing.

The image directory is created if missing. No image files are generated.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := converterConfig(viper.GetViper())
	if err != nil {
		return err
	}

	res, err := convert.New(cfg, logger).Convert(args[0], args[1])
	if err != nil {
		return report(err)
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		dumper.Fdump(os.Stderr, res.Table)
	}

	if dbPath, _ := cmd.Flags().GetString("sqlite"); dbPath != "" {
		if err := exportSQLite(context.Background(), dbPath, res); err != nil {
			return err
		}
		logger.Info("exported %d rows to %s", res.Rows, dbPath)
	}

	if res.HasWarnings() {
		logger.Warn("%d image placeholder(s) left unresolved", len(res.Warnings))
	}
	return nil
}

func exportSQLite(ctx context.Context, path string, res *convert.Result) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Export(ctx, store.Conversion{
		RunID:    res.RunID,
		Source:   res.Input,
		Output:   res.Output,
		Rows:     res.Rows,
		Warnings: len(res.Warnings),
	}, res.Table)
}

// report logs the user-facing description of a conversion error.
func report(err error) error {
	for _, line := range convert.Describe(err) {
		logger.Error("%s", line)
	}
	return &reportedError{err: err}
}

func init() {
	convertCmd.Flags().String("image-dir", "images", "directory referenced by generated image paths")
	convertCmd.Flags().String("format", "", "output format: json or yaml (default: from output extension)")
	convertCmd.Flags().String("sqlite", "", "also export the converted rows to this SQLite database")
	convertCmd.Flags().Bool("dump", false, "dump the converted table to stderr")

	_ = viper.BindPFlag("image_dir", convertCmd.Flags().Lookup("image-dir"))
	_ = viper.BindPFlag("format", convertCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(convertCmd)
}
