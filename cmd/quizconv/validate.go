// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizconv/internal/convert"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Check a quiz sheet without writing any file",
	Long: `Validate runs the same checks and transforms as convert but writes
nothing: no output document and no image directory. Unresolved image
placeholders are listed as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := converterConfig(viper.GetViper())
		if err != nil {
			return err
		}
		res, err := convert.New(cfg, logger).Validate(args[0])
		if err != nil {
			return report(err)
		}
		fmt.Printf("%s: %d rows, %d columns, %d image paths, %d warnings\n",
			args[0], res.Rows, len(res.Columns), res.ImagePaths, len(res.Warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
