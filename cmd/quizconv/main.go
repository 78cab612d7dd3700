// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quizconv CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizconv/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is created in the root command's PersistentPreRunE.
var logger = logging.Discard()

// reportedError marks an error whose details were already logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// rootCmd is the base command for the quizconv CLI.
var rootCmd = &cobra.Command{
	Use:   "quizconv",
	Short: "Convert quiz-question sheets to JSON",
	Long: `quizconv converts a quiz-question sheet (CSV or XLSX, first row = header)
into a structured JSON or YAML document.

Rows are checked against the header before anything is parsed. Column names
lose their whitespace, empty and missing values become null, commas in
question, explanation, and option text become underscores, and "image"
placeholders are rewritten to paths under the image directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, level)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file %s", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quizconv.yaml or ~/.config/quizconv/quizconv.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: error, warn, info, or debug")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not read .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quizconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quizconv"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("QUIZCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: could not read config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
