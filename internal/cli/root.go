// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orafly/orafly/internal/config"
	oralog "github.com/orafly/orafly/internal/log"
)

var (
	configFile string
	debug      bool
	logStdout  bool
	folderFlag string
	millisFlag bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "orafly",
	Short: "Export Oracle schema objects as Flyway migrations",
	Long: `orafly turns Oracle schema objects and SQL selections into Flyway
migration files: repeatable migrations named after the object and
versioned migrations stamped with the current time.

Use "orafly [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup loads the configuration, applies flag overrides and builds the
// logger every command except version runs with.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if cmd.Flags().Changed("folder") {
		cfg.ExportFolder = folderFlag
	}
	if cmd.Flags().Changed("millis") {
		cfg.MillisecondPrecision = millisFlag
	}
	if debug {
		cfg.Debug = true
	}
	if logStdout {
		cfg.LogStdout = true
	}

	logDir := cfg.LogDir
	if logDir == "" {
		logDir = oralog.DefaultDir()
	}
	logger, err = oralog.NewLogger(logDir, "orafly", cfg.Debug, cfg.LogStdout)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "orafly.yaml", "Path to YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logStdout, "log-stdout", false, "Log to stdout instead of the log file")
	rootCmd.PersistentFlags().StringVar(&folderFlag, "folder", "", "Folder migration files are written to")
	rootCmd.PersistentFlags().BoolVar(&millisFlag, "millis", false, "Millisecond precision in versioned migration names")

	rootCmd.AddCommand(repeatableCmd)
	rootCmd.AddCommand(versionedCmd)
	rootCmd.AddCommand(wikitableCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
