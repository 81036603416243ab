// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/orafly/orafly/internal/export"
	"github.com/orafly/orafly/internal/selection"
)

var versionedFileName string

var versionedCmd = &cobra.Command{
	Use:   "versioned [file]",
	Short: "Export a SQL selection as a versioned migration",
	Long: `Export SQL text as a Flyway versioned migration named
V<timestamp>__<name>.sql. The text is read from the given file, or from
standard input when no file is named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVersioned,
}

func init() {
	versionedCmd.Flags().StringVar(&versionedFileName, "name", "", "Base name of the migration file")
}

func runVersioned(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	env := &hostEnv{
		text:     text,
		source:   noSource,
		cursor:   selection.NewCursor(nil),
		fileName: versionedFileName,
		folder:   cfg.ExportFolder,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
	}
	host, err := env.newHost()
	if err != nil {
		return err
	}

	exporter := export.New(host, cfg, logger, clockwork.NewRealClock())
	return exporter.ExportVersioned(host.GetSelectedText(), host.SaveFileDialog)
}

// readInput returns the contents of the named file, or of standard input
// when no file is named.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
