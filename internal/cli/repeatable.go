// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/orafly/orafly/internal/export"
	"github.com/orafly/orafly/internal/oracle"
	"github.com/orafly/orafly/internal/selection"
)

var repeatableVersioned bool

var repeatableCmd = &cobra.Command{
	Use:   "repeatable KIND:OWNER.NAME...",
	Short: "Export schema objects as repeatable migrations",
	Long: `Export the stored source of the named schema objects as Flyway
repeatable migrations, one R__NAME.sql file per object. Supported kinds:
function, procedure, package, type, view and trigger. Packages and types
are exported together with their bodies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRepeatable,
}

func init() {
	repeatableCmd.Flags().BoolVar(&repeatableVersioned, "versioned", false,
		"Also write each migration as a versioned copy (single object only)")
}

func runRepeatable(cmd *cobra.Command, args []string) error {
	objects, err := selection.Parse(args)
	if err != nil {
		return err
	}

	if err := cfg.ValidateOracle(); err != nil {
		return err
	}

	client, err := oracle.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("connecting to Oracle: %w", err)
	}
	defer client.Close()

	env := &hostEnv{
		source: oracle.NewSource(client, logger).ObjectSource,
		cursor: selection.NewCursor(objects),
		folder: cfg.ExportFolder,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	host, err := env.newHost()
	if err != nil {
		return err
	}

	exporter := export.New(host, cfg, logger, clockwork.NewRealClock())
	count := exporter.ExportRepeatable(host, host.SaveFolderDialog(), repeatableVersioned)
	if count < len(objects) {
		return fmt.Errorf("exported %d of %d objects", count, len(objects))
	}

	return nil
}
