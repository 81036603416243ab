// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orafly/orafly/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version number of orafly",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "orafly v%s@%s %s %s\n",
			version.Version(), version.GetGitCommit(), version.Platform(), version.GetBuildDate())
	},
}
