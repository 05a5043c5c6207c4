// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/workload-service/internal/version"
	"github.com/canonical/workload-service/pkg/status"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get the application's version",
	Long:  `Get the application's version, with --remote the version of the server at --http-endpoint`,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, _ := cmd.Flags().GetBool("remote")
		if !remote {
			fmt.Fprintf(cmd.OutOrStdout(), "App Version: %s\n", version.Version)
			return nil
		}

		info := new(status.BuildInfo)
		if err := getClient().get(cmd.Context(), "/api/v0/version", nil, info); err != nil {
			return fmt.Errorf("failed to get server version: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Server Version: %s (%s)\n", info.Version, info.CommitHash)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("remote", false, "Query the running server instead of the local binary")

	rootCmd.AddCommand(versionCmd)
}
