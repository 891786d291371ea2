package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tessera",
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(tessera.Version)
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			return tui.PrintBanner(cmd.OutOrStdout(), version)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "tessera version %s\n", version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner")
}
