package main

import (
	"fmt"

	"github.com/aretw0/togglewalk"
	"github.com/aretw0/togglewalk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of togglewalk",
	Run: func(cmd *cobra.Command, args []string) {
		if tui.IsTerminal(cmd.OutOrStdout()) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "togglewalk version %s\n", togglewalk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
