package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cipherkit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cipherkit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cipherkit version %s\n", strings.TrimSpace(cipherkit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
