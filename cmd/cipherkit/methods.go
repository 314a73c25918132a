package main

import (
	"fmt"

	"github.com/aretw0/cipherkit/pkg/runner"
	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the supported methods",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), runner.PlainFormatter{}.Methods(runner.ListMethods()))
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
