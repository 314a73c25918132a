package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cipherkit",
	Short: "cipherkit encodes and decodes text with common reversible schemes",
	Long: `cipherkit transforms text through Base64, URL, HTML, Caesar, Binary,
Hexadecimal and JSON encodings, one-shot or in an interactive session that
keeps the last ten transformations for recall.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "cipherkit.yaml", "Path to the configuration file (optional)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

func globalFlags(cmd *cobra.Command) (configPath string, debug bool) {
	configPath, _ = cmd.Flags().GetString("config")
	debug, _ = cmd.Flags().GetBool("debug")
	return configPath, debug
}
