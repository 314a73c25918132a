package main

import (
	"github.com/aretw0/cipherkit/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Typed lines become the input and are
transformed immediately. Lines starting with ':' are commands (:method hex,
:mode, :shift 5, :history, :restore <id>, :load <file>, :quit).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, debug := globalFlags(cmd)
		jsonMode, _ := cmd.Flags().GetBool("json")
		sessionID, _ := cmd.Flags().GetString("session")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.Execute(cli.RunOptions{
			ConfigPath: configPath,
			Debug:      debug,
			JSON:       jsonMode,
			SessionID:  sessionID,
			NoBanner:   noBanner,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().String("session", "", "Name of the initial session (default: generated)")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")

	// 'run' is the default if no command is provided
	rootCmd.RunE = runCmd.RunE
}
