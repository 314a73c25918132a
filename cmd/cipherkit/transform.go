package main

import (
	"github.com/aretw0/cipherkit/internal/cli"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/spf13/cobra"
)

func newTransformCmd(mode domain.Mode, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(mode) + " [text...]",
		Short: short,
		Long: `Reads text from the arguments, --file, or stdin (in that order of precedence)
and prints the ` + string(mode) + `d result. For json, encode formats and decode minifies.`,
		Example: "  cipherkit " + string(mode) + " -m base64 Hello\n  echo 'Hello' | cipherkit " + string(mode) + " -m caesar -s 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, debug := globalFlags(cmd)
			method, _ := cmd.Flags().GetString("method")
			shift, _ := cmd.Flags().GetInt("shift")
			file, _ := cmd.Flags().GetString("file")

			return cli.Transform(cli.TransformOptions{
				ConfigPath: configPath,
				Debug:      debug,
				Method:     method,
				Mode:       mode,
				Shift:      shift,
				File:       file,
				Args:       args,
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringP("method", "m", string(domain.MethodBase64), "Method: base64, url, html, caesar, binary, hex, json")
	cmd.Flags().IntP("shift", "s", domain.DefaultShift, "Caesar shift")
	cmd.Flags().StringP("file", "f", "", "Read input from a file (- for stdin)")
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newTransformCmd(domain.ModeEncode, "Encode text with the selected method"),
		newTransformCmd(domain.ModeDecode, "Decode text with the selected method"),
	)
}
