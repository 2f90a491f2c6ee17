package cmd

import (
	"lcms/internal/cli/output"
	"lcms/internal/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build time of lcms.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := newWriter()

		switch out.Format() {
		case output.FormatJSON, output.FormatYAML:
			return out.Write(info)
		case output.FormatQuiet:
			return out.Write(info.Version)
		default:
			out.Printf("lcms %s\n", info.String())
			if IsVerbose() {
				out.Println(info.Full())
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
