package configcmd

import (
	"lcms/internal/cli/output"
	"lcms/internal/config"
	"lcms/internal/storage/csvfile"

	"github.com/spf13/cobra"
)

// configPathCmd shows config and library file paths
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config and library file paths",
	Long: `Display the path of the configuration file being used and the
path of the library file it points at.

Examples:
  lcms config path
  lcms config path -o quiet`,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := env.Writer()

	cfgPath := env.ConfigFile()
	if cfgPath == "" {
		cfgPath = config.ConfigFileUsed()
	}
	if cfgPath == "" {
		cfgPath = "(none, using defaults)"
	}

	libPath := ""
	if cfg := env.Config(); cfg != nil {
		if p, err := cfg.LibraryPath(); err == nil {
			libPath = p
		}
	}

	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(cfgPath)
	case output.FormatTable:
		t := output.NewTable("File", "Path")
		t.AddRow("config", cfgPath)
		if libPath != "" {
			row := libPath
			if !csvfile.Exists(libPath) {
				row += " (not created yet)"
			}
			t.AddRow("library", row)
		}
		return out.Write(t)
	default:
		return out.Write(map[string]string{
			"config":  cfgPath,
			"library": libPath,
		})
	}
}
