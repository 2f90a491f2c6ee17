package configcmd

import (
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/config"

	"github.com/spf13/cobra"
)

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the configuration values in effect, after defaults,
config file, environment, and flags are merged.

Examples:
  lcms config show
  lcms config show -o yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := env.Writer()

	cfg := env.Config()
	if cfg == nil {
		var err error
		cfg, err = config.Load(env.ConfigFile())
		if err != nil {
			return clierrors.ConfigInvalid(env.ConfigFile(), err)
		}
	}

	// The table format has nothing sensible for nested config; YAML
	// reads like the config file itself.
	if out.Format() == output.FormatTable {
		return output.NewWriter(output.FormatYAML).Write(cfg)
	}
	return out.Write(cfg)
}
