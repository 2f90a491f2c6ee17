package configcmd

import (
	"fmt"
	"os"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/config"

	"github.com/spf13/cobra"
)

var (
	configInitForce  bool
	configInitFormat string
)

// configInitCmd generates default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration",
	Long: `Generate a default configuration file in the user config directory.

If a configuration file already exists, this will not overwrite it
unless --force is specified.

Examples:
  lcms config init
  lcms config init --format toml
  lcms config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite existing configuration")
	configInitCmd.Flags().StringVar(&configInitFormat, "format", "yaml", "config file format (yaml, toml, json)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := env.Writer()

	existingPath := config.ConfigFileUsed()
	if existingPath != "" && !configInitForce {
		return clierrors.New(clierrors.CodeValidation, "config file already exists").
			WithDetails(existingPath).
			WithSuggestions("lcms config init --force")
	}

	if configInitForce && existingPath != "" {
		if err := os.Remove(existingPath); err != nil {
			return clierrors.IO("remove config", existingPath, err)
		}
	}

	path, _, err := config.GenerateConfigIfNotExists(configInitFormat)
	if err != nil {
		return clierrors.IO("write config", path, err)
	}

	out.Success(fmt.Sprintf("configuration initialized at %s", path))
	return nil
}
