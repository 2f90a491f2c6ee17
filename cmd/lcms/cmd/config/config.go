// Package configcmd implements the lcms config subcommands.
package configcmd

import (
	"lcms/internal/cli/output"
	"lcms/internal/config"

	"github.com/spf13/cobra"
)

// Env provides the root command's state to config subcommands.
type Env struct {
	Config     func() *config.Config
	ConfigFile func() string
	Writer     func() *output.Writer
}

var env Env

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and manage lcms configuration.

Subcommands:
  init  Generate a default configuration file
  show  Display current configuration
  path  Show config and library file paths`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// NewCommand returns the config command with all subcommands registered
func NewCommand(e Env) *cobra.Command {
	env = e

	Cmd.AddCommand(configInitCmd)
	Cmd.AddCommand(configShowCmd)
	Cmd.AddCommand(configPathCmd)

	return Cmd
}
