// Package category implements the lcms category subcommands.
package category

import (
	"context"

	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

// Env provides the root command's state to category subcommands. Fields
// are accessors because the root builds its state in the persistent
// pre-run hook, after commands are registered.
type Env struct {
	Context     func() context.Context
	Log         func() *logger.Logger
	Audit       func() *logger.AuditLogger
	Writer      func() *output.Writer
	Open        func() (*library.Library, error)
	Save        func(*library.Library) error
	Interactive func() bool
}

var env Env

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	Long: `Create, inspect, rename, and remove categories.

Categories nest to any depth and are addressed by slash-separated
paths like Fiction/Sci-Fi. Leading and trailing spaces around each
segment are ignored. The root category is fixed: it cannot be renamed
or removed.`,
	Aliases: []string{"cat"},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// NewCommand returns the category command with all subcommands registered
func NewCommand(e Env) *cobra.Command {
	env = e

	Cmd.AddCommand(categoryAddCmd)
	Cmd.AddCommand(categoryShowCmd)
	Cmd.AddCommand(categoryRenameCmd)
	Cmd.AddCommand(categoryRemoveCmd)

	return Cmd
}
