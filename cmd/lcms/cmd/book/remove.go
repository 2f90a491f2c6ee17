package book

import (
	"fmt"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/cli/prompt"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

var removeForce bool

// bookRemoveCmd removes a book from the catalog
var bookRemoveCmd = &cobra.Command{
	Use:   "remove <title>",
	Short: "Remove a book",
	Long: `Remove a book from the catalog.

On a terminal the removal is confirmed first; --force skips the
confirmation and is required when no terminal is attached.

Examples:
  lcms book remove "Dune"
  lcms book remove "Dune" --force`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runBookRemove,
}

func init() {
	bookRemoveCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "remove without confirmation")
}

func runBookRemove(cmd *cobra.Command, args []string) error {
	out := env.Writer()
	title := args[0]

	lib, err := env.Open()
	if err != nil {
		return err
	}

	entry, err := lib.FindBook(title)
	if err != nil {
		return clierrors.Classify(err, "book", title)
	}

	if !removeForce {
		if !env.Interactive() {
			return clierrors.New(clierrors.CodeValidation, "confirmation required").
				WithDetails("removal needs --force when no terminal is attached").
				WithSuggestions(fmt.Sprintf("lcms book remove %q --force", title))
		}
		where := entry.Category
		if where == "" {
			where = lib.RootName()
		}
		ok, err := prompt.Confirm(
			fmt.Sprintf("Remove %q?", entry.Book.Title),
			fmt.Sprintf("%s by %s, filed under %s.", entry.Book.Title, entry.Book.Author, where),
		)
		if err != nil {
			return err
		}
		if !ok {
			out.Info("removal cancelled")
			return nil
		}
	}

	if err := lib.RemoveBook(title); err != nil {
		return clierrors.Classify(err, "book", title)
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionDelete, entry.Book.Title, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "book",
		"category":      entry.Category,
	})
	env.Log().Debug("book removed", "title", entry.Book.Title, "category", entry.Category)

	if out.Format() == output.FormatQuiet {
		return out.Write(entry.Book.Title)
	}
	out.Success(fmt.Sprintf("removed %q", entry.Book.Title))
	return nil
}
