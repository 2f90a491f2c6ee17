package category

import (
	"fmt"

	"lcms/internal/catalog"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/cli/prompt"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

var removeForce bool

// categoryRemoveCmd removes a category subtree
var categoryRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a category and its subtree",
	Long: `Remove the category at path together with every child category
and every book underneath.

On a terminal the removal is confirmed first, showing how many books
would go with it; --force skips the confirmation and is required when
no terminal is attached. The root cannot be removed.

Examples:
  lcms category remove Fiction/Sci-Fi
  lcms category remove History --force`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoryRemove,
}

func init() {
	categoryRemoveCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "remove without confirmation")
}

func runCategoryRemove(cmd *cobra.Command, args []string) error {
	out := env.Writer()
	path := args[0]

	lib, err := env.Open()
	if err != nil {
		return err
	}

	node, err := lib.Category(path)
	if err != nil {
		return clierrors.Classify(err, "category", path)
	}
	if node.IsRoot() {
		return clierrors.RootProtected()
	}

	if !removeForce {
		if !env.Interactive() {
			return clierrors.New(clierrors.CodeValidation, "confirmation required").
				WithDetails("removal needs --force when no terminal is attached").
				WithSuggestions(fmt.Sprintf("lcms category remove %q --force", path))
		}
		descendants := -1
		node.Walk(func(*catalog.Node) bool {
			descendants++
			return true
		})
		ok, err := prompt.Confirm(
			fmt.Sprintf("Remove %s?", node.Path()),
			describeSubtree(node.TotalBooks(), descendants),
		)
		if err != nil {
			return err
		}
		if !ok {
			out.Info("removal cancelled")
			return nil
		}
	}

	removed, err := lib.RemoveCategory(path)
	if err != nil {
		return clierrors.Classify(err, "category", path)
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionDelete, path, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "category",
		"books_removed": removed,
	})
	env.Log().Debug("category removed", "path", path, "books_removed", removed)

	if out.Format() == output.FormatQuiet {
		return out.Write(path)
	}
	out.Success(fmt.Sprintf("removed %s (%d %s)", path, removed, plural(removed, "book")))
	return nil
}

func describeSubtree(books, children int) string {
	switch {
	case books == 0 && children == 0:
		return "The category is empty."
	case children == 0:
		return fmt.Sprintf("%d %s will be removed.", books, plural(books, "book"))
	default:
		return fmt.Sprintf("%d child %s and %d %s will be removed.",
			children, plural(children, "category"), books, plural(books, "book"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	if noun == "category" {
		return "categories"
	}
	return noun + "s"
}
