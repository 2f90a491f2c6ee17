package category

import (
	"errors"
	"fmt"

	"lcms/internal/catalog"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

// categoryAddCmd creates a category path
var categoryAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Create a category",
	Long: `Create a category, including any missing parent segments.

Existing segments are reused, so adding a path twice is harmless.

Examples:
  lcms category add Fiction/Sci-Fi
  lcms category add "History/Ancient Rome"`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryAdd,
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	out := env.Writer()
	path := args[0]

	lib, err := env.Open()
	if err != nil {
		return err
	}

	existed := false
	if _, err := lib.Category(path); err == nil {
		existed = true
	}

	norm, err := lib.EnsureCategory(path)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPath) {
			return clierrors.InvalidPath(path)
		}
		return clierrors.Classify(err, "category", path)
	}

	if existed {
		out.Info(fmt.Sprintf("category %s already exists", norm))
		return nil
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionCreate, norm, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "category",
	})
	env.Log().Debug("category created", "path", norm)

	if out.Format() == output.FormatQuiet {
		return out.Write(norm)
	}
	out.Success(fmt.Sprintf("created %s", norm))

	// The library file holds book rows only, so a category with no
	// books in its subtree is not written to disk yet.
	if node, err := lib.Category(norm); err == nil && node.TotalBooks() == 0 {
		out.Info("the category persists once a book is filed under it")
	}
	return nil
}
