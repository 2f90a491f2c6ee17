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

// categoryRenameCmd relabels a category
var categoryRenameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a category",
	Long: `Rename the category at path. Its children and books stay put.

The new name is a single segment, so it must not contain a slash. A
sibling with the same name blocks the rename, and the root cannot be
renamed.

Examples:
  lcms category rename Fiction/Sci-Fi "Science Fiction"
  lcms category rename History Antiquity`,
	Args: cobra.ExactArgs(2),
	RunE: runCategoryRename,
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	out := env.Writer()
	path, newName := args[0], args[1]

	lib, err := env.Open()
	if err != nil {
		return err
	}

	if err := lib.RenameCategory(path, newName); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidPath):
			return clierrors.InvalidPath(newName).
				WithDetails("the new name must be a single non-empty segment without '/'")
		case errors.Is(err, catalog.ErrCategoryExists):
			return clierrors.New(clierrors.CodeDuplicate, fmt.Sprintf("a sibling named %q already exists", newName)).
				WithSuggestions("pick a different name", "merge by moving books instead")
		default:
			return clierrors.Classify(err, "category", path)
		}
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionUpdate, path, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "category",
		"new_name":      newName,
	})
	env.Log().Debug("category renamed", "path", path, "new_name", newName)

	if out.Format() == output.FormatQuiet {
		return out.Write(newName)
	}
	out.Success(fmt.Sprintf("renamed %s to %q", path, newName))
	return nil
}
