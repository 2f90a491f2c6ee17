package book

import (
	"errors"
	"fmt"
	"strings"

	"lcms/internal/catalog"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

var (
	addTitle    string
	addAuthor   string
	addISBN     string
	addYear     int
	addCategory string
)

// bookAddCmd adds a book to a category
var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	Long: `Add a book to a category, creating the category if needed.

With --title, the book is added directly from flags. Without it, on a
terminal, an interactive form prompts for each field.

Examples:
  lcms book add -t "Dune" -a "Frank Herbert" -y 1965 -c Fiction/Sci-Fi
  lcms book add --title "Dune" --author "Frank Herbert" --year 1965 \
    --isbn 9780441172719 --category Fiction/Sci-Fi
  lcms book add`,
	Args: cobra.NoArgs,
	RunE: runBookAdd,
}

func init() {
	bookAddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "book title")
	bookAddCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "author")
	bookAddCmd.Flags().StringVarP(&addISBN, "isbn", "i", "", "ISBN (optional)")
	bookAddCmd.Flags().IntVarP(&addYear, "year", "y", 0, "publication year")
	bookAddCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category path, e.g. Fiction/Sci-Fi")
}

func runBookAdd(cmd *cobra.Command, args []string) error {
	out := env.Writer()

	v := formValues{
		Title:    addTitle,
		Author:   addAuthor,
		ISBN:     addISBN,
		Year:     addYear,
		Category: addCategory,
	}

	if !cmd.Flags().Changed("title") {
		if !env.Interactive() {
			return clierrors.New(clierrors.CodeValidation, "missing book fields").
				WithDetails("--title, --author, --year, and --category are required when no terminal is attached").
				WithSuggestions(`lcms book add -t "Dune" -a "Frank Herbert" -y 1965 -c Fiction/Sci-Fi`)
		}
		if err := runBookForm(&v, true); err != nil {
			return err
		}
	}

	lib, err := env.Open()
	if err != nil {
		return err
	}

	b := catalog.NewBook(strings.TrimSpace(v.Title), strings.TrimSpace(v.Author), strings.TrimSpace(v.ISBN), v.Year)
	path, err := lib.AddBook(v.Category, b)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPath) {
			return clierrors.InvalidPath(v.Category)
		}
		return clierrors.Classify(err, "book", b.Title)
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionCreate, b.Title, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "book",
		"category":      path,
	})
	env.Log().Debug("book added", "title", b.Title, "category", path)

	if out.Format() == output.FormatQuiet {
		return out.Write(b.Title)
	}
	out.Success(fmt.Sprintf("added %q to %s", b.Title, path))
	return nil
}
