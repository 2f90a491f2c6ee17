package book

import (
	"errors"
	"fmt"

	"lcms/internal/catalog"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/query"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listFilter   string
)

// bookListCmd lists books, optionally scoped and filtered
var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books",
	Long: `List books in the whole catalog or under one category subtree.

--filter takes a CEL expression over a book map with keys title,
author, isbn, year, and category.

Examples:
  lcms book list
  lcms book list --category Fiction
  lcms book list --filter 'book.year < 1970'
  lcms book list -c Fiction --filter 'book.author.contains("Herbert")'`,
	Args: cobra.NoArgs,
	RunE: runBookList,
}

func init() {
	bookListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "restrict to a category subtree")
	bookListCmd.Flags().StringVar(&listFilter, "filter", "", "CEL filter expression")
}

func runBookList(cmd *cobra.Command, args []string) error {
	out := env.Writer()

	var filter *query.Filter
	if listFilter != "" {
		var err error
		filter, err = query.Compile(listFilter)
		if err != nil {
			return clierrors.New(clierrors.CodeValidation, "invalid filter expression").
				WithDetails(err.Error()).
				WithSuggestions(
					`lcms book list --filter 'book.year < 1970'`,
					`lcms book list --filter 'book.author.contains("Herbert")'`,
				)
		}
	}

	lib, err := env.Open()
	if err != nil {
		return err
	}

	entries, err := lib.Books(listCategory)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return clierrors.NotFound("category", listCategory)
		}
		return clierrors.Classify(err, "category", listCategory)
	}

	if filter != nil {
		kept := entries[:0:0]
		for _, e := range entries {
			if filter.Matches(e.Book, e.Category) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	if len(entries) == 0 {
		out.Info(emptyListMessage(listCategory, listFilter))
		return nil
	}
	return writeEntries(out, entries)
}

func emptyListMessage(category, filter string) string {
	switch {
	case filter != "":
		return "no books match the filter"
	case category != "":
		return fmt.Sprintf("no books under %s", category)
	default:
		return "the catalog is empty"
	}
}
