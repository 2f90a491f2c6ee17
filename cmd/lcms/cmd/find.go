package cmd

import (
	"strconv"

	"lcms/cmd/lcms/cmd/book"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/query"

	"github.com/spf13/cobra"
)

var findFilter string

// findCmd searches the catalog
var findCmd = &cobra.Command{
	Use:   "find [keyword]",
	Short: "Search the catalog",
	Long: `Search categories and books by keyword, or books by a CEL filter.

The keyword is a case-insensitive substring matched against category
names and book titles, authors, and ISBNs. --filter takes a CEL
expression over a book map with keys title, author, isbn, year, and
category; with a filter the result is books only.

Examples:
  lcms find herbert
  lcms find sci
  lcms find --filter 'book.year >= 1960 && book.year < 1970'
  lcms find dune --filter 'book.category.startsWith("Fiction")'`,
	Aliases: []string{"search"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runFind,
}

func init() {
	findCmd.Flags().StringVar(&findFilter, "filter", "", "CEL filter expression")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	out := newWriter()

	keyword := ""
	if len(args) == 1 {
		keyword = args[0]
	}
	if keyword == "" && findFilter == "" {
		return clierrors.New(clierrors.CodeValidation, "nothing to search for").
			WithDetails("pass a keyword, a --filter expression, or both").
			WithSuggestions("lcms find herbert", `lcms find --filter 'book.year < 1970'`)
	}

	var filter *query.Filter
	if findFilter != "" {
		var err error
		filter, err = query.Compile(findFilter)
		if err != nil {
			return clierrors.New(clierrors.CodeValidation, "invalid filter expression").
				WithDetails(err.Error()).
				WithSuggestions(`lcms find --filter 'book.year < 1970'`)
		}
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	// A filter narrows the result to books: category matches carry no
	// book fields for the expression to see.
	if filter != nil {
		var entries []library.Entry
		if keyword != "" {
			entries = lib.Find(keyword).Books
		} else {
			entries, _ = lib.Books("")
		}
		kept := entries[:0:0]
		for _, e := range entries {
			if filter.Matches(e.Book, e.Category) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			out.Info("no books match")
			return nil
		}
		return writeFindBooks(out, kept)
	}

	matches := lib.Find(keyword)
	if matches.Empty() {
		out.Info("nothing found")
		return nil
	}

	switch out.Format() {
	case output.FormatQuiet:
		handles := make([]string, 0, len(matches.Categories)+len(matches.Books))
		for _, c := range matches.Categories {
			handles = append(handles, c.Path)
		}
		handles = append(handles, book.Titles(matches.Books)...)
		return out.Write(handles)
	case output.FormatTable:
		if len(matches.Categories) > 0 {
			t := output.NewTable("Category", "Books")
			for _, c := range matches.Categories {
				t.AddRow(c.Path, strconv.Itoa(c.Books))
			}
			if err := out.Write(t); err != nil {
				return err
			}
			if len(matches.Books) > 0 {
				out.Println()
			}
		}
		if len(matches.Books) > 0 {
			return out.Write(book.EntryTable(matches.Books))
		}
		return nil
	default:
		return out.Write(matches)
	}
}

// writeFindBooks renders a books-only result in the active format.
func writeFindBooks(out *output.Writer, entries []library.Entry) error {
	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(book.Titles(entries))
	case output.FormatTable:
		return out.Write(book.EntryTable(entries))
	default:
		return out.Write(entries)
	}
}
