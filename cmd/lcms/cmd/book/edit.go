package book

import (
	"fmt"
	"strings"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

var (
	editTitle  string
	editAuthor string
	editISBN   string
	editYear   int
)

// bookEditCmd edits a book's fields in place
var bookEditCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Edit a book",
	Long: `Edit a book's fields. The book stays in its category.

With flags, only the given fields change. Without flags, on a terminal,
an interactive form opens pre-filled with the current values. An edit
that would collide with another book (same ISBN, or same title, author,
and year) is rejected and the book is left unchanged.

Examples:
  lcms book edit "Dune" --year 1965
  lcms book edit "Dune" --title "Dune (Chronicles #1)"
  lcms book edit "Dune"`,
	Args: cobra.ExactArgs(1),
	RunE: runBookEdit,
}

func init() {
	bookEditCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	bookEditCmd.Flags().StringVar(&editAuthor, "author", "", "new author")
	bookEditCmd.Flags().StringVar(&editISBN, "isbn", "", "new ISBN (empty clears it)")
	bookEditCmd.Flags().IntVar(&editYear, "year", 0, "new publication year")
}

func runBookEdit(cmd *cobra.Command, args []string) error {
	out := env.Writer()
	title := args[0]

	lib, err := env.Open()
	if err != nil {
		return err
	}

	current, err := lib.FindBook(title)
	if err != nil {
		return clierrors.Classify(err, "book", title)
	}

	var changes library.Changes
	if anyFieldFlag(cmd) {
		if cmd.Flags().Changed("title") {
			t := strings.TrimSpace(editTitle)
			changes.Title = &t
		}
		if cmd.Flags().Changed("author") {
			a := strings.TrimSpace(editAuthor)
			changes.Author = &a
		}
		if cmd.Flags().Changed("isbn") {
			i := strings.TrimSpace(editISBN)
			changes.ISBN = &i
		}
		if cmd.Flags().Changed("year") {
			y := editYear
			changes.Year = &y
		}
	} else {
		if !env.Interactive() {
			return clierrors.New(clierrors.CodeValidation, "nothing to change").
				WithDetails("pass at least one of --title, --author, --isbn, --year when no terminal is attached").
				WithSuggestions(`lcms book edit "Dune" --year 1965`)
		}
		v := formValues{
			Title:  current.Book.Title,
			Author: current.Book.Author,
			ISBN:   current.Book.ISBN,
			Year:   current.Book.Year,
		}
		if err := runBookForm(&v, false); err != nil {
			return err
		}
		changes = diff(current.Book.Title, current.Book.Author, current.Book.ISBN, current.Book.Year, v)
	}

	if changes == (library.Changes{}) {
		out.Info("no changes")
		return nil
	}

	entry, err := lib.EditBook(title, changes)
	if err != nil {
		return clierrors.Classify(err, "book", title)
	}

	if err := env.Save(lib); err != nil {
		return err
	}

	env.Audit().LogMutation(env.Context(), logger.AuditActionUpdate, entry.Book.Title, logger.AuditOutcomeSuccess, map[string]any{
		"resource_type": "book",
		"category":      entry.Category,
		"was":           title,
	})
	env.Log().Debug("book edited", "title", entry.Book.Title, "category", entry.Category)

	if out.Format() == output.FormatQuiet {
		return out.Write(entry.Book.Title)
	}
	out.Success(fmt.Sprintf("updated %q", entry.Book.Title))
	return nil
}

func anyFieldFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "author", "isbn", "year"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// diff keeps only the fields the form actually changed.
func diff(title, author, isbn string, year int, v formValues) library.Changes {
	var ch library.Changes
	if t := strings.TrimSpace(v.Title); t != title {
		ch.Title = &t
	}
	if a := strings.TrimSpace(v.Author); a != author {
		ch.Author = &a
	}
	if i := strings.TrimSpace(v.ISBN); i != isbn {
		ch.ISBN = &i
	}
	if v.Year != year {
		y := v.Year
		ch.Year = &y
	}
	return ch
}
