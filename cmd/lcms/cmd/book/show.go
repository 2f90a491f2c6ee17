package book

import (
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/library"

	"github.com/spf13/cobra"
)

// bookShowCmd shows a single book
var bookShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a book",
	Long: `Display a book's fields and the category that holds it.

The title must match exactly.

Examples:
  lcms book show "Dune"
  lcms book show "Dune" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runBookShow,
}

func runBookShow(cmd *cobra.Command, args []string) error {
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

	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(entry.Book.Title)
	case output.FormatTable:
		return out.Write(EntryTable([]library.Entry{entry}))
	default:
		return out.Write(entry)
	}
}
