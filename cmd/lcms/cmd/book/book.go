// Package book implements the lcms book subcommands.
package book

import (
	"context"
	"strconv"

	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/logger"

	"github.com/spf13/cobra"
)

// Env provides the root command's state to book subcommands. Fields
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

// Cmd represents the book command
var Cmd = &cobra.Command{
	Use:   "book",
	Short: "Manage books",
	Long: `Add, inspect, edit, and remove books in the catalog.

Books are addressed by exact title. Two books count as the same book
when both carry an ISBN and the ISBNs match, or otherwise when title,
author, and publication year all match.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// NewCommand returns the book command with all subcommands registered
func NewCommand(e Env) *cobra.Command {
	env = e

	Cmd.AddCommand(bookAddCmd)
	Cmd.AddCommand(bookShowCmd)
	Cmd.AddCommand(bookListCmd)
	Cmd.AddCommand(bookEditCmd)
	Cmd.AddCommand(bookRemoveCmd)

	return Cmd
}

// EntryTable renders book entries as a table. Shared with the find
// command, which shows the same columns.
func EntryTable(entries []library.Entry) *output.Table {
	t := output.NewTable("Title", "Author", "ISBN", "Year", "Category")
	for _, e := range entries {
		t.AddRow(e.Book.Title, e.Book.Author, e.Book.ISBN, strconv.Itoa(e.Book.Year), e.Category)
	}
	return t
}

// Titles collects the quiet-mode handles of entries.
func Titles(entries []library.Entry) []string {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Book.Title
	}
	return titles
}

// writeEntries renders entries in the active output format.
func writeEntries(out *output.Writer, entries []library.Entry) error {
	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(Titles(entries))
	case output.FormatTable:
		return out.Write(EntryTable(entries))
	default:
		return out.Write(entries)
	}
}
