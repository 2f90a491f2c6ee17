package cmd

import (
	"fmt"

	"lcms/internal/catalog"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/tui/themes"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

var (
	listBooks bool
	listUnder string
)

// listCmd renders the category tree
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the category tree",
	Long: `Show the category tree with book counts.

Each category is annotated with the number of books in its subtree.
--books adds the books themselves as leaves; --under restricts the
listing to one subtree.

Examples:
  lcms list
  lcms list --books
  lcms list --under Fiction
  lcms list -o quiet`,
	Aliases: []string{"ls", "tree"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listBooks, "books", "b", false, "include books as leaves")
	listCmd.Flags().StringVarP(&listUnder, "under", "u", "", "restrict to a category subtree")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := newWriter()

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	start, err := lib.Category(listUnder)
	if err != nil {
		return clierrors.NotFound("category", listUnder)
	}

	switch out.Format() {
	case output.FormatQuiet:
		var paths []string
		start.Walk(func(n *catalog.Node) bool {
			if !n.IsRoot() {
				paths = append(paths, n.Path())
			}
			return true
		})
		return out.Write(paths)
	case output.FormatTable:
		theme := themes.Detect()
		out.Println(categoryTree(start, lib, theme).String())
		return nil
	default:
		return out.Write(categoryViews(start))
	}
}

// categoryTree builds the renderable tree for a category subtree.
func categoryTree(n *catalog.Node, lib *library.Library, theme *themes.Theme) *tree.Tree {
	t := tree.Root(categoryLabel(n, lib, theme)).
		EnumeratorStyle(theme.TreeBranch)
	if listBooks {
		for _, b := range n.Books() {
			t.Child(theme.Muted.Render(fmt.Sprintf("%s — %s (%d)", b.Title, b.Author, b.Year)))
		}
	}
	for _, child := range n.Children() {
		t.Child(categoryTree(child, lib, theme))
	}
	return t
}

// categoryLabel renders "Name (count)" with the subtree book count.
func categoryLabel(n *catalog.Node, lib *library.Library, theme *themes.Theme) string {
	name := n.Name()
	if n.IsRoot() {
		name = lib.RootName()
	}
	return fmt.Sprintf("%s %s", name, theme.Count.Render(fmt.Sprintf("(%d)", n.TotalBooks())))
}

// categoryView is the structured form of the tree for json/yaml output.
type categoryView struct {
	Name     string         `json:"name" yaml:"name"`
	Path     string         `json:"path" yaml:"path"`
	Books    int            `json:"books" yaml:"books"`
	Children []categoryView `json:"children,omitempty" yaml:"children,omitempty"`
}

func categoryViews(n *catalog.Node) categoryView {
	view := categoryView{
		Name:  n.Name(),
		Path:  n.Path(),
		Books: n.TotalBooks(),
	}
	for _, child := range n.Children() {
		view.Children = append(view.Children, categoryViews(child))
	}
	return view
}
