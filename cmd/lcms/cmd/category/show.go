package category

import (
	"strconv"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"

	"github.com/spf13/cobra"
)

// childView is one child category in a show listing.
type childView struct {
	Name  string `json:"name" yaml:"name"`
	Books int    `json:"books" yaml:"books"`
}

// categoryView is the structured form of a category for output.
type categoryView struct {
	Path     string      `json:"path" yaml:"path"`
	Name     string      `json:"name" yaml:"name"`
	Direct   int         `json:"direct_books" yaml:"direct_books"`
	Total    int         `json:"total_books" yaml:"total_books"`
	Children []childView `json:"children" yaml:"children"`
}

// categoryShowCmd shows one category
var categoryShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a category",
	Long: `Display a category's book counts and child categories.

The count of a category includes every book in its subtree. Use / for
the root.

Examples:
  lcms category show Fiction
  lcms category show / -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryShow,
}

func runCategoryShow(cmd *cobra.Command, args []string) error {
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

	view := categoryView{
		Path:     node.Path(),
		Name:     node.Name(),
		Direct:   len(node.Books()),
		Total:    node.TotalBooks(),
		Children: make([]childView, 0, len(node.Children())),
	}
	for _, child := range node.Children() {
		view.Children = append(view.Children, childView{Name: child.Name(), Books: child.TotalBooks()})
	}

	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(view.Path)
	case output.FormatTable:
		out.Printf("Name:         %s\n", view.Name)
		if view.Path != "" {
			out.Printf("Path:         %s\n", view.Path)
		}
		out.Printf("Books:        %d direct, %d in subtree\n", view.Direct, view.Total)
		if len(view.Children) == 0 {
			return nil
		}
		out.Println()
		t := output.NewTable("Child", "Books")
		for _, c := range view.Children {
			t.AddRow(c.Name, strconv.Itoa(c.Books))
		}
		return out.Write(t)
	default:
		return out.Write(view)
	}
}
