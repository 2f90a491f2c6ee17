package library

import (
	"strings"

	"lcms/internal/catalog"
)

// CategoryMatch is a category whose name matched a search keyword.
type CategoryMatch struct {
	Path  string `json:"path" yaml:"path"`
	Books int    `json:"books" yaml:"books"`
}

// Matches is the result of a keyword search.
type Matches struct {
	Categories []CategoryMatch `json:"categories" yaml:"categories"`
	Books      []Entry         `json:"books" yaml:"books"`
}

// Empty reports whether the search matched nothing.
func (m Matches) Empty() bool {
	return len(m.Categories) == 0 && len(m.Books) == 0
}

// Find walks the whole tree and collects categories whose name
// contains the keyword and books whose title, author, or ISBN contains
// it. Matching is a case-insensitive substring test.
func (l *Library) Find(keyword string) Matches {
	needle := strings.ToLower(keyword)
	var m Matches
	l.tree.Root().Walk(func(n *catalog.Node) bool {
		if !n.IsRoot() && strings.Contains(strings.ToLower(n.Name()), needle) {
			m.Categories = append(m.Categories, CategoryMatch{
				Path:  n.Path(),
				Books: n.TotalBooks(),
			})
		}
		for _, b := range n.Books() {
			if strings.Contains(strings.ToLower(b.Title), needle) ||
				strings.Contains(strings.ToLower(b.Author), needle) ||
				strings.Contains(strings.ToLower(b.ISBN), needle) {
				m.Books = append(m.Books, Entry{Book: b, Category: n.Path()})
			}
		}
		return true
	})
	return m
}
