// Package library implements the application-level catalog flows on
// top of the category tree: CSV import and export, keyword search,
// and book/category management with the library-wide duplicate policy.
// Commands never touch the tree directly for mutation; they go through
// a Library so path normalization and duplicate checks apply uniformly.
package library

import (
	"lcms/internal/catalog"
)

// Library is the application facade over one catalog tree.
type Library struct {
	tree *catalog.Tree
}

// New constructs an empty library whose root category carries rootName.
func New(rootName string) *Library {
	return &Library{tree: catalog.NewTree(rootName)}
}

// Tree exposes the underlying category tree for read-only walks
// (rendering, browsing). Mutations go through Library methods.
func (l *Library) Tree() *catalog.Tree { return l.tree }

// RootName returns the root category's name.
func (l *Library) RootName() string { return l.tree.Root().Name() }

// TotalBooks returns the number of books in the whole library.
func (l *Library) TotalBooks() int { return l.tree.TotalBooks() }

// Stats summarizes the library for status display.
type Stats struct {
	Categories int `json:"categories" yaml:"categories"`
	Books      int `json:"books" yaml:"books"`
}

// Stats walks the tree once and reports totals. The root itself is not
// counted as a category.
func (l *Library) Stats() Stats {
	s := Stats{Books: l.tree.TotalBooks()}
	l.tree.Root().Walk(func(n *catalog.Node) bool {
		if !n.IsRoot() {
			s.Categories++
		}
		return true
	})
	return s
}
