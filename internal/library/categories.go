package library

import (
	"strings"

	"lcms/internal/catalog"
)

// EnsureCategory creates the category path, reusing existing segments.
// The path is normalized first; an empty result is rejected with
// ErrInvalidPath (the root always exists and cannot be added). Returns
// the normalized path.
func (l *Library) EnsureCategory(path string) (string, error) {
	norm := catalog.NormalizePath(path)
	if norm == "" {
		return "", catalog.ErrInvalidPath
	}
	l.tree.CreateNode(norm)
	return norm, nil
}

// Category resolves a category path to its node. The empty path is the
// root.
func (l *Library) Category(path string) (*catalog.Node, error) {
	return l.tree.GetNode(catalog.NormalizePath(path))
}

// RenameCategory relabels the category at path. The root is protected,
// the new name must be a single non-empty segment, and it must not
// collide with a sibling.
func (l *Library) RenameCategory(path, newName string) error {
	newName = strings.Trim(newName, " \t")
	if newName == "" || strings.Contains(newName, "/") {
		return catalog.ErrInvalidPath
	}
	return l.tree.Rename(catalog.NormalizePath(path), newName)
}

// RemoveCategory removes the category at path together with its whole
// subtree and reports how many books went with it. The root is
// protected.
func (l *Library) RemoveCategory(path string) (int, error) {
	norm := catalog.NormalizePath(path)
	node, err := l.tree.GetNode(norm)
	if err != nil {
		return 0, err
	}
	if node.IsRoot() {
		return 0, catalog.ErrRootProtected
	}
	removed := node.TotalBooks()
	if err := l.tree.RemoveNode(norm); err != nil {
		return 0, err
	}
	return removed, nil
}
