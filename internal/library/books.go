package library

import (
	"lcms/internal/catalog"
)

// Entry pairs a book with the path of the category that owns it.
type Entry struct {
	Book     *catalog.Book `json:"book" yaml:"book"`
	Category string        `json:"category" yaml:"category"`
}

// Changes holds optional field updates for an edit. Nil fields keep
// their current values.
type Changes struct {
	Title  *string
	Author *string
	ISBN   *string
	Year   *int
}

// AddBook places a book in the category addressed by path, creating
// missing segments. The path is normalized first; an empty result is
// rejected with ErrInvalidPath. A book equal to one anywhere in the
// library is rejected with ErrDuplicate before any state changes.
// Returns the normalized owning path.
func (l *Library) AddBook(categoryPath string, b *catalog.Book) (string, error) {
	norm := catalog.NormalizePath(categoryPath)
	if norm == "" {
		return "", catalog.ErrInvalidPath
	}
	if l.Contains(b) {
		return "", catalog.ErrDuplicate
	}
	if _, err := l.tree.AddBookAt(norm, b); err != nil {
		return "", err
	}
	return norm, nil
}

// FindBook locates the first book anywhere in the library whose title
// matches exactly.
func (l *Library) FindBook(title string) (Entry, error) {
	node, b, err := l.tree.FindNodeOfBook(title)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Book: b, Category: node.Path()}, nil
}

// RemoveBook removes the first book anywhere in the library whose
// title matches exactly.
func (l *Library) RemoveBook(title string) error {
	return l.tree.RemoveBookByTitle(title)
}

// EditBook mutates a book in place. The current fields are snapshotted,
// the non-nil changes applied, then the library is re-checked for a
// duplicate excluding the edited book itself. On conflict the snapshot
// is restored and ErrDuplicate returned; the library is left exactly
// as it was.
func (l *Library) EditBook(title string, ch Changes) (Entry, error) {
	node, b, err := l.tree.FindNodeOfBook(title)
	if err != nil {
		return Entry{}, err
	}
	snapshot := *b
	if ch.Title != nil {
		b.Title = *ch.Title
	}
	if ch.Author != nil {
		b.Author = *ch.Author
	}
	if ch.ISBN != nil {
		b.ISBN = *ch.ISBN
	}
	if ch.Year != nil {
		b.Year = *ch.Year
	}
	if l.ContainsExcept(b, b) {
		*b = snapshot
		return Entry{}, catalog.ErrDuplicate
	}
	return Entry{Book: b, Category: node.Path()}, nil
}

// Books returns every book at and below the category addressed by
// path, in pre-order with owning paths. The empty (or root) path lists
// the whole library.
func (l *Library) Books(categoryPath string) ([]Entry, error) {
	node, err := l.tree.GetNode(catalog.NormalizePath(categoryPath))
	if err != nil {
		return nil, err
	}
	var entries []Entry
	node.Walk(func(n *catalog.Node) bool {
		for _, b := range n.Books() {
			entries = append(entries, Entry{Book: b, Category: n.Path()})
		}
		return true
	})
	return entries, nil
}

// Contains reports whether a book equal to b (ISBN-or-triple rule)
// exists anywhere in the library.
func (l *Library) Contains(b *catalog.Book) bool {
	return l.ContainsExcept(b, nil)
}

// ContainsExcept is Contains with one book pointer excluded from the
// scan. The edit flow uses it to re-check after mutating in place.
func (l *Library) ContainsExcept(b, skip *catalog.Book) bool {
	stack := []*catalog.Node{l.tree.Root()}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, existing := range cur.Books() {
			if existing == skip {
				continue
			}
			if existing.Equal(b) {
				return true
			}
		}
		stack = append(stack, cur.Children()...)
	}
	return false
}
