package catalog

import "strings"

// Node is a category: a tree vertex owning child categories and the
// books attached directly to it, plus the aggregate count of books in
// its entire subtree. The parent link is a back-reference used only
// for upward count propagation and path reconstruction; it never
// drives ownership.
type Node struct {
	name     string
	parent   *Node
	children []*Node
	books    []*Book
	total    int
}

func newNode(name string, parent *Node) *Node {
	return &Node{name: name, parent: parent}
}

// Name returns the category's label.
func (n *Node) Name() string { return n.name }

// Parent returns the parent category, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// TotalBooks returns the aggregate book count: books directly in this
// category plus every descendant's.
func (n *Node) TotalBooks() int { return n.total }

// Children returns the child categories in insertion order. The slice
// is a snapshot view, valid until the next mutation.
func (n *Node) Children() []*Node { return n.children }

// Books returns the books attached directly to this category, in
// insertion order. Descendants' books are not included.
func (n *Node) Books() []*Book { return n.books }

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// FindChild returns the immediate child with the exact name, or nil.
// Matching is case-sensitive.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// AddChild returns the child with the given name, creating it first if
// absent. Existing children are returned unchanged, so a name is never
// duplicated among siblings.
func (n *Node) AddChild(name string) *Node {
	if c := n.FindChild(name); c != nil {
		return c
	}
	c := newNode(name, n)
	n.children = append(n.children, c)
	return c
}

// RemoveChild removes the named child and its entire subtree. Every
// ancestor's aggregate count drops by the removed child's total. The
// detached subtree becomes unreachable; returns ErrNotFound if no
// child has that name.
func (n *Node) RemoveChild(name string) error {
	for i, c := range n.children {
		if c.name != name {
			continue
		}
		delta := c.total
		c.parent = nil
		n.children = append(n.children[:i], n.children[i+1:]...)
		n.propagate(-delta)
		return nil
	}
	return ErrNotFound
}

// AddBook attaches the book directly to this category. Returns
// ErrDuplicate if an equal book (per Book.Equal) is already among this
// node's direct books; the duplicate check here is local, not
// subtree-wide. On success every ancestor's count grows by one.
func (n *Node) AddBook(b *Book) error {
	for _, existing := range n.books {
		if existing.Equal(b) {
			return ErrDuplicate
		}
	}
	n.books = append(n.books, b)
	n.propagate(1)
	return nil
}

// RemoveBook removes the first direct book (insertion order) whose
// title matches exactly. Descendants are not searched. Every
// ancestor's count drops by one on success.
func (n *Node) RemoveBook(title string) error {
	for i, b := range n.books {
		if b.Title != title {
			continue
		}
		n.books = append(n.books[:i], n.books[i+1:]...)
		n.propagate(-1)
		return nil
	}
	return ErrNotFound
}

// FindBook returns the first direct book with the exact title, or nil.
// Descendants are not searched.
func (n *Node) FindBook(title string) *Book {
	for _, b := range n.books {
		if b.Title == title {
			return b
		}
	}
	return nil
}

// CollectBooks appends every book in this subtree to dst in pre-order:
// this node's books first, then each child's subtree in child order.
// The order is deterministic and stable between mutations.
func (n *Node) CollectBooks(dst []*Book) []*Book {
	dst = append(dst, n.books...)
	for _, c := range n.children {
		dst = c.CollectBooks(dst)
	}
	return dst
}

// Walk visits this node and then its descendants in pre-order. If fn
// returns false the node's subtree is not descended into. fn must not
// mutate the tree while walking.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Path returns the slash-joined category path from just below the root
// to this node. The root's path is the empty string.
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	var segments []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		segments = append(segments, cur.name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

// propagate applies a signed book-count delta to this node and every
// ancestor up to the root. Counts are never recomputed from scratch.
func (n *Node) propagate(delta int) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.total += delta
	}
}

// rename relabels the node. Callers must enforce sibling uniqueness
// and root protection before calling.
func (n *Node) rename(name string) {
	n.name = name
}
