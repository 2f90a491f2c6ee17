package catalog

// Tree wraps the root category and exposes path-addressed operations
// plus the whole-tree search primitives. The root exists for the life
// of the tree: it is never removed and never renamed.
type Tree struct {
	root *Node
}

// NewTree constructs a tree whose root category carries the given name.
func NewTree(rootName string) *Tree {
	return &Tree{root: newNode(rootName, nil)}
}

// Root returns the root category.
func (t *Tree) Root() *Node { return t.root }

// TotalBooks returns the number of books in the entire catalog.
func (t *Tree) TotalBooks() int { return t.root.total }

// GetNode resolves a category path to its node. Each segment steps
// into the matching child; the walk stops with ErrNotFound at the
// first missing segment. The empty path resolves to the root.
func (t *Tree) GetNode(path string) (*Node, error) {
	cur := t.root
	for _, seg := range SplitPath(path) {
		next := cur.FindChild(seg)
		if next == nil {
			return nil, ErrNotFound
		}
		cur = next
	}
	return cur, nil
}

// CreateNode resolves a category path, creating any missing segments
// along the way. Existing segments are reused, so repeated calls with
// the same path return the same node. The empty path returns the root.
func (t *Tree) CreateNode(path string) *Node {
	cur := t.root
	for _, seg := range SplitPath(path) {
		cur = cur.AddChild(seg)
	}
	return cur
}

// RemoveNode removes the category addressed by path together with its
// entire subtree, subtracting the subtree's book count from every
// ancestor. The empty path addresses the root and is refused with
// ErrRootProtected; a parent path or final segment that does not
// resolve yields ErrNotFound.
func (t *Tree) RemoveNode(path string) error {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return ErrRootProtected
	}
	parent := t.root
	for _, seg := range segments[:len(segments)-1] {
		next := parent.FindChild(seg)
		if next == nil {
			return ErrNotFound
		}
		parent = next
	}
	return parent.RemoveChild(segments[len(segments)-1])
}

// Rename relabels the category addressed by path. The root cannot be
// renamed (ErrRootProtected), and the new name must not collide with a
// sibling (ErrCategoryExists).
func (t *Tree) Rename(path, newName string) error {
	node, err := t.GetNode(path)
	if err != nil {
		return err
	}
	if node == t.root {
		return ErrRootProtected
	}
	if node.name == newName {
		return nil
	}
	if node.parent.FindChild(newName) != nil {
		return ErrCategoryExists
	}
	node.rename(newName)
	return nil
}

// FindBook returns the first book anywhere in the tree whose title
// matches exactly. The traversal is depth-first over an explicit node
// stack (most recently discovered node next); the order among sibling
// subtrees is deterministic for a fixed tree but not part of the
// contract.
func (t *Tree) FindBook(title string) (*Book, error) {
	_, b, err := t.FindNodeOfBook(title)
	return b, err
}

// FindNodeOfBook locates the first book with the exact title using the
// same traversal as FindBook, returning both the book and the category
// that owns it.
func (t *Tree) FindNodeOfBook(title string) (*Node, *Book, error) {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b := cur.FindBook(title); b != nil {
			return cur, b, nil
		}
		stack = append(stack, cur.children...)
	}
	return nil, nil, ErrNotFound
}

// AddBookAt ensures the category path exists and attaches the book to
// the node at its end. A local duplicate is rejected with ErrDuplicate
// and leaves all counts untouched. Returns the owning node on success.
func (t *Tree) AddBookAt(path string, b *Book) (*Node, error) {
	node := t.CreateNode(path)
	if err := node.AddBook(b); err != nil {
		return nil, err
	}
	return node, nil
}

// RemoveBookByTitle removes the first book anywhere in the tree whose
// title matches exactly, using the same traversal discipline as
// FindBook. ErrNotFound means no category held a matching title.
func (t *Tree) RemoveBookByTitle(title string) error {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := cur.RemoveBook(title); err == nil {
			return nil
		}
		stack = append(stack, cur.children...)
	}
	return ErrNotFound
}
