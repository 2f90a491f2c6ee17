package catalog

import "errors"

// Catalog errors. All lookup misses and rejected mutations are reported
// through these sentinels; the catalog never panics on bad input.
var (
	// ErrNotFound reports a failed node or book lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate reports an add rejected because an equal book is
	// already present at the target scope.
	ErrDuplicate = errors.New("duplicate book")

	// ErrInvalidPath reports a path that cannot address the requested
	// operation (for example, an empty path where a subpath is required).
	ErrInvalidPath = errors.New("invalid path")

	// ErrRootProtected reports an attempt to remove or rename the root.
	ErrRootProtected = errors.New("root category is protected")

	// ErrCategoryExists reports a rename that would collide with an
	// existing sibling category.
	ErrCategoryExists = errors.New("category already exists")
)
