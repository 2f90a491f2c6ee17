// Package query compiles user-supplied filter expressions for book
// listings and search. Expressions are CEL programs over a single
// `book` variable, a map with keys title, author, isbn, year, and
// category.
package query

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"

	"lcms/internal/catalog"
)

// Filter is a compiled book filter.
type Filter struct {
	expression string
	program    cel.Program
}

// Compile builds a filter from a CEL expression, for example
// `book.year >= 1960 && book.author.contains("Herbert")`.
func Compile(expression string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("book", decls.NewMapType(decls.String, decls.Dyn)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter program: %w", err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expression }

// Matches evaluates the filter against one book and its owning
// category path. Evaluation errors and non-boolean results count as
// non-matches.
func (f *Filter) Matches(b *catalog.Book, category string) bool {
	result, _, err := f.program.Eval(map[string]any{
		"book": map[string]any{
			"title":    b.Title,
			"author":   b.Author,
			"isbn":     b.ISBN,
			"year":     b.Year,
			"category": category,
		},
	})
	if err != nil {
		return false
	}
	matched, ok := result.Value().(bool)
	return ok && matched
}
