// Package catalog implements the category tree at the heart of lcms:
// an N-ary tree whose nodes are categories holding books, with aggregate
// book counts maintained incrementally across every mutation.
//
// The tree is single-threaded by contract. Every operation runs to
// completion before the next begins, and traversals never mutate the
// structure they are walking; callers that need both collect first and
// mutate after.
package catalog

import (
	"strconv"
	"strings"
)

// Book is a single catalog entry. The zero value is the all-empty book.
// A book belongs to exactly one node at a time; it is never shared.
type Book struct {
	// Title is the book's title.
	Title string `json:"title" yaml:"title"`

	// Author holds one or more authors as a single free-form string.
	Author string `json:"author" yaml:"author"`

	// ISBN is optional; empty means "no identifier".
	ISBN string `json:"isbn,omitempty" yaml:"isbn,omitempty"`

	// Year is the publication year. Negative values are permitted
	// for BCE dates.
	Year int `json:"year" yaml:"year"`
}

// NewBook constructs a fully populated book.
func NewBook(title, author, isbn string, year int) *Book {
	return &Book{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		Year:   year,
	}
}

// Equal reports whether two books are the same entry. If both have a
// non-empty ISBN the ISBNs decide; otherwise the (title, author, year)
// triple does. This is the sole de-duplication rule in the system.
func (b *Book) Equal(other *Book) bool {
	if other == nil {
		return false
	}
	if b.ISBN != "" && other.ISBN != "" {
		return b.ISBN == other.ISBN
	}
	return b.Title == other.Title &&
		b.Author == other.Author &&
		b.Year == other.Year
}

// CSVRow serializes the book as a comma-separated row of its four
// fields: Title, Author, ISBN, Year. Text fields are quoted per
// QuoteField so the row re-parses losslessly; Year is bare digits
// with an optional leading minus.
func (b *Book) CSVRow() string {
	var sb strings.Builder
	sb.WriteString(QuoteField(b.Title))
	sb.WriteByte(',')
	sb.WriteString(QuoteField(b.Author))
	sb.WriteByte(',')
	sb.WriteString(QuoteField(b.ISBN))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(b.Year))
	return sb.String()
}

// CSVRecord returns the four raw field values in row order, for use
// with encoding/csv writers that apply their own quoting.
func (b *Book) CSVRecord() []string {
	return []string{b.Title, b.Author, b.ISBN, strconv.Itoa(b.Year)}
}

// QuoteField applies CSV quoting to a single field: if the field
// contains a quote, comma, or newline it is wrapped in quotes with
// every internal quote doubled. Other fields pass through unchanged.
func QuoteField(s string) string {
	if !strings.ContainsAny(s, "\",\n\r") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			sb.WriteByte('"')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
