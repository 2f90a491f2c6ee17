package library

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"lcms/internal/catalog"
)

// Header is the header row of a library CSV file.
const Header = "Title,Author,ISBN,Publication Year,Category"

// ImportReport counts the outcome of an import per row disposition.
type ImportReport struct {
	Imported   int `json:"imported" yaml:"imported"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	BadRows    int `json:"bad_rows" yaml:"bad_rows"`
	BadYears   int `json:"bad_years" yaml:"bad_years"`
	BadPaths   int `json:"bad_paths" yaml:"bad_paths"`
}

// Skipped returns the number of rows that were read but not imported.
func (r ImportReport) Skipped() int {
	return r.Duplicates + r.BadRows + r.BadYears + r.BadPaths
}

// Import reads CSV rows (Title, Author, ISBN, Publication Year,
// Category) from r into the library. A leading header row is skipped.
// Rows with the wrong column count, unparseable years, empty category
// paths, or library-wide duplicates are skipped and counted, never
// fatal. Fields are trimmed of surrounding spaces and tabs.
func (l *Library) Import(r io.Reader) (ImportReport, error) {
	var report ImportReport
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.BadRows++
			continue
		}
		if first {
			first = false
			if len(record) > 0 && strings.Trim(record[0], " \t") == "Title" {
				continue
			}
		}
		if len(record) != 5 {
			report.BadRows++
			continue
		}

		title := strings.Trim(record[0], " \t")
		author := strings.Trim(record[1], " \t")
		isbn := strings.Trim(record[2], " \t")
		yearText := strings.Trim(record[3], " \t")

		year, ok := ParseYear(yearText)
		if !ok {
			report.BadYears++
			continue
		}
		norm := catalog.NormalizePath(record[4])
		if norm == "" {
			report.BadPaths++
			continue
		}

		candidate := catalog.NewBook(title, author, isbn, year)
		if l.Contains(candidate) {
			report.Duplicates++
			continue
		}
		if _, err := l.tree.AddBookAt(norm, candidate); err != nil {
			report.Duplicates++
			continue
		}
		report.Imported++
	}
	return report, nil
}

// Export writes the header row followed by every book in pre-order,
// with the owning category's path (root excluded) as the fifth column.
// Field quoting follows Book.CSVRow so the output re-imports
// losslessly. Returns the number of book rows written.
func (l *Library) Export(w io.Writer) (int, error) {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return 0, err
	}
	count := 0
	var werr error
	l.tree.Root().Walk(func(n *catalog.Node) bool {
		if werr != nil {
			return false
		}
		path := n.Path()
		for _, b := range n.Books() {
			if _, err := fmt.Fprintf(w, "%s,%s\n", b.CSVRow(), catalog.QuoteField(path)); err != nil {
				werr = err
				return false
			}
			count++
		}
		return true
	})
	return count, werr
}

// ParseYear parses a publication year: optional leading minus, then
// digits only. Surrounding spaces and tabs are ignored; empty text,
// bare signs, and any other character are rejected.
func ParseYear(s string) (int, bool) {
	s = strings.Trim(s, " \t")
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	year := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		year = year*10 + int(s[i]-'0')
	}
	if neg {
		year = -year
	}
	return year, true
}
