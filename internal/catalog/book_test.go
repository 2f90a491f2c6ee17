package catalog

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestBook_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    *Book
		b    *Book
		want bool
	}{
		{
			name: "matching ISBNs win over differing fields",
			a:    NewBook("A", "X", "111", 2000),
			b:    NewBook("B", "Y", "111", 1990),
			want: true,
		},
		{
			name: "differing ISBNs lose over matching fields",
			a:    NewBook("A", "X", "111", 2000),
			b:    NewBook("A", "X", "222", 2000),
			want: false,
		},
		{
			name: "one empty ISBN falls back to triple match",
			a:    NewBook("A", "X", "", 2000),
			b:    NewBook("A", "X", "111", 2000),
			want: true,
		},
		{
			name: "both empty ISBNs with matching triple",
			a:    NewBook("A", "X", "", 2000),
			b:    NewBook("A", "X", "", 2000),
			want: true,
		},
		{
			name: "triple differs by title",
			a:    NewBook("A", "X", "", 2000),
			b:    NewBook("B", "X", "", 2000),
			want: false,
		},
		{
			name: "triple differs by author",
			a:    NewBook("A", "X", "", 2000),
			b:    NewBook("A", "Y", "", 2000),
			want: false,
		},
		{
			name: "triple differs by year",
			a:    NewBook("A", "X", "", 2000),
			b:    NewBook("A", "X", "", 1999),
			want: false,
		},
		{
			name: "nil other",
			a:    NewBook("A", "X", "", 2000),
			b:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuoteField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Dune", "Dune"},
		{"empty", "", ""},
		{"comma", "Brown, Dan", `"Brown, Dan"`},
		{"quote doubled", `The "Best" Book`, `"The ""Best"" Book"`},
		{"quote and comma", `"a",b`, `"""a"",b"`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteField(tt.in); got != tt.want {
				t.Errorf("QuoteField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBook_CSVRow(t *testing.T) {
	tests := []struct {
		name string
		book *Book
		want string
	}{
		{
			name: "plain fields",
			book: NewBook("Dune", "Frank Herbert", "9780441172719", 1965),
			want: "Dune,Frank Herbert,9780441172719,1965",
		},
		{
			name: "comma in author",
			book: NewBook("Inferno", "Brown, Dan", "", 2013),
			want: `Inferno,"Brown, Dan",,2013`,
		},
		{
			name: "quotes doubled in title",
			book: NewBook(`The "Art" of War`, "Sun Tzu", "", -500),
			want: `"The ""Art"" of War",Sun Tzu,,-500`,
		},
		{
			name: "negative year unquoted",
			book: NewBook("Odyssey", "Homer", "", -700),
			want: "Odyssey,Homer,,-700",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.CSVRow(); got != tt.want {
				t.Errorf("CSVRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Serialized rows must re-parse to the original field values, even when
// fields carry quotes, commas, and newlines.
func TestBook_CSVRowRoundTrip(t *testing.T) {
	books := []*Book{
		NewBook("Dune", "Frank Herbert", "9780441172719", 1965),
		NewBook(`A "quoted" title`, "Brown, Dan", `ISBN "x"`, 2001),
		NewBook("multi\nline", `comma, "and" quote`, "", -44),
	}

	for _, b := range books {
		t.Run(b.Title, func(t *testing.T) {
			r := csv.NewReader(strings.NewReader(b.CSVRow()))
			record, err := r.Read()
			if err != nil {
				t.Fatalf("re-parsing row %q: %v", b.CSVRow(), err)
			}
			if len(record) != 4 {
				t.Fatalf("expected 4 fields, got %d", len(record))
			}
			got := NewBook(record[0], record[1], record[2], b.Year)
			if record[3] != b.CSVRecord()[3] {
				t.Errorf("year field = %q, want %q", record[3], b.CSVRecord()[3])
			}
			if !got.Equal(b) {
				t.Errorf("round-tripped book %+v not equal to original %+v", got, b)
			}
			if got.Title != b.Title || got.Author != b.Author || got.ISBN != b.ISBN {
				t.Errorf("round-tripped fields %+v, want %+v", got, b)
			}
		})
	}
}

func TestBook_CSVRecord(t *testing.T) {
	b := NewBook("Dune", "Frank Herbert", "9780441172719", 1965)
	got := b.CSVRecord()
	want := []string{"Dune", "Frank Herbert", "9780441172719", "1965"}
	if len(got) != len(want) {
		t.Fatalf("CSVRecord() has %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CSVRecord()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
