package library

import (
	"strings"
	"testing"

	"lcms/internal/catalog"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1999", 1999, true},
		{"-500", -500, true},
		{" 2001 ", 2001, true},
		{"\t0\t", 0, true},
		{"", 0, false},
		{"  ", 0, false},
		{"-", 0, false},
		{"+5", 0, false},
		{"19x9", 0, false},
		{"1999.0", 0, false},
		{"--5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseYear(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseYear(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLibrary_Import(t *testing.T) {
	t.Run("header and clean rows", func(t *testing.T) {
		input := strings.Join([]string{
			"Title,Author,ISBN,Publication Year,Category",
			"Dune,Frank Herbert,9780441172719,1965,Fiction/Sci-Fi",
			`"The ""Art"" of War",Sun Tzu,,-500,History`,
			`Inferno,"Brown, Dan",,2013,Fiction`,
		}, "\n")

		lib := New("Library")
		report, err := lib.Import(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Imported != 3 {
			t.Errorf("Imported = %d, want 3", report.Imported)
		}
		if report.Skipped() != 0 {
			t.Errorf("Skipped() = %d, want 0", report.Skipped())
		}
		if lib.TotalBooks() != 3 {
			t.Errorf("TotalBooks() = %d, want 3", lib.TotalBooks())
		}

		entry, err := lib.FindBook(`The "Art" of War`)
		if err != nil {
			t.Fatalf("quoted title should import: %v", err)
		}
		if entry.Book.Year != -500 {
			t.Errorf("year = %d, want -500", entry.Book.Year)
		}
		if entry.Category != "History" {
			t.Errorf("category = %q, want %q", entry.Category, "History")
		}
	})

	t.Run("skips are counted per reason", func(t *testing.T) {
		input := strings.Join([]string{
			"Title,Author,ISBN,Publication Year,Category",
			"Good,Author,,2000,Cat",
			"OnlyFourFields,Author,,2000",
			"BadYear,Author,,20x0,Cat",
			"NoCategory,Author,,2000, / ",
			"Good,Author,,2000,OtherCat",
		}, "\n")

		lib := New("Library")
		report, err := lib.Import(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Imported != 1 {
			t.Errorf("Imported = %d, want 1", report.Imported)
		}
		if report.BadRows != 1 {
			t.Errorf("BadRows = %d, want 1", report.BadRows)
		}
		if report.BadYears != 1 {
			t.Errorf("BadYears = %d, want 1", report.BadYears)
		}
		if report.BadPaths != 1 {
			t.Errorf("BadPaths = %d, want 1", report.BadPaths)
		}
		if report.Duplicates != 1 {
			t.Errorf("Duplicates = %d, want 1", report.Duplicates)
		}
		if report.Skipped() != 4 {
			t.Errorf("Skipped() = %d, want 4", report.Skipped())
		}
	})

	t.Run("no header is fine", func(t *testing.T) {
		lib := New("Library")
		report, err := lib.Import(strings.NewReader("Dune,Frank Herbert,,1965,Fiction\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Imported != 1 {
			t.Errorf("Imported = %d, want 1", report.Imported)
		}
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		lib := New("Library")
		_, err := lib.Import(strings.NewReader(" Dune , Frank Herbert ,, 1965 , Fiction / Sci-Fi \n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry, err := lib.FindBook("Dune")
		if err != nil {
			t.Fatalf("trimmed title should resolve: %v", err)
		}
		if entry.Book.Author != "Frank Herbert" {
			t.Errorf("author = %q, want %q", entry.Book.Author, "Frank Herbert")
		}
		if entry.Category != "Fiction/Sci-Fi" {
			t.Errorf("category = %q, want %q", entry.Category, "Fiction/Sci-Fi")
		}
	})

	t.Run("existing books stay and block duplicates", func(t *testing.T) {
		lib := New("Library")
		lib.AddBook("Fiction", catalog.NewBook("Dune", "Frank Herbert", "", 1965))

		report, err := lib.Import(strings.NewReader("Dune,Frank Herbert,,1965,Elsewhere\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Duplicates != 1 {
			t.Errorf("Duplicates = %d, want 1", report.Duplicates)
		}
		if lib.TotalBooks() != 1 {
			t.Errorf("TotalBooks() = %d, want 1", lib.TotalBooks())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		lib := New("Library")
		report, err := lib.Import(strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Imported != 0 || report.Skipped() != 0 {
			t.Errorf("empty input should import nothing, got %+v", report)
		}
	})
}

func TestLibrary_Export(t *testing.T) {
	lib := New("Library")
	lib.AddBook("Fiction/Sci-Fi", catalog.NewBook("Dune", "Frank Herbert", "9780441172719", 1965))
	lib.AddBook("Fiction", catalog.NewBook("Inferno", "Brown, Dan", "", 2013))
	lib.AddBook("History", catalog.NewBook(`The "Art" of War`, "Sun Tzu", "", -500))

	var sb strings.Builder
	count, err := lib.Export(&sb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	// Pre-order: a node's direct books come before its children's.
	want := strings.Join([]string{
		"Title,Author,ISBN,Publication Year,Category",
		`Inferno,"Brown, Dan",,2013,Fiction`,
		"Dune,Frank Herbert,9780441172719,1965,Fiction/Sci-Fi",
		`"The ""Art"" of War",Sun Tzu,,-500,History`,
		"",
	}, "\n")
	if sb.String() != want {
		t.Errorf("Export output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestLibrary_ImportExportRoundTrip(t *testing.T) {
	lib := New("Library")
	lib.AddBook("Fiction/Sci-Fi", catalog.NewBook("Dune", "Frank Herbert", "9780441172719", 1965))
	lib.AddBook("Fiction", catalog.NewBook("Inferno", "Brown, Dan", "", 2013))
	lib.AddBook("History", catalog.NewBook(`The "Art" of War`, "Sun Tzu", "", -500))
	lib.AddBook("History/Ancient, Greek", catalog.NewBook("Odyssey", "Homer", "", -700))

	var first strings.Builder
	if _, err := lib.Export(&first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := New("Library")
	report, err := reloaded.Import(strings.NewReader(first.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 4 || report.Skipped() != 0 {
		t.Fatalf("round trip import report = %+v", report)
	}

	var second strings.Builder
	if _, err := reloaded.Export(&second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip not byte-stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}
