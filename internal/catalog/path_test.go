package catalog

import (
	"strings"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{"///", nil},
		{"A", []string{"A"}},
		{"A/B", []string{"A", "B"}},
		{"/A//B/", []string{"A", "B"}},
		{"Science/Physics/Quantum", []string{"Science", "Physics", "Quantum"}},
		// Whitespace is preserved: trimming is the caller's job.
		{" A /B", []string{" A ", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := SplitPath(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitPath(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// A caller that trims the whole string before splitting gets clean
// segments; internal empty segments are dropped either way.
func TestSplitPath_CallerTrimmed(t *testing.T) {
	raw := "  /A//B/ "
	got := SplitPath(strings.TrimSpace(raw))
	want := []string{"A", "B"}
	if len(got) != len(want) {
		t.Fatalf("SplitPath = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"/", ""},
		{" / / ", ""},
		{"A", "A"},
		{" A ", "A"},
		{" A / B ", "A/B"},
		{"A//B", "A/B"},
		{"A/ /B", "A/B"},
		{"\tA\t/B", "A/B"},
		{"  /A//B/ ", "A/B"},
		{"Computer Science/Algorithms", "Computer Science/Algorithms"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
