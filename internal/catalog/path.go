package catalog

import "strings"

// SplitPath splits a slash-delimited category path into ordered
// segments. Empty segments from leading, trailing, or repeated slashes
// are dropped; segment text is never trimmed here (whitespace handling
// is the caller's job). An empty or all-slash path yields nil, which
// every path-consuming operation reads as the root itself.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// NormalizePath canonicalizes user-supplied path text before it is
// used against the tree: each segment is trimmed of surrounding spaces
// and tabs, empty segments are dropped, and the rest are rejoined with
// single slashes. An empty result addresses the root.
func NormalizePath(path string) string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, " \t")
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, "/")
}
