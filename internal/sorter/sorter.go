// Package sorter reorders quoted source file entries inside build files.
//
// The algorithm is line based and does not understand the build file syntax.
// Each maximal run of source entries is sorted byte-wise; comment lines directly
// above an entry move with it. Every other line stays where it was, which also
// means a blank line inside a list splits it into two independently sorted runs.
package sorter

import (
	"slices"
	"strings"
)

// entry is a source line together with the comment lines directly above it
type entry struct {
	line     string
	comments []string
}

func compareEntries(a, b entry) int {
	if c := strings.Compare(a.line, b.line); c != 0 {
		return c
	}
	return slices.Compare(a.comments, b.comments)
}

// Sort returns lines with every run of source entries sorted.
//
// Only the pending source run is flushed at end of input. A comment group that
// trails the last source entry with nothing after it is not emitted.
func Sort(lines []string) []string {
	out := make([]string, 0, len(lines))
	var comments []string
	var sources []entry

	flush := func() {
		slices.SortStableFunc(sources, compareEntries)
		for _, e := range sources {
			out = append(out, e.comments...)
			out = append(out, e.line)
		}
		sources = nil
	}

	for _, line := range lines {
		switch Classify(line) {
		case Comment:
			comments = append(comments, line)
		case SourceEntry:
			sources = append(sources, entry{line: line, comments: comments})
			comments = nil
		default:
			// Sources go first so that comments closing a list stay below it.
			if len(sources) > 0 {
				flush()
			}
			if len(comments) > 0 {
				out = append(out, comments...)
				comments = nil
			}
			out = append(out, line)
		}
	}
	if len(sources) > 0 {
		flush()
	}
	return out
}
