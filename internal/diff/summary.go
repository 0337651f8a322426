package diff

import (
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// Hunk describes one hunk of a unified diff
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Added    []int // line numbers in the new file
	Removed  []int // line numbers in the old file
}

// Summary describes a parsed single-file unified diff
type Summary struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Changed int
	Deleted int
}

// Summarize parses a unified diff produced by Unified
func Summarize(unified string) (*Summary, error) {
	if unified == "" {
		return &Summary{Hunks: []Hunk{}}, nil
	}

	fd, err := godiff.ParseFileDiff([]byte(unified))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	stat := fd.Stat()
	s := &Summary{
		Path:    cleanPath(fd.NewName),
		Hunks:   make([]Hunk, 0, len(fd.Hunks)),
		Added:   int(stat.Added),
		Changed: int(stat.Changed),
		Deleted: int(stat.Deleted),
	}
	for _, h := range fd.Hunks {
		s.Hunks = append(s.Hunks, parseHunk(h))
	}
	return s, nil
}

// ChangedLines returns the line numbers in the new file of every added line,
// across all hunks in order.
func (s *Summary) ChangedLines() []int {
	lines := make([]int, 0, s.Added+s.Changed)
	for _, h := range s.Hunks {
		lines = append(lines, h.Added...)
	}
	return lines
}

// parseHunk converts a go-diff Hunk into a Hunk with changed line numbers
func parseHunk(hunk *godiff.Hunk) Hunk {
	h := Hunk{
		OldStart: int(hunk.OrigStartLine),
		OldLines: int(hunk.OrigLines),
		NewStart: int(hunk.NewStartLine),
		NewLines: int(hunk.NewLines),
		Added:    make([]int, 0),
		Removed:  make([]int, 0),
	}

	oldLine := h.OldStart
	newLine := h.NewStart

	body := strings.TrimSuffix(string(hunk.Body), "\n")
	for _, line := range strings.Split(body, "\n") {
		if len(line) == 0 {
			oldLine++
			newLine++
			continue
		}

		switch line[0] {
		case '+':
			h.Added = append(h.Added, newLine)
			newLine++
		case '-':
			h.Removed = append(h.Removed, oldLine)
			oldLine++
		case ' ':
			oldLine++
			newLine++
		case '\\':
			// "\ No newline at end of file"
		}
	}

	return h
}

// cleanPath removes the a/ or b/ prefix from diff paths
func cleanPath(path string) string {
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}
	return path
}
