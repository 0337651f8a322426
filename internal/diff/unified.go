// Package diff renders and inspects unified diffs of rewritten files.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of unchanged lines shown around each change
const DefaultContext = 3

// Unified renders a unified diff between before and after. Both are lines
// that keep their terminators, as produced by reading a file line by line.
// The headers use git's a/ and b/ prefixes. An empty string means no change.
func Unified(path string, before, after []string, context int) (string, error) {
	if context < 0 {
		context = DefaultContext
	}

	var sb strings.Builder
	err := difflib.WriteUnifiedDiff(&sb, difflib.UnifiedDiff{
		A:        terminated(before),
		B:        terminated(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  context,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// terminated returns lines where the last one also ends in a newline, so the
// rendered diff stays line oriented when the file lacks a final newline.
func terminated(lines []string) []string {
	if len(lines) == 0 || strings.HasSuffix(lines[len(lines)-1], "\n") {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[len(out)-1] += "\n"
	return out
}
