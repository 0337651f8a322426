package rewrite

import (
	"slices"
	"strings"
)

// SplitLines splits content after every '\n', keeping the terminators.
// The last line has no terminator when content does not end with one.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// terminateLast returns a copy of lines whose last line ends with the file's
// line terminator, and the terminator it added ("" when none was needed).
// The terminator is "\r\n" when the line before the last one uses it.
func terminateLast(lines []string) ([]string, string) {
	n := len(lines)
	if n == 0 || strings.HasSuffix(lines[n-1], "\n") {
		return lines, ""
	}
	eol := "\n"
	if n > 1 && strings.HasSuffix(lines[n-2], "\r\n") {
		eol = "\r\n"
	}
	out := slices.Clone(lines)
	out[n-1] += eol
	return out, eol
}

// trimLast removes eol from whichever line ended up last, so a file without
// a final newline keeps lacking one.
func trimLast(lines []string, eol string) []string {
	if eol == "" || len(lines) == 0 {
		return lines
	}
	out := slices.Clone(lines)
	out[len(out)-1] = strings.TrimSuffix(out[len(out)-1], eol)
	return out
}
