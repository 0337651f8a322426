package sorter

import (
	"regexp"
	"strings"
)

// Kind is the classification of a single line
type Kind int

const (
	// Other is any line that is neither a comment nor a source entry
	Other Kind = iota
	// Comment is a line whose first non-blank character is '#'
	Comment
	// SourceEntry is a quoted file name with a known suffix followed by a comma
	SourceEntry
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case SourceEntry:
		return "source"
	default:
		return "other"
	}
}

// Suffixes are the file name suffixes recognized as source entries.
// Matching is exact and case-sensitive.
var Suffixes = []string{"c", "cc", "cpp", "h", "mm", "rc", "rc.version", "ico", "def", "release"}

var (
	commentPattern = regexp.MustCompile(`^\s*#`)
	sourcePattern  = regexp.MustCompile(sourceExpr(Suffixes))
)

// sourceExpr builds the source entry expression. RE2 has no backreferences,
// so each quote style gets its own alternative to force matching quotes.
func sourceExpr(suffixes []string) string {
	quoted := make([]string, len(suffixes))
	for i, s := range suffixes {
		quoted[i] = regexp.QuoteMeta(s)
	}
	ext := `\.(?:` + strings.Join(quoted, "|") + `)`
	return `^\s+(?:'.*` + ext + `'|".*` + ext + `"),$`
}

// trimEOL removes one trailing line terminator so that patterns anchored at
// end of line see the line content only.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// IsComment reports whether line is a comment line
func IsComment(line string) bool {
	return commentPattern.MatchString(trimEOL(line))
}

// IsSourceEntry reports whether line is a source file entry
func IsSourceEntry(line string) bool {
	return sourcePattern.MatchString(trimEOL(line))
}

// Classify returns the kind of line. Comment wins over SourceEntry.
func Classify(line string) Kind {
	switch {
	case IsComment(line):
		return Comment
	case IsSourceEntry(line):
		return SourceEntry
	default:
		return Other
	}
}
