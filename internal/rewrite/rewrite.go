// Package rewrite sorts source lists in build files on disk.
//
// Each file is handled on its own: read, sort, show the diff, ask, write.
// A failure on one file leaves files processed before it as they were written.
package rewrite

import (
	"fmt"
	"io"
	"os"
	"slices"

	"sortsources/internal/diff"
	"sortsources/internal/errors"
	"sortsources/internal/logging"
	"sortsources/internal/prompt"
	"sortsources/internal/sorter"
)

// ConfirmMessage is the question asked before a file is overwritten
const ConfirmMessage = "Use new file (y/N)"

// Result is the outcome of processing one file
type Result int

const (
	// ResultUnchanged means the file was already sorted
	ResultUnchanged Result = iota
	// ResultDeclined means the user rejected the change
	ResultDeclined
	// ResultWritten means the sorted content was written back
	ResultWritten
	// ResultFailed accompanies every non-nil error
	ResultFailed
)

// String returns a short name for the result
func (r Result) String() string {
	switch r {
	case ResultUnchanged:
		return "unchanged"
	case ResultDeclined:
		return "declined"
	case ResultWritten:
		return "written"
	case ResultFailed:
		return "failed"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Options configures a Processor
type Options struct {
	// Confirm shows a diff and asks before writing
	Confirm bool
	// DiffContext is the number of context lines in the diff
	DiffContext int
}

// Processor sorts files in place
type Processor struct {
	opts    Options
	confirm prompt.Confirmer
	out     io.Writer
	logger  *logging.Logger
}

// NewProcessor creates a Processor. User facing output (diffs and
// "no change" notices) goes to out; confirm is only called when
// opts.Confirm is set.
func NewProcessor(opts Options, confirm prompt.Confirmer, out io.Writer, logger *logging.Logger) *Processor {
	if confirm == nil {
		confirm = prompt.Always(false)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Processor{
		opts:    opts,
		confirm: confirm,
		out:     out,
		logger:  logger,
	}
}

// ProcessFile sorts the source lists in the file at path. The result is
// ResultFailed whenever the error is non-nil.
func (p *Processor) ProcessFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ResultFailed, errors.NewSortError(errors.FileReadFailed, "cannot read "+path, err).
			WithDetails(map[string]string{"path": path})
	}

	// An unterminated last line gets a terminator while sorting so that it
	// stays a line of its own when it moves.
	original := SplitLines(string(data))
	terminated, eol := terminateLast(original)
	sorted := trimLast(sorter.Sort(terminated), eol)

	if slices.Equal(original, sorted) {
		_, _ = fmt.Fprintf(p.out, "%s: no change\n", path)
		p.logger.Debug("File already sorted", map[string]interface{}{
			"path":  path,
			"lines": len(original),
		})
		return ResultUnchanged, nil
	}

	if dropped := len(original) - len(sorted); dropped > 0 {
		p.logger.Warn("Trailing comment lines after the last source entry will be removed", map[string]interface{}{
			"path":  path,
			"lines": dropped,
		})
	}

	if p.opts.Confirm {
		if err := p.showDiff(path, original, sorted); err != nil {
			return ResultFailed, errors.NewSortError(errors.InternalError, "cannot render diff for "+path, err)
		}
		if !p.confirm(ConfirmMessage) {
			p.logger.Info("Change declined", map[string]interface{}{"path": path})
			return ResultDeclined, nil
		}
	}

	if err := writeFile(path, sorted); err != nil {
		return ResultFailed, errors.NewSortError(errors.FileWriteFailed, "cannot write "+path, err).
			WithDetails(map[string]string{"path": path})
	}

	p.logger.Info("File rewritten", map[string]interface{}{
		"path":  path,
		"lines": len(sorted),
	})
	return ResultWritten, nil
}

func (p *Processor) showDiff(path string, original, sorted []string) error {
	unified, err := diff.Unified(path, original, sorted, p.opts.DiffContext)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(p.out, unified); err != nil {
		return err
	}

	if summary, err := diff.Summarize(unified); err == nil {
		p.logger.Debug("Diff rendered", map[string]interface{}{
			"path":    path,
			"hunks":   len(summary.Hunks),
			"added":   summary.Added,
			"changed": summary.Changed,
			"deleted": summary.Deleted,
			"moved":   summary.ChangedLines(),
		})
	}
	return nil
}

// writeFile replaces the content of path, keeping its permission bits
func writeFile(path string, lines []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(JoinLines(lines)), info.Mode().Perm())
}

// Summary counts the outcomes of ProcessFiles
type Summary struct {
	Unchanged int
	Declined  int
	Written   int
}

// ProcessFiles processes paths in order and stops at the first error.
// Files handled before the error keep their new content.
func (p *Processor) ProcessFiles(paths []string) (Summary, error) {
	var s Summary
	for _, path := range paths {
		result, err := p.ProcessFile(path)
		if err != nil {
			return s, err
		}
		switch result {
		case ResultUnchanged:
			s.Unchanged++
		case ResultDeclined:
			s.Declined++
		case ResultWritten:
			s.Written++
		}
	}
	return s, nil
}
