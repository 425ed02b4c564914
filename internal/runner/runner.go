// internal/runner/runner.go

// Package runner orchestrates a single search invocation: it loads the
// target file, selects a matching strategy, and writes the matching lines
// to the given writer in content order.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mwiater/linegrep/internal/appconfig"
	"github.com/mwiater/linegrep/internal/logging"
	"github.com/mwiater/linegrep/internal/search"
	"github.com/mwiater/linegrep/internal/strategyfactory"
	"github.com/mwiater/linegrep/internal/util"
)

// ErrNotText marks files whose bytes are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// LoadContent reads the whole file at path into memory. The underlying
// os error is wrapped unchanged so callers can inspect it with errors.Is.
func LoadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("could not read file %q: %w", path, ErrNotText)
	}
	return string(data), nil
}

// Run executes the search described by cfg and writes each matching line
// to out, one per line. It returns the load error unchanged when the file
// cannot be read; no search is attempted in that case.
func Run(cfg appconfig.Config, out io.Writer) error {
	content, err := LoadContent(cfg.FilePath)
	if err != nil {
		logging.LogEvent("search aborted: %v", err)
		return err
	}

	strategy := strategyfactory.New(cfg.IgnoreCase)
	results := strategy.Search(cfg.Query, content)
	writeResults(out, cfg, search.Lines(content), results)

	logging.LogEvent("query %q in %s: %d matching lines", cfg.Query, cfg.FilePath, len(results))
	return nil
}

// writeResults prints the matched lines, optionally prefixed with their
// 1-based line numbers and with query occurrences highlighted. Neither
// option changes which lines are printed or their order.
func writeResults(out io.Writer, cfg appconfig.Config, lines, results []string) {
	sprint := color.New(color.FgHiRed, color.Bold).SprintFunc()
	highlight := func(s string) string { return sprint(s) }

	next := 0
	for _, line := range results {
		printed := line
		if cfg.Color {
			printed = util.Highlight(line, cfg.Query, cfg.IgnoreCase, highlight)
		}
		if cfg.LineNumbers {
			fmt.Fprintf(out, "%d:%s\n", lineNumber(lines, line, &next), printed)
		} else {
			fmt.Fprintln(out, printed)
		}
	}
}

// lineNumber finds the 1-based index of the next occurrence of line,
// scanning forward from *next. Results are an order-preserving subsequence
// of lines, so a single forward pass covers duplicates correctly.
func lineNumber(lines []string, line string, next *int) int {
	for i := *next; i < len(lines); i++ {
		if lines[i] == line {
			*next = i + 1
			return i + 1
		}
	}
	return 0
}
