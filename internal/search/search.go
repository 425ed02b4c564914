// internal/search/search.go

// Package search defines the line-matching strategies used by linegrep.
// A Strategy scans file content line by line and returns every line that
// contains the query, either with exact-case comparison or after folding
// both sides to lowercase.
package search

import "strings"

// Strategy is the common contract for the two matching algorithms. Search
// returns the matching lines of content in order of appearance; duplicate
// lines in the source appear as duplicates in the result.
type Strategy interface {
	Search(query, content string) []string
}

// CaseSensitive matches a line when it contains query as an exact substring.
type CaseSensitive struct{}

// Search implements Strategy with byte-exact containment per line.
func (CaseSensitive) Search(query, content string) []string {
	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// CaseInsensitive matches after lowercasing both query and line. Matched
// lines are returned in their original, unfolded form.
type CaseInsensitive struct{}

// Search implements Strategy with case-folded containment per line.
func (CaseInsensitive) Search(query, content string) []string {
	folded := strings.ToLower(query)
	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), folded) {
			results = append(results, line)
		}
	}
	return results
}

// Lines splits content on newline boundaries. A final line without a
// trailing newline is still yielded; empty content yields no lines. A
// trailing carriage return is stripped so CRLF input behaves like LF.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
