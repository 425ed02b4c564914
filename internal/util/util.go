// internal/util/util.go
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchRanges returns the byte ranges of every non-overlapping occurrence
// of query in line, scanning left to right. With fold set, runes are
// compared after lowercasing while the returned ranges always index the
// original line; lowercasing can change a rune's byte length, so folded
// offsets must never be used on the original string. An empty query yields
// no ranges.
func MatchRanges(line, query string, fold bool) [][2]int {
	if query == "" {
		return nil
	}

	if !fold {
		var ranges [][2]int
		offset := 0
		for {
			i := strings.Index(line[offset:], query)
			if i < 0 {
				return ranges
			}
			start := offset + i
			end := start + len(query)
			ranges = append(ranges, [2]int{start, end})
			offset = end
		}
	}

	needle := strings.ToLower(query)
	var ranges [][2]int
	for i := 0; i < len(line); {
		if n, ok := foldedPrefixLen(line[i:], needle); ok {
			ranges = append(ranges, [2]int{i, i + n})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return ranges
}

// foldedPrefixLen reports whether text, lowercased rune by rune, begins
// with needle. It returns the byte length of the matching prefix in the
// original text, keeping the boundary valid for slicing text directly.
func foldedPrefixLen(text, needle string) (int, bool) {
	consumed := 0
	i := 0
	for consumed < len(needle) {
		if i >= len(text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		low := string(unicode.ToLower(r))
		if !strings.HasPrefix(needle[consumed:], low) {
			return 0, false
		}
		consumed += len(low)
		i += size
	}
	return i, true
}

// Highlight wraps every occurrence of query in line using wrap, leaving the
// rest of the line untouched. Case folding follows MatchRanges.
func Highlight(line, query string, fold bool, wrap func(string) string) string {
	ranges := MatchRanges(line, query, fold)
	if len(ranges) == 0 {
		return line
	}
	var b strings.Builder
	prev := 0
	for _, r := range ranges {
		b.WriteString(line[prev:r[0]])
		b.WriteString(wrap(line[r[0]:r[1]]))
		prev = r[1]
	}
	b.WriteString(line[prev:])
	return b.String()
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}
