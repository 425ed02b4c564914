// internal/strategyfactory/factory.go

// Package strategyfactory selects the line-matching strategy for a run.
package strategyfactory

import "github.com/mwiater/linegrep/internal/search"

// New maps the ignore-case flag to the matching strategy. The mapping is
// total: every flag value yields a usable strategy.
func New(ignoreCase bool) search.Strategy {
	if ignoreCase {
		return search.CaseInsensitive{}
	}
	return search.CaseSensitive{}
}
