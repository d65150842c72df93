// Package filter selects which scan results are printed while a scan runs.
package filter

import "github.com/maxvaer/dirscan/internal/scanner"

// StatusFilter passes only results whose status code is in the include set.
// ERROR and TIMEOUT outcomes carry no status code and are always filtered.
type StatusFilter struct {
	include map[int]struct{}
}

// NewStatusFilter creates a status code filter letting only include through.
func NewStatusFilter(include []int) *StatusFilter {
	f := &StatusFilter{include: make(map[int]struct{}, len(include))}
	for _, code := range include {
		f.include[code] = struct{}{}
	}
	return f
}

// ShouldFilter reports whether result is kept out of the live output.
func (f *StatusFilter) ShouldFilter(result *scanner.Result) bool {
	if !result.Outcome.IsStatus() {
		return true
	}
	_, ok := f.include[result.Outcome.Code]
	return !ok
}
