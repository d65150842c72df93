package scanner

import "sort"

// Results groups probed paths by outcome. Paths within a bucket keep scan
// order. It is append-only and owned by a single scan.
type Results struct {
	buckets map[Outcome][]string
	total   int
}

// NewResults returns an empty grouping.
func NewResults() *Results {
	return &Results{buckets: make(map[Outcome][]string)}
}

// Add appends path to the bucket for o, creating the bucket if needed.
func (r *Results) Add(o Outcome, path string) {
	r.buckets[o] = append(r.buckets[o], path)
	r.total++
}

// Outcomes returns every outcome seen, sorted by Outcome.Less.
func (r *Results) Outcomes() []Outcome {
	out := make([]Outcome, 0, len(r.buckets))
	for o := range r.buckets {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Paths returns the paths recorded for o, in scan order.
func (r *Results) Paths(o Outcome) []string {
	return r.buckets[o]
}

// Count returns the number of paths recorded for o.
func (r *Results) Count(o Outcome) int {
	return len(r.buckets[o])
}

// Total returns the number of paths recorded across all buckets.
func (r *Results) Total() int {
	return r.total
}
