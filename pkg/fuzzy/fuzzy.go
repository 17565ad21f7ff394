// Package fuzzy states the resolver's fuzzy-match seam and ships a
// default in-memory implementation. Index is the external collaborator
// the core calls through; LevenshteinIndex is the bundled engine a
// deployment can swap out without touching the resolver core.
package fuzzy

import "context"

// Candidate is one approximate match returned by the fuzzy index.
// Missing distances default to 0 when serialized -- the zero value
// already satisfies that.
type Candidate struct {
	Term                 string
	StemEditDistance     int
	VerbatimEditDistance int
}

// Index is the external fuzzy-match collaborator:
// findMatches(term, filter) -> Candidate[]. The core treats the
// returned slice as already ordered by the index's own relevance and
// never re-sorts it.
type Index interface {
	FindMatches(ctx context.Context, term string, filter map[int]struct{}) ([]Candidate, error)
}
