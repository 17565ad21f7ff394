package fuzzy

import (
	"context"
	"sort"

	"github.com/agext/levenshtein"
	"github.com/gnames/gnresolve/pkg/canonidx"
)

// Entry is one (canonical, stemmed canonical) pair the bundled index
// considers a candidate. Loaders populate this from the cache
// database's Canonical/CanonicalStem tables (internal/ioindex).
type Entry struct {
	Canonical string
	Stem      string
}

// LevenshteinIndex is the bundled, in-memory FuzzyIndex implementation:
// persistence and approximate matching are both out of the core's
// scope, so this is the infrastructure a deployment plugs into that
// seam. It buckets entries by stem length so
// a query only scans stems within MaxDistance of its own length, scores
// survivors with agext/levenshtein, and returns at most MaxCandidates
// results sorted by ascending verbatim edit distance.
type LevenshteinIndex struct {
	index         *canonidx.Index
	byStemLen     map[int][]Entry
	MaxDistance   int
	MaxCandidates int
}

// NewLevenshteinIndex builds a LevenshteinIndex over entries. index, when
// non-nil, is consulted so candidates are pre-filtered by data-source
// membership the same way the resolver's own survives() check does
// downstream -- both layers applying the filter is intentional
// belt-and-suspenders.
func NewLevenshteinIndex(index *canonidx.Index, entries []Entry, maxDistance, maxCandidates int) *LevenshteinIndex {
	if maxDistance <= 0 {
		maxDistance = 2
	}
	if maxCandidates <= 0 {
		maxCandidates = 5
	}

	byLen := make(map[int][]Entry, len(entries))
	for _, e := range entries {
		l := len([]rune(e.Stem))
		byLen[l] = append(byLen[l], e)
	}

	return &LevenshteinIndex{
		index:         index,
		byStemLen:     byLen,
		MaxDistance:   maxDistance,
		MaxCandidates: maxCandidates,
	}
}

// FindMatches implements Index.
func (ix *LevenshteinIndex) FindMatches(ctx context.Context, term string, filter map[int]struct{}) ([]Candidate, error) {
	queryStem := stem(term)
	qLen := len([]rune(queryStem))

	var out []Candidate
	for l := qLen - ix.MaxDistance; l <= qLen+ix.MaxDistance; l++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, e := range ix.byStemLen[l] {
			if ix.index != nil && !ix.index.Intersects(e.Canonical, filter) {
				continue
			}
			verbatim := levenshtein.Distance(term, e.Canonical, nil)
			if verbatim > ix.MaxDistance {
				continue
			}
			stemDist := levenshtein.Distance(queryStem, e.Stem, nil)
			out = append(out, Candidate{
				Term:                 e.Canonical,
				StemEditDistance:     stemDist,
				VerbatimEditDistance: verbatim,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].VerbatimEditDistance < out[j].VerbatimEditDistance
	})
	if len(out) > ix.MaxCandidates {
		out = out[:ix.MaxCandidates]
	}
	return out, nil
}

// stem normalizes a query term before bucket lookup and stem-distance
// scoring. It is an identity passthrough: candidate Entries get their
// Stem from the canonical_stems table via internal/ioindex's loader,
// but a raw query term never goes through that pipeline, and no
// morphological stemmer (gnparser's or otherwise) is wired in here.
// StemEditDistance is measured against the unstemmed query until one is.
func stem(term string) string {
	return term
}
