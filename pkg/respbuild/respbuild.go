// Package respbuild implements ResponseBuilder: the mapping from a
// classified split (plus an optional fuzzy candidate) to the wire
// Response/Result shape, centralizing the UUID and partial-flag
// invariants in one place.
package respbuild

import (
	"github.com/gnames/gnresolve/pkg/fuzzy"
	"github.com/gnames/gnresolve/pkg/namesplit"
	"github.com/gnames/gnresolve/pkg/resolved"
	"github.com/google/uuid"
)

// Survives reports whether a matched term passes the caller's
// data-source filter. It centralizes CanonicalIndex.Intersects so this
// package never branches on filter emptiness itself.
type Survives func(term string) bool

// Empty builds the Response for an input that produced no match at all:
// a parse failure, an index miss with no recursion left to try, or a
// non-advanced miss.
func Empty(inputID uuid.UUID) resolved.Response {
	return resolved.Response{InputID: inputID}
}

func nameFor(term string) resolved.Name {
	return resolved.Name{ID: resolved.UuidGen(term), Value: term}
}

// GenusOnly builds the Response for a genus-only degraded split: the
// index is re-consulted directly (no fuzzy search) and, on a hit, a
// single Result is emitted with MatchKind.Partial forced to false. This
// is an intentional wire-contract exception: the split's IsOriginal is
// already false at this point, but the documented behavior reports
// partial=false anyway.
func GenusOnly(split namesplit.Split, survives Survives) resolved.Response {
	resp := resolved.Response{InputID: split.Parsed.InputID()}
	if survives(split.Partial) {
		resp.Results = []resolved.Result{{
			NameMatched: nameFor(split.Partial),
			MatchKind:   resolved.CanonicalMatch{},
		}}
	}
	return resp
}

// ExactHit builds the Response for a split whose partial intersected the
// index directly. Partial is true iff the split has been shortened at
// least once (IsOriginal==false); both edit distances are 0.
func ExactHit(split namesplit.Split) resolved.Response {
	return resolved.Response{
		InputID: split.Parsed.InputID(),
		Results: []resolved.Result{{
			NameMatched: nameFor(split.Partial),
			MatchKind:   resolved.CanonicalMatch{Partial: !split.IsOriginal},
		}},
	}
}

// FuzzyHits builds the Response for a split whose fuzzy probe returned at
// least one useful candidate, keeping only candidates whose term itself
// survives the filter and preserving FuzzyProbe's candidate order.
func FuzzyHits(split namesplit.Split, candidates []fuzzy.Candidate, survives Survives) resolved.Response {
	resp := resolved.Response{InputID: split.Parsed.InputID()}
	for _, c := range candidates {
		if !survives(c.Term) {
			continue
		}
		resp.Results = append(resp.Results, resolved.Result{
			NameMatched: nameFor(c.Term),
			MatchKind: resolved.CanonicalMatch{
				Partial:              !split.IsOriginal,
				StemEditDistance:     c.StemEditDistance,
				VerbatimEditDistance: c.VerbatimEditDistance,
			},
		})
	}
	return resp
}

// HasUsefulCandidates reports whether at least one candidate's term
// survives the filter. For an empty filter, survives already reduces
// to "is this term indexed at all", which candidates are guaranteed to
// satisfy since they came from the index -- so this one rule covers
// both cases.
func HasUsefulCandidates(candidates []fuzzy.Candidate, survives Survives) bool {
	for _, c := range candidates {
		if survives(c.Term) {
			return true
		}
	}
	return false
}
