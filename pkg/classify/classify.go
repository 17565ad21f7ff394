// Package classify implements ExactClassifier: the single
// pass that partitions a batch of NameSplits into genus-only degraded
// candidates, exact hits, and the fuzzy queue.
package classify

import (
	"github.com/gnames/gnresolve/pkg/canonidx"
	"github.com/gnames/gnresolve/pkg/namesplit"
)

// Batch is the partitioned output of Classify.
type Batch struct {
	// GenusOnly holds splits shortened down to a single token (uninomial,
	// not original). These are reported as genus-only degraded matches,
	// never fed to fuzzy search.
	GenusOnly []namesplit.Split

	// ExactHit holds primarySet splits whose partial intersects the index
	// under the caller's filter.
	ExactHit []namesplit.Split

	// FuzzyQueue holds primarySet splits that missed the index exactly.
	FuzzyQueue []namesplit.Split
}

// Classify partitions batch against index under filter, applying the
// tie-break rule: a uninomial, non-original
// split always routes to GenusOnly, regardless of whether it would have
// hit exactly.
func Classify(batch []namesplit.Split, filter map[int]struct{}, index *canonidx.Index) Batch {
	var out Batch
	for _, s := range batch {
		switch {
		case !s.IsOriginal && s.Size() <= 1:
			// size==1: a split shortened down to its genus. size==0: an
			// original uninomial that missed both exact and fuzzy lookup and
			// was shortened in advanced mode; index.Intersects("", filter)
			// is always false, so it yields an empty Response.
			out.GenusOnly = append(out.GenusOnly, s)
		case (s.IsOriginal && s.IsUninomial()) || s.Size() > 1:
			if index.Intersects(s.Partial, filter) {
				out.ExactHit = append(out.ExactHit, s)
			} else {
				out.FuzzyQueue = append(out.FuzzyQueue, s)
			}
		default:
			// s.IsOriginal && s.Size() == 0: only reachable if a caller built
			// a Split from a parse with an empty canonical instead of
			// reporting a parse failure upstream. Treat the same as an
			// exhausted shortening.
			out.GenusOnly = append(out.GenusOnly, s)
		}
	}
	return out
}
