package fuzzy

import (
	"context"

	"github.com/gnames/gnresolve/pkg/namesplit"
	"golang.org/x/sync/errgroup"
)

// Outcome pairs a split that missed the index exactly with whatever the
// fuzzy Index returned for it.
type Outcome struct {
	Split      namesplit.Split
	Candidates []Candidate
}

// Probe drives Index.FindMatches across a batch of splits, bounding
// concurrency with an errgroup.SetLimit sized to JobsNumber.
type Probe struct {
	Index       Index
	Concurrency int
}

// Run calls FindMatches for every split in batch and returns one Outcome
// per split, in batch order. A query's own candidate order is always
// whatever Index.FindMatches returned -- concurrency across splits never
// reorders a single split's candidates.
func (p *Probe) Run(ctx context.Context, batch []namesplit.Split, filter map[int]struct{}) ([]Outcome, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	out := make([]Outcome, len(batch))
	g, ctx := errgroup.WithContext(ctx)
	if p.Concurrency > 0 {
		g.SetLimit(p.Concurrency)
	}

	for i, split := range batch {
		g.Go(func() error {
			cands, err := p.Index.FindMatches(ctx, split.Partial, filter)
			if err != nil {
				return err
			}
			out[i] = Outcome{Split: split, Candidates: cands}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
