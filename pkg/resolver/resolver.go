// Package resolver implements the Resolver state machine: the two
// operations (ResolveFromPartials, Resolve) that drive a batch of names
// through classification, exact lookup and fuzzy probing down to a
// Response per input.
package resolver

import (
	"context"

	"github.com/gnames/gnresolve/pkg/canonidx"
	"github.com/gnames/gnresolve/pkg/classify"
	"github.com/gnames/gnresolve/pkg/fuzzy"
	"github.com/gnames/gnresolve/pkg/nameparse"
	"github.com/gnames/gnresolve/pkg/namesplit"
	"github.com/gnames/gnresolve/pkg/respbuild"
	"github.com/gnames/gnresolve/pkg/resolved"
)

// Resolver wires the read-only CanonicalIndex and external FuzzyIndex
// together with a name parser. All three collaborators are safe for
// concurrent use once constructed, so a single Resolver serves many
// concurrent Resolve calls.
type Resolver struct {
	Index       *canonidx.Index
	Fuzzy       fuzzy.Index
	Parser      nameparse.Parser
	Concurrency int
}

// New builds a Resolver from its three collaborators. concurrency bounds
// how many fuzzy probes run at once per Resolve call; 0 means
// unbounded.
func New(index *canonidx.Index, fz fuzzy.Index, parser nameparse.Parser, concurrency int) *Resolver {
	return &Resolver{Index: index, Fuzzy: fz, Parser: parser, Concurrency: concurrency}
}

// ToFilterSet converts a list of data-source ids into the set form the
// core uses throughout. An empty or nil ids means "accept any source"
// and is reported back as a nil filter.
func ToFilterSet(ids []int) map[int]struct{} {
	if len(ids) == 0 {
		return nil
	}
	filter := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		filter[id] = struct{}{}
	}
	return filter
}

// ResolveFromPartials executes one level of the resolver's recursion:
// classify batch, emit genus-only and exact-hit Responses directly,
// probe the fuzzy queue, and either emit fuzzy-hit Responses or -- in
// advanced mode -- shorten and recurse on whatever had no useful
// candidate. Order of the returned Responses does not mirror batch's
// order; callers join by InputID.
func (r *Resolver) ResolveFromPartials(ctx context.Context, batch []namesplit.Split, filter map[int]struct{}, advanced bool) ([]resolved.Response, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	parts := classify.Classify(batch, filter, r.Index)
	survives := func(term string) bool { return r.Index.Intersects(term, filter) }

	responses := make([]resolved.Response, 0, len(batch))
	for _, g := range parts.GenusOnly {
		responses = append(responses, respbuild.GenusOnly(g, survives))
	}
	for _, e := range parts.ExactHit {
		responses = append(responses, respbuild.ExactHit(e))
	}

	if len(parts.FuzzyQueue) > 0 {
		probe := &fuzzy.Probe{Index: r.Fuzzy, Concurrency: r.Concurrency}
		outcomes, err := probe.Run(ctx, parts.FuzzyQueue, filter)
		if err != nil {
			return nil, fuzzyProbeError(err)
		}

		var retry []namesplit.Split
		for _, o := range outcomes {
			switch {
			case respbuild.HasUsefulCandidates(o.Candidates, survives):
				responses = append(responses, respbuild.FuzzyHits(o.Split, o.Candidates, survives))
			case advanced:
				retry = append(retry, o.Split.Shorten())
			default:
				responses = append(responses, respbuild.Empty(o.Split.Parsed.InputID()))
			}
		}

		if len(retry) > 0 {
			rest, err := r.ResolveFromPartials(ctx, retry, filter, advanced)
			if err != nil {
				return nil, err
			}
			responses = append(responses, rest...)
		}
	}

	assertResponseCount(len(responses), len(batch))
	return responses, nil
}

// Resolve parses every raw input, resolves the successful parses through
// ResolveFromPartials, and reassembles a Response per input in the
// caller's original order. In non-advanced mode, Results whose
// CanonicalMatch carries both edit distances at 0 are stripped from the
// output afterward: non-advanced callers asked for the fuzzy tier only,
// so exact hits (genus-only and direct alike, which share that same
// zero-distance shape) are suppressed from what they see.
func (r *Resolver) Resolve(ctx context.Context, raws []string, dataSourceIDs []int, advanced bool) ([]resolved.Response, error) {
	filter := ToFilterSet(dataSourceIDs)

	order := make([]resolved.Response, len(raws))
	pending := make(map[int]nameparse.Parsed, len(raws))
	var splits []namesplit.Split

	for i, raw := range raws {
		p, err := r.Parser.Parse(ctx, raw)
		if err != nil {
			return nil, parseError(err)
		}
		if _, ok := p.Canonical(); !ok {
			order[i] = respbuild.Empty(p.InputID())
			continue
		}
		pending[i] = p
		splits = append(splits, namesplit.FromParsed(p))
	}

	resolvedResponses, err := r.ResolveFromPartials(ctx, splits, filter, advanced)
	if err != nil {
		return nil, err
	}

	byInputID := make(map[string]resolved.Response, len(resolvedResponses))
	for _, resp := range resolvedResponses {
		byInputID[resp.InputID.String()] = resp
	}
	for i, p := range pending {
		resp, ok := byInputID[p.InputID().String()]
		if !ok {
			assertResponseCount(0, 1)
		}
		order[i] = resp
	}

	if !advanced {
		stripExactMatches(order)
	}
	return order, nil
}

// stripExactMatches removes Results whose CanonicalMatch has both edit
// distances at 0, in place. It always allocates a fresh Results slice
// per Response rather than reslicing in place, since duplicate raw
// inputs can make two Responses share the same underlying array.
func stripExactMatches(responses []resolved.Response) {
	for i, resp := range responses {
		var kept []resolved.Result
		for _, res := range resp.Results {
			cm, ok := res.MatchKind.(resolved.CanonicalMatch)
			if ok && cm.StemEditDistance == 0 && cm.VerbatimEditDistance == 0 {
				continue
			}
			kept = append(kept, res)
		}
		responses[i].Results = kept
	}
}
