package parserpool

import (
	"context"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnresolve/pkg/nameparse"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Adapter wraps a Pool to satisfy nameparse.Parser. It always parses
// under nomcode.Zoological, gnparser's own default code, since the
// resolver core works from the parsed canonical form and does not
// distinguish nomenclatural codes itself.
type Adapter struct {
	pool Pool
}

// NewAdapter wraps pool as a nameparse.Parser.
func NewAdapter(pool Pool) nameparse.Parser {
	return &Adapter{pool: pool}
}

// Parse implements nameparse.Parser.
func (a *Adapter) Parse(ctx context.Context, raw string) (nameparse.Parsed, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	out, err := a.pool.Parse(raw, nomcode.Zoological)
	if err != nil {
		return nil, err
	}
	return parsedName{out: out, raw: raw}, nil
}

// parsedName adapts gnparser's parsed.Parsed to nameparse.Parsed.
type parsedName struct {
	out parsed.Parsed
	raw string
}

// InputID derives the input's id from gnparser's own verbatim id when it
// produced one, falling back to hashing the raw input string directly.
func (p parsedName) InputID() uuid.UUID {
	if id, err := uuid.Parse(p.out.VerbatimID); err == nil {
		return id
	}
	return gnuuid.New(p.raw)
}

// Canonical reports the parser's simple canonical form. ok is false
// when the name failed to parse or produced no canonical at all.
func (p parsedName) Canonical() (string, bool) {
	if !p.out.Parsed || p.out.Canonical == nil || p.out.Canonical.Simple == "" {
		return "", false
	}
	return p.out.Canonical.Simple, true
}
