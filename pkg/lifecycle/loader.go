package lifecycle

import (
	"context"

	"github.com/gnames/gnresolve/pkg/canonidx"
	"github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/fuzzy"
)

// IndexLoader builds the in-memory structures the resolver core treats as
// its external, read-only collaborators: persistence of the index is
// outside the core's scope, so this is the surrounding lifecycle step
// that owns it. A Load always rebuilds from
// scratch: there is no incremental update, only a fresh snapshot taken
// once at process startup.
type IndexLoader interface {
	// Load streams canonical/stem/data-source rows from the configured
	// backend and returns a ready-to-use CanonicalIndex plus the entries
	// the bundled fuzzy.LevenshteinIndex needs.
	Load(ctx context.Context, cfg *config.Config) (*canonidx.Index, []fuzzy.Entry, error)
}
