// Package ioindex implements lifecycle.IndexLoader: the two backends
// (PostgreSQL, SQLite) that stream canonical/stem/data-source rows into
// an in-memory canonidx.Index plus the fuzzy.Entry list the bundled
// Levenshtein index is built from.
package ioindex

import (
	"context"
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnresolve/pkg/canonidx"
	"github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/db"
	"github.com/gnames/gnresolve/pkg/fuzzy"
)

// indexQuery joins name_string_indices to canonicals/canonical_stems,
// skipping rows with no canonical form -- there is nothing for the
// resolver to index for those.
const indexQuery = `
	SELECT nsi.data_source_id, c.name, cs.name
	FROM name_string_indices nsi
	JOIN canonicals c ON c.id = nsi.canonical_id
	LEFT JOIN canonical_stems cs ON cs.id = nsi.canonical_stem_id
	WHERE nsi.canonical_id IS NOT NULL
`

const indexCountQuery = `
	SELECT count(*) FROM name_string_indices WHERE canonical_id IS NOT NULL
`

// PostgresLoader implements lifecycle.IndexLoader against the resolver's
// cache database (pkg/schema), streaming rows through pgxpool via the
// shared db.Operator.
type PostgresLoader struct {
	Operator db.Operator
}

// NewPostgresLoader wraps op as a lifecycle.IndexLoader.
func NewPostgresLoader(op db.Operator) *PostgresLoader {
	return &PostgresLoader{Operator: op}
}

// Load connects, streams every (data_source_id, canonical, stem) row and
// returns the built CanonicalIndex plus deduplicated fuzzy entries.
func (l *PostgresLoader) Load(ctx context.Context, cfg *config.Config) (*canonidx.Index, []fuzzy.Entry, error) {
	start := time.Now()
	if err := l.Operator.Connect(ctx, &cfg.Database); err != nil {
		return nil, nil, err
	}
	defer l.Operator.Close()

	pool := l.Operator.Pool()
	if pool == nil {
		return nil, nil, connectionError(fmt.Errorf("operator returned a nil pool"))
	}

	var total int
	if err := pool.QueryRow(ctx, indexCountQuery).Scan(&total); err != nil {
		return nil, nil, queryError(err)
	}
	if total == 0 {
		return nil, nil, emptyError()
	}

	rows, err := pool.Query(ctx, indexQuery)
	if err != nil {
		return nil, nil, queryError(err)
	}
	defer rows.Close()

	bar := pb.Full.Start(total)
	bar.Set("prefix", "Loading canonical index: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	builder := canonidx.NewBuilder()
	seen := make(map[string]struct{})
	var entries []fuzzy.Entry

	for rows.Next() {
		var dataSourceID int
		var canonical, stem string
		if err := rows.Scan(&dataSourceID, &canonical, &stem); err != nil {
			return nil, nil, scanError(err)
		}

		builder.Add(canonical, dataSourceID)
		if _, ok := seen[canonical]; !ok {
			seen[canonical] = struct{}{}
			entries = append(entries, fuzzy.Entry{Canonical: canonical, Stem: stem})
		}

		bar.Increment()
	}
	if err := rows.Err(); err != nil {
		return nil, nil, scanError(err)
	}

	gn.Message("canonical index loaded %s", gnfmt.TimeString(time.Since(start).Seconds()))
	return builder.Build(), entries, nil
}
