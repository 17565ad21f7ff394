package ioindex

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnresolve/pkg/canonidx"
	"github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/fuzzy"

	_ "modernc.org/sqlite"
)

// SQLiteLoader implements lifecycle.IndexLoader against a local SQLite
// cache file carrying the same canonicals/canonical_stems/
// name_string_indices subset as the PostgreSQL schema. It is the
// offline backend used for tests and demos, where standing up
// PostgreSQL is unwanted.
type SQLiteLoader struct{}

// NewSQLiteLoader creates a SQLiteLoader.
func NewSQLiteLoader() *SQLiteLoader {
	return &SQLiteLoader{}
}

// Load opens cfg.Database.SQLitePath read-only and streams the same
// join PostgresLoader runs, using modernc.org/sqlite's pure-Go driver.
func (l *SQLiteLoader) Load(ctx context.Context, cfg *config.Config) (*canonidx.Index, []fuzzy.Entry, error) {
	start := time.Now()
	path := cfg.Database.SQLitePath
	if path == "" {
		return nil, nil, connectionError(fmt.Errorf("no SQLitePath configured"))
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, connectionError(err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return nil, nil, connectionError(err)
	}

	var total int
	if err := conn.QueryRowContext(ctx, indexCountQuery).Scan(&total); err != nil {
		return nil, nil, queryError(err)
	}
	if total == 0 {
		return nil, nil, emptyError()
	}

	rows, err := conn.QueryContext(ctx, indexQuery)
	if err != nil {
		return nil, nil, queryError(err)
	}
	defer rows.Close()

	bar := pb.Full.Start(total)
	bar.Set("prefix", "Loading canonical index (sqlite): ")
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
