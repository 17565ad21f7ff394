package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnresolve/internal/iodb"
	"github.com/gnames/gnresolve/internal/ioindex"
	"github.com/gnames/gnresolve/internal/ioschema"
	"github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/db"
	"github.com/gnames/gnresolve/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var createSchema bool

func getBuildIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-index",
		Short: "Load the canonical index from the cache database and report its size",
		Long: `Streams canonical/stem/data-source rows from PostgreSQL (or, with
--sqlite-path, a local SQLite cache file) into memory the same way the
resolve command does at startup, and logs a summary of what it found.

Use --create-schema to create the PostgreSQL cache schema first, for a
brand-new database. Nothing is persisted to disk: resolve rebuilds its
own in-memory index the same way on every invocation.`,
		RunE: runBuildIndex,
	}

	cmd.Flags().BoolVar(&createSchema, "create-schema", false,
		"create the PostgreSQL cache schema before loading (ignored with --sqlite-path)")

	return cmd
}

func runBuildIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()
	log := getLogger()

	var loader lifecycle.IndexLoader
	if cfg.Database.SQLitePath != "" {
		loader = ioindex.NewSQLiteLoader()
	} else {
		op := iodb.NewPgxOperator()
		if createSchema {
			if err := createCacheSchema(ctx, op, cfg); err != nil {
				return err
			}
		}
		loader = ioindex.NewPostgresLoader(op)
	}

	idx, entries, err := loader.Load(ctx, cfg)
	if err != nil {
		if gnErr, ok := err.(*gn.Error); ok {
			gn.Warn(gnErr.Msg)
		}
		return err
	}

	log.Info("canonical index loaded",
		"canonicalNames", humanize.Comma(int64(idx.Len())),
		"fuzzyEntries", humanize.Comma(int64(len(entries))),
	)
	return nil
}

func createCacheSchema(ctx context.Context, op db.Operator, cfg *config.Config) error {
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer op.Close()

	manager := ioschema.NewManager(op)
	if err := manager.Create(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
