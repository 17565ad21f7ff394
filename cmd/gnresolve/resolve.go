package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnresolve/internal/iodb"
	"github.com/gnames/gnresolve/internal/ioindex"
	"github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/datasources"
	"github.com/gnames/gnresolve/pkg/fuzzy"
	"github.com/gnames/gnresolve/pkg/lifecycle"
	"github.com/gnames/gnresolve/pkg/parserpool"
	"github.com/gnames/gnresolve/pkg/resolved"
	"github.com/gnames/gnresolve/pkg/resolver"
	"github.com/spf13/cobra"
)

var (
	inputFile     string
	dataSourceIDs []int
	advanced      bool
)

func getResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [name ...]",
		Short: "Resolve scientific names against the canonical index",
		Long: `Resolves one or more scientific name strings to their canonical
matches: exact, genus-only, or fuzzy (via the bundled Levenshtein
index), depending on what survives the lookup.

Names come from positional arguments, --input-file, or stdin (one name
per line) when neither is given. Results print as a JSON array of
Response objects, in input order.

Use --data-sources to restrict matches to a set of data source ids
(see the bundled data-sources.yaml catalogue); omit it to match against
all sources. Use --advanced to enable recursive name-shortening on a
miss instead of giving up after the first failed lookup.`,
		RunE: runResolve,
	}

	cmd.Flags().StringVar(&inputFile, "input-file", "",
		"file of names to resolve, one per line (default: stdin if no args given)")
	cmd.Flags().IntSliceVar(&dataSourceIDs, "data-sources", nil,
		"restrict matches to these data source ids (default: all)")
	cmd.Flags().BoolVar(&advanced, "advanced", false,
		"recursively shorten unmatched names instead of giving up on the first miss")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()
	log := getLogger()

	if !cmd.Flags().Changed("advanced") {
		advanced = cfg.Resolve.Advanced
	}

	names, err := readNames(args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no names given: pass them as arguments, via --input-file, or on stdin")
	}

	catalogue, err := loadCatalogue(cfg.HomeDir)
	if err != nil {
		return err
	}
	knownIDs, unknownIDs := catalogue.Filter(dataSourceIDs)
	for _, id := range unknownIDs {
		gn.Warn("unknown data source id <em>%d</em>, ignoring", id)
	}

	var loader lifecycle.IndexLoader
	if cfg.Database.SQLitePath != "" {
		loader = ioindex.NewSQLiteLoader()
	} else {
		loader = ioindex.NewPostgresLoader(iodb.NewPgxOperator())
	}

	idx, entries, err := loader.Load(ctx, cfg)
	if err != nil {
		return err
	}

	fz := fuzzy.NewLevenshteinIndex(idx, entries, cfg.Resolve.MaxEditDistance, cfg.Resolve.MaxFuzzyCandidates)

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()
	parser := parserpool.NewAdapter(pool)

	resolveStart := time.Now()
	rs := resolver.New(idx, fz, parser, cfg.JobsNumber)
	responses, err := rs.Resolve(ctx, names, knownIDs, advanced)
	if err != nil {
		return err
	}

	logSummary(log, responses, time.Since(resolveStart))

	return printResponses(responses)
}

func readNames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r *bufio.Scanner
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = bufio.NewScanner(f)
	} else {
		r = bufio.NewScanner(os.Stdin)
	}

	var names []string
	for r.Scan() {
		line := strings.TrimSpace(r.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, r.Err()
}

func loadCatalogue(homeDir string) (*datasources.Catalogue, error) {
	return datasources.LoadFile(config.DataSourcesFilePath(homeDir))
}

func printResponses(responses []resolved.Response) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(responses)
}

func logSummary(log interface{ Info(string, ...any) }, responses []resolved.Response, elapsed time.Duration) {
	var exact, partial, fuzzyHits, misses int
	for _, r := range responses {
		if len(r.Results) == 0 {
			misses++
			continue
		}
		best := r.Results[0].MatchKind.(resolved.CanonicalMatch)
		switch {
		case best.StemEditDistance == 0 && best.VerbatimEditDistance == 0 && !best.Partial:
			exact++
		case best.Partial:
			partial++
		default:
			fuzzyHits++
		}
	}

	log.Info("resolve summary",
		"inputs", humanize.Comma(int64(len(responses))),
		"exact", humanize.Comma(int64(exact)),
		"partial", humanize.Comma(int64(partial)),
		"fuzzy", humanize.Comma(int64(fuzzyHits)),
		"misses", humanize.Comma(int64(misses)),
		"duration", gnfmt.TimeString(elapsed.Seconds()),
	)
}

