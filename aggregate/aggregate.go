// Package aggregate orchestrates the catalog refresh. It fans fetches out
// across the registered sources, joins the results in registry order,
// de-duplicates candidates by name, and persists new standards.
package aggregate

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/gostcat"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds each origin's fetch. A timed-out origin is
// treated exactly like a failed one: it contributes nothing and does not
// abort its siblings.
const DefaultFetchTimeout = 60 * time.Second

// Ensure Aggregator implements gostcat.Collector at compile time.
var _ gostcat.Collector = (*Aggregator)(nil)

// Aggregator runs the registered sources and merges their output.
type Aggregator struct {
	Sources   gostcat.SourceRegistry
	Standards gostcat.StandardService

	// Limiter rate-limits requests per origin host. Optional.
	Limiter gostcat.DomainLimiter

	// Logger receives per-origin fetch summaries. Defaults to slog.Default.
	Logger *slog.Logger

	// Concurrency bounds the fetch worker pool. Defaults to 4.
	Concurrency int

	// FetchTimeout bounds each origin's fetch. Defaults to DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// OriginResult describes one origin's contribution to a refresh.
type OriginResult struct {
	Name    string
	BaseURL string
	Fetched int
	Err     error
}

// Report describes the outcome of a refresh run.
type Report struct {
	// RunID correlates the run's log lines.
	RunID string

	// Origins holds the per-origin breakdown in registry order.
	Origins []OriginResult

	Fetched  int // candidates fetched across all origins
	Dropped  int // candidates dropped for an empty name
	Unique   int // candidates remaining after de-duplication
	Inserted int // records actually stored
}

// originResult pairs a source with its fetch outcome.
type originResult struct {
	source    gostcat.Source
	standards []gostcat.Standard
	err       error
}

// FetchOne fetches candidates from a single source, logging a summary.
// Errors are contained: partial records come back and the error is logged
// with the origin identity.
func (a *Aggregator) FetchOne(ctx context.Context, src gostcat.Source) []gostcat.Standard {
	res := a.fetchSource(ctx, src)
	a.logResult(res)
	return res.standards
}

// FetchAll fetches candidates from every registered source and returns
// them concatenated in registry order. Origin failures are contained and
// logged; FetchAll itself never fails.
func (a *Aggregator) FetchAll(ctx context.Context) ([]gostcat.Standard, error) {
	var all []gostcat.Standard
	for _, res := range a.fetchSources(ctx) {
		a.logResult(res)
		all = append(all, res.standards...)
	}
	return all, nil
}

// MergeAndPersist runs a full refresh: fetch from every source,
// de-duplicate by trimmed name (first occurrence in registry order wins),
// and insert the genuinely new records. The returned report carries the
// per-origin breakdown; the only error it returns is a store failure.
func (a *Aggregator) MergeAndPersist(ctx context.Context) (*Report, error) {
	results := a.fetchSources(ctx)
	for _, res := range results {
		a.logResult(res)
	}
	return a.mergeAndPersist(ctx, results)
}

// RefreshSource refreshes the catalog from a single source.
func (a *Aggregator) RefreshSource(ctx context.Context, src gostcat.Source) (*Report, error) {
	res := a.fetchSource(ctx, src)
	a.logResult(res)
	return a.mergeAndPersist(ctx, []originResult{res})
}

// fetchSources runs one bounded worker per source and joins before
// returning. Results are indexed by registry position so the merge order
// is deterministic regardless of completion order.
func (a *Aggregator) fetchSources(ctx context.Context) []originResult {
	sources := a.Sources.All()
	results := make([]originResult, len(sources))

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = a.fetchSource(ctx, src)
			return nil
		})
	}
	// Join point: merging begins only after every fetch completes or
	// times out.
	_ = g.Wait()

	return results
}

// fetchSource fetches one origin with a bounded wait, containing panics
// so a defective source cannot take down the refresh.
func (a *Aggregator) fetchSource(ctx context.Context, src gostcat.Source) (res originResult) {
	res.source = src
	defer func() {
		if p := recover(); p != nil {
			res.err = gostcat.Errorf(gostcat.EINTERNAL, "source %s panicked: %v", src.Name(), p)
		}
	}()

	timeout := a.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.Limiter != nil {
		if host := hostOf(src.BaseURL()); host != "" {
			if err := a.Limiter.Wait(ctx, host); err != nil {
				res.err = err
				return res
			}
		}
	}

	res.standards, res.err = src.Fetch(ctx)
	return res
}

// mergeAndPersist de-duplicates the fetched candidates and stores the new
// ones. Candidates with an empty trimmed name are dropped and counted.
func (a *Aggregator) mergeAndPersist(ctx context.Context, results []originResult) (*Report, error) {
	report := &Report{RunID: uuid.New().String()}

	seen := make(map[string]bool)
	var unique []gostcat.Standard
	for _, res := range results {
		report.Origins = append(report.Origins, OriginResult{
			Name:    res.source.Name(),
			BaseURL: res.source.BaseURL(),
			Fetched: len(res.standards),
			Err:     res.err,
		})
		report.Fetched += len(res.standards)

		for _, std := range res.standards {
			std.Name = strings.TrimSpace(std.Name)
			if std.Name == "" {
				report.Dropped++
				continue
			}
			if seen[std.Name] {
				continue
			}
			seen[std.Name] = true
			unique = append(unique, std)
		}
	}
	report.Unique = len(unique)

	inserted, err := a.Standards.UpsertStandards(ctx, unique)
	report.Inserted = inserted
	if err != nil {
		return report, err
	}

	a.logger().Info("refresh complete",
		"run_id", report.RunID,
		"fetched", report.Fetched,
		"dropped", report.Dropped,
		"unique", report.Unique,
		"inserted", report.Inserted,
	)

	return report, nil
}

func (a *Aggregator) logResult(res originResult) {
	a.logger().Info("source fetch",
		"source", res.source.Name(),
		"count", len(res.standards),
		"err", res.err,
	)
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// hostOf extracts the host from an origin base URL.
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}
