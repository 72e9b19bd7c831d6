package artic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
)

// Strategy selects how the Gatherer walks the listing.
type Strategy string

const (
	// StrategySequential fetches display-sized pages one after another and
	// stops as soon as enough records are in hand.
	StrategySequential Strategy = "sequential"

	// StrategyWave fetches ceil(n/batchSize) large pages concurrently and
	// joins them once every request has settled.
	StrategyWave Strategy = "wave"
)

// ErrInvalidCount is returned when a gather is asked for fewer than one record.
var ErrInvalidCount = errors.New("count must be at least 1")

var gathersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "artic_gathers_total",
	Help: "Bulk gathers by strategy and outcome",
}, []string{"strategy", "outcome"})

// ParseStrategy converts a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategySequential:
		return StrategySequential, nil
	case StrategyWave, "":
		return StrategyWave, nil
	default:
		return "", fmt.Errorf("unknown gather strategy %q", s)
	}
}

// ParseCount parses the free-text bulk input. It accepts a base-10 integer
// of at least 1, surrounded by optional whitespace.
func ParseCount(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// GatherConfig holds Gatherer settings.
type GatherConfig struct {
	// Strategy picks sequential or wave fetching.
	Strategy Strategy

	// PageSize is the page size of sequential fetches.
	PageSize int

	// BatchSize is the page size of wave fetches, at most MaxLimit.
	BatchSize int

	// MaxConcurrency bounds in-flight wave requests.
	MaxConcurrency int
}

// DefaultGatherConfig returns the configuration matching the table defaults.
func DefaultGatherConfig() GatherConfig {
	return GatherConfig{
		Strategy:       StrategyWave,
		PageSize:       DefaultPageSize,
		BatchSize:      MaxLimit,
		MaxConcurrency: 4,
	}
}

// Gatherer acquires the first n records of the listing across as many pages
// as needed.
//
// The result keeps upstream page order and within-page order and is cut to
// exactly n records when the upstream has that many. A failed request ends
// the gather: the records gathered before the failed page are returned
// together with the error.
//
// Example:
//
//	g := artic.NewGatherer(client, artic.DefaultGatherConfig(), func(e artic.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	rows, err := g.Gather(ctx, 25)
//	// len(rows) == min(25, total upstream records); err != nil only on failure
type Gatherer struct {
	fetcher    PageFetcher
	config     GatherConfig
	onProgress func(ProgressEvent)
	logger     zerolog.Logger
}

// NewGatherer creates a Gatherer. Zero config fields take their defaults.
// onProgress may be nil; during a wave gather it is called from several
// goroutines at once.
func NewGatherer(fetcher PageFetcher, config GatherConfig, onProgress func(ProgressEvent)) *Gatherer {
	defaults := DefaultGatherConfig()
	if config.Strategy == "" {
		config.Strategy = defaults.Strategy
	}
	if config.PageSize <= 0 {
		config.PageSize = defaults.PageSize
	}
	if config.BatchSize <= 0 || config.BatchSize > MaxLimit {
		config.BatchSize = defaults.BatchSize
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = defaults.MaxConcurrency
	}

	return &Gatherer{
		fetcher:    fetcher,
		config:     config,
		onProgress: onProgress,
		logger:     logging.NewLogger("gatherer"),
	}
}

// Strategy returns the configured strategy.
func (g *Gatherer) Strategy() Strategy {
	return g.config.Strategy
}

// Gather returns the first n records of the listing.
//
// n below 1 returns ErrInvalidCount without issuing any request.
func (g *Gatherer) Gather(ctx context.Context, n int) ([]model.Artwork, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	g.logger.Debug().Str("strategy", string(g.config.Strategy)).Int("requested", n).Msg("gather started")

	var (
		rows []model.Artwork
		err  error
	)
	switch g.config.Strategy {
	case StrategySequential:
		rows, err = g.gatherSequential(ctx, n)
	default:
		rows, err = g.gatherWave(ctx, n)
	}
	rows = truncate(rows, n)

	if err != nil {
		gathersTotal.WithLabelValues(string(g.config.Strategy), "partial").Inc()
		g.logger.Warn().Err(err).Int("requested", n).Int("gathered", len(rows)).Msg("gather stopped early")
		g.progress(ProgressEvent{Message: fmt.Sprintf("Stopped after %d of %d records: %v", len(rows), n, err), Level: LevelWarning})
		return rows, err
	}

	gathersTotal.WithLabelValues(string(g.config.Strategy), "complete").Inc()
	g.logger.Info().Int("requested", n).Int("gathered", len(rows)).Msg("gather complete")
	g.progress(ProgressEvent{Message: fmt.Sprintf("Selected %d records", len(rows)), Level: LevelSuccess})
	return rows, nil
}

func (g *Gatherer) gatherSequential(ctx context.Context, n int) ([]model.Artwork, error) {
	var rows []model.Artwork

	for page := 1; len(rows) < n; page++ {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		result, err := g.fetcher.FetchPage(ctx, page, g.config.PageSize)
		if err != nil {
			return rows, err
		}

		rows = append(rows, result.Artworks...)
		g.progress(ProgressEvent{
			Message: fmt.Sprintf("Fetched page %d (%d/%d records)", page, min(len(rows), n), n),
			Level:   LevelVerbose,
		})

		if result.IsLast() {
			break
		}
	}

	return rows, nil
}

// gatherWave fetches page 1 to learn the upstream page count, then fetches
// the remaining pages concurrently. The page count is bounded by both n and
// the upstream, whatever n is.
func (g *Gatherer) gatherWave(ctx context.Context, n int) ([]model.Artwork, error) {
	batch := g.config.BatchSize

	first, err := g.fetcher.FetchPage(ctx, 1, batch)
	if err != nil {
		return nil, err
	}

	pages := wavePages(n, batch, first)
	g.progress(ProgressEvent{Message: fmt.Sprintf("Fetched page 1 of %d", pages), Level: LevelVerbose})
	if pages <= 1 || first.IsEmpty() {
		return first.Artworks, nil
	}

	results := make([]*model.Page, pages)
	errs := make([]error, pages)
	results[0] = first

	// No shared cancellation: every request settles before the join.
	var eg errgroup.Group
	eg.SetLimit(g.config.MaxConcurrency)

	for i := 1; i < pages; i++ {
		eg.Go(func() error {
			result, err := g.fetcher.FetchPage(ctx, i+1, batch)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = result
			g.progress(ProgressEvent{Message: fmt.Sprintf("Fetched page %d of %d", i+1, pages), Level: LevelVerbose})
			return nil
		})
	}
	_ = eg.Wait()

	var rows []model.Artwork
	for i := range pages {
		if errs[i] != nil {
			return rows, errs[i]
		}
		rows = append(rows, results[i].Artworks...)
		if results[i].IsEmpty() {
			break
		}
	}

	return rows, nil
}

// wavePages returns how many batch-sized pages cover n records, capped at
// the page count the upstream reported on page 1.
func wavePages(n, batch int, first *model.Page) int {
	pages := n / batch
	if n%batch != 0 {
		pages++
	}

	available := first.TotalPages
	if available <= 0 && first.Total > 0 {
		available = first.Total / batch
		if first.Total%batch != 0 {
			available++
		}
	}
	return max(min(pages, available), 1)
}

func (g *Gatherer) progress(event ProgressEvent) {
	if g.onProgress != nil {
		g.onProgress(event)
	}
}

func truncate(rows []model.Artwork, n int) []model.Artwork {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
