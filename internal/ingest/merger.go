package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/panjf2000/ants/v2"
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"go.uber.org/zap"
)

const defaultWorkers = 4

// Merger runs all configured sources, merges their output in declared source
// order and deduplicates the result.
type Merger struct {
	sources  []Source
	workers  int
	progress bool
	logger   *zap.Logger
}

type MergerOption func(*Merger)

// WithWorkers sets the collection pool size.
func WithWorkers(n int) MergerOption {
	return func(m *Merger) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithProgress toggles the terminal progress bar.
func WithProgress(enabled bool) MergerOption {
	return func(m *Merger) {
		m.progress = enabled
	}
}

func NewMerger(sources []Source, logger *zap.Logger, opts ...MergerOption) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Merger{
		sources: sources,
		workers: defaultWorkers,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run collects every source concurrently, then merges results in declared
// source order so the deduplication first-seen rule is deterministic.
// A failing source is logged and skipped; the run continues with the rest.
func (m *Merger) Run(ctx context.Context) ([]*catalog.Posting, error) {
	pool, err := ants.NewPool(m.workers)
	if err != nil {
		return nil, fmt.Errorf("creating collection pool: %w", err)
	}
	defer pool.Release()

	var bar *pb.ProgressBar
	if m.progress {
		bar = pb.StartNew(len(m.sources))
	}

	results := make([][]*catalog.Posting, len(m.sources))

	var wg sync.WaitGroup
	for i, source := range m.sources {
		wg.Add(1)

		submitErr := pool.Submit(func() {
			defer wg.Done()
			if bar != nil {
				defer bar.Increment()
			}

			items, err := source.Collect(ctx)
			if err != nil {
				m.logger.Warn("source collection failed",
					zap.String("source", source.Name()),
					zap.Error(err),
				)
				return
			}

			m.logger.Info("collected postings",
				zap.String("source", source.Name()),
				zap.Int("count", len(items)),
			)
			results[i] = items
		})
		if submitErr != nil {
			wg.Done()
			m.logger.Warn("submitting source collection failed",
				zap.String("source", source.Name()),
				zap.Error(submitErr),
			)
		}
	}
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}

	var merged []*catalog.Posting
	for _, items := range results {
		merged = append(merged, items...)
	}

	unique := Deduplicate(merged, m.logger)

	m.logger.Info("merge complete",
		zap.Int("collected", len(merged)),
		zap.Int("unique", len(unique)),
	)

	return unique, nil
}

// Save writes the merged catalog plus a small plain-text summary next to it.
func Save(path string, items []*catalog.Posting, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := catalog.WriteFile(path, &catalog.Postings{Items: items}); err != nil {
		return err
	}

	logger.Info("saved catalog", zap.String("path", path), zap.Int("count", len(items)))

	summaryPath := strings.TrimSuffix(path, ".csv") + "_summary.txt"
	summary := fmt.Sprintf("INTERNSHIP SCRAPING SUMMARY\n%s\n\nTotal Internships: %d\n",
		strings.Repeat("=", 50), len(items))

	if err := os.WriteFile(summaryPath, []byte(summary), 0o644); err != nil {
		logger.Warn("writing summary failed", zap.String("path", summaryPath), zap.Error(err))
	}

	return nil
}
