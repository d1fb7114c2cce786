package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"go.uber.org/zap"
)

// Scheduler periodically re-runs the merge and reloads the store so a
// long-running chat session serves fresh postings. Cycles never overlap: a
// tick that fires while the previous cycle is still collecting is skipped, so
// two cycles can never write the catalog file at the same time.
type Scheduler struct {
	cron    *cron.Cron
	merger  *Merger
	store   *catalog.Store
	output  string
	spec    string
	logger  *zap.Logger
	running sync.Mutex
}

func NewScheduler(merger *Merger, store *catalog.Store, output string, every time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		merger: merger,
		store:  store,
		output: output,
		spec:   fmt.Sprintf("@every %s", every),
		logger: logger,
	}
}

// Start registers the job and starts the scheduler. One run fires immediately
// so the catalog is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("registering cron job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("ingestion scheduler started", zap.String("spec", s.spec))

	go s.run(ctx)

	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("ingestion scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if !s.running.TryLock() {
		s.logger.Info("previous ingestion cycle still running, skipping")
		return
	}
	defer s.running.Unlock()

	s.logger.Info("ingestion cycle started")

	items, err := s.merger.Run(ctx)
	if err != nil {
		s.logger.Error("ingestion cycle failed", zap.Error(err))
		return
	}

	if err := Save(s.output, items, s.logger); err != nil {
		s.logger.Error("saving catalog failed", zap.Error(err))
		return
	}

	if s.store != nil {
		if err := s.store.Reload(); err != nil {
			s.logger.Error("reloading store failed", zap.Error(err))
		}
	}

	s.logger.Info("ingestion cycle complete", zap.Int("count", len(items)))
}
