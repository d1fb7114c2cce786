package catalog

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Store holds the in-memory catalog snapshot. The snapshot is replaced
// atomically on reload, so concurrent readers always observe a complete
// catalog and never a half-loaded one.
type Store struct {
	path     string
	logger   *zap.Logger
	snapshot atomic.Pointer[Postings]
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{path: path, logger: logger}
	s.snapshot.Store(&Postings{})
	return s
}

// Load reads the catalog file and swaps it in as the current snapshot.
// A missing file leaves the store empty.
func (s *Store) Load() error {
	postings, err := ReadFile(s.path)
	if err != nil {
		return err
	}

	s.snapshot.Store(postings)

	if postings.Len() == 0 {
		s.logger.Warn("catalog is empty", zap.String("path", s.path))
		return nil
	}

	s.logger.Info("loaded catalog",
		zap.String("path", s.path),
		zap.Int("count", postings.Len()),
	)
	return nil
}

// Reload re-reads the catalog file, useful after an ingestion run.
func (s *Store) Reload() error {
	return s.Load()
}

// Snapshot returns the current catalog. The returned collection is read-only
// and remains valid even if the store is reloaded concurrently.
func (s *Store) Snapshot() *Postings {
	return s.snapshot.Load()
}

func (s *Store) Len() int {
	return s.Snapshot().Len()
}

func (s *Store) Path() string {
	return s.path
}
