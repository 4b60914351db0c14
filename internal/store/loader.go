package store

import (
	"context"

	"github.com/hmartin/tasktally/internal/errors"
	"github.com/hmartin/tasktally/internal/seed"
	"github.com/hmartin/tasktally/internal/task"
)

// Seed runs the one-shot fetch-normalize-seed pass for this Store. The
// first call fetches the payload from source, normalizes it, and merges
// the records into the collection. Every later call is a no-op returning
// nil, regardless of how the first attempt went: the pass runs at most
// once per session even when the triggering UI lifecycle fires repeatedly.
//
// A failed fetch or an empty decode falls back to the deterministic
// synthetic set of [seed.DefaultCount] records. The failure itself is not
// returned; it is retained for display and available via SeedErr.
func (s *Store) Seed(ctx context.Context, source string) error {
	return s.SeedN(ctx, source, seed.DefaultCount)
}

// SeedN is Seed with an explicit fallback size.
func (s *Store) SeedN(ctx context.Context, source string, fallbackCount int) error {
	s.mu.Lock()
	if s.seeded {
		s.mu.Unlock()
		if s.log != nil {
			s.log.Debug("seed pass skipped", "reason", errors.ErrAlreadySeeded)
		}
		return nil
	}
	// Flag flips before the fetch, not after: a second caller racing past
	// the first must not start a second fetch.
	s.seeded = true
	s.source = source
	s.mu.Unlock()

	raws, seedErr := s.fetchRaws(ctx, source)
	if seedErr == nil && len(raws) == 0 {
		seedErr = errors.NewSeedError("seed decoded to zero records", errors.ErrSeedEmpty).WithSource(source)
	}
	if seedErr != nil {
		if s.log != nil {
			s.log.Warn("seed fetch failed, using generated fallback",
				"source", source, "error", seedErr, "retryable", errors.IsRetryable(seedErr))
		}
		raws = seed.Generate(fallbackCount)
	}

	tasks := task.Normalize(raws)

	s.mu.Lock()
	// Mutations that landed while the fetch was in flight survive the seed
	// pass: seeded records go in front of them, never over them. The undo
	// slot is left alone for the same reason.
	s.tasks = append(tasks, s.tasks...)
	s.seedErr = seedErr
	s.recomputeLocked()
	s.mu.Unlock()

	if s.log != nil {
		s.log.Info("store seeded", "source", source, "count", len(tasks), "fallback", seedErr != nil)
	}
	return nil
}

func (s *Store) fetchRaws(ctx context.Context, source string) ([]map[string]any, error) {
	data, err := seed.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return task.DecodeRaw(data), nil
}

// Seeded reports whether the one-shot seed pass has run.
func (s *Store) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

// SeedErr returns the user-facing error from the seed pass, if the fetch
// failed or decoded empty and the synthetic fallback was used. Nil when
// seeding succeeded or has not run.
func (s *Store) SeedErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedErr
}

// Source returns the seed source the store was pointed at.
func (s *Store) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}
