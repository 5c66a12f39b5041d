package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trivia-cli/internal/domain"
)

// SnapshotStore persists the session snapshot to a single keyed slot
// (in-memory, file, Redis). Load reports absence with its second return;
// malformed content is the store's problem and surfaces as an error.
type SnapshotStore interface {
	Save(ctx context.Context, state domain.QuizState) error
	Load(ctx context.Context) (domain.QuizState, bool, error)
	Clear(ctx context.Context) error
}

// Snapshots is the best-effort persistence boundary. Storage failures are
// logged and swallowed: the session continues in memory, only
// resume-after-restart is degraded. Tick-driven saves are throttled to
// bound write volume; answer saves always go through.
type Snapshots struct {
	store    SnapshotStore
	log      *zap.Logger
	interval time.Duration
	clock    func() time.Time
	lastSave time.Time
}

func NewSnapshots(store SnapshotStore, log *zap.Logger, interval time.Duration) *Snapshots {
	return NewSnapshotsWithClock(store, log, interval, time.Now)
}

// NewSnapshotsWithClock allows deterministic throttling in tests.
func NewSnapshotsWithClock(store SnapshotStore, log *zap.Logger, interval time.Duration, clock func() time.Time) *Snapshots {
	if log == nil {
		log = zap.NewNop()
	}
	return &Snapshots{store: store, log: log, interval: interval, clock: clock}
}

// Save persists unconditionally.
func (s *Snapshots) Save(ctx context.Context, state domain.QuizState) {
	if err := s.store.Save(ctx, state); err != nil {
		s.log.Warn("saving quiz snapshot failed", zap.Error(err))
		return
	}
	s.lastSave = s.clock()
}

// SaveThrottled persists only if the throttle interval has elapsed since
// the last successful save.
func (s *Snapshots) SaveThrottled(ctx context.Context, state domain.QuizState) {
	if s.clock().Sub(s.lastSave) < s.interval {
		return
	}
	s.Save(ctx, state)
}

// Load returns the persisted snapshot if one exists and is well-formed.
func (s *Snapshots) Load(ctx context.Context) (domain.QuizState, bool) {
	state, ok, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("loading quiz snapshot failed", zap.Error(err))
		return domain.QuizState{}, false
	}
	return state, ok
}

// Clear removes the persisted snapshot.
func (s *Snapshots) Clear(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn("clearing quiz snapshot failed", zap.Error(err))
	}
}
