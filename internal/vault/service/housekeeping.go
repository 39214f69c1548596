package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/store"
)

// HousekeepingService periodically runs an integrity sweep over the account
// tables. Its main job is surfacing orphaned accounts: users with neither a
// password hash nor a linked identity cannot sign in at all, and historically
// they came from a broken federation linking step. Creation paths enforce the
// invariant now, so any hit here is worth an operator's attention.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker, blocking until any
// in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs the integrity checks. Read-only: it reports, it does not
// repair.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	orphans, err := s.Store.Users().CountOrphans(ctx)
	if err != nil {
		s.Logger.Error("housekeeping orphan count failed", "error", err)
		return
	}

	if orphans > 0 {
		s.Logger.Warn("accounts with no sign-in method detected",
			"count", orphans,
		)
		return
	}

	s.Logger.Debug("housekeeping sweep clean")
}
