package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// HousekeepingService periodically runs the retention sweep so old queries
// are removed even when nothing calls POST /cleanup.
type HousekeepingService struct {
	Retention *RetentionService
	Logger    *slog.Logger
	Interval  time.Duration

	// Internal channels for lifecycle management
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(retention *RetentionService, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Retention: retention,
		Logger:    logger,
		Interval:  interval,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking and should be
// called after migrations have been applied.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker, waiting for an in-flight sweep to finish.
// Safe to call more than once, or without Start.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.started.Load() {
			<-s.doneCh
		}
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
	defer cancel()

	s.Logger.Debug("starting retention sweep")

	deleted, err := s.Retention.Sweep(ctx)
	if err != nil {
		s.Logger.Error("retention sweep failed", "error", err, "deleted", deleted)
		return
	}

	s.Logger.Info("retention sweep completed", "deleted", deleted)
}
