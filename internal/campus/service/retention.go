package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

// DefaultRetentionWindow is how long a query lives before the sweep removes it.
const DefaultRetentionWindow = 7 * 24 * time.Hour

// RetentionService removes queries (and their comments) past the retention window.
type RetentionService struct {
	Store  store.Store
	Window time.Duration
	Clock  Clock
}

// EffectiveWindow returns Window, or DefaultRetentionWindow when unset.
func (s *RetentionService) EffectiveWindow() time.Duration {
	if s.Window <= 0 {
		return DefaultRetentionWindow
	}
	return s.Window
}

// Sweep deletes every query created before now-Window and returns how many
// queries were removed. Each query goes in its own transaction so a failure
// part-way keeps what was already swept.
func (s *RetentionService) Sweep(ctx context.Context) (int, error) {
	cutoff := s.Clock.now().Add(-s.EffectiveWindow())

	ids, err := s.Store.Queries().ListQueryIDsCreatedBefore(ctx, cutoff)
	if err != nil {
		metrics.RecordRetentionSweep(0, err)
		return 0, fmt.Errorf("list expired queries: %w", err)
	}

	deleted := 0
	for _, id := range ids {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			return deleteQueryTx(ctx, tx, id)
		})
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, ErrQueryNotFound):
			// removed concurrently by its owner
		default:
			metrics.RecordRetentionSweep(deleted, err)
			return deleted, fmt.Errorf("delete query %s: %w", id, err)
		}
	}

	metrics.RecordRetentionSweep(deleted, nil)
	return deleted, nil
}
