package services

import (
	"context"
	"time"

	"github.com/khabaroff/flabef-storefront/src/logging"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// sweeper is implemented by session stores that hold expired entries in memory
type sweeper interface {
	Sweep() int
}

// CleanupService handles automatic removal of expired recovery codes
type CleanupService struct {
	tokens   repositories.ResetTokenRepository
	sessions sweeper
	enabled  bool
	interval time.Duration
	now      func() time.Time
	done     chan struct{}
}

// NewCleanupService creates a new cleanup service; sessions may be nil
func NewCleanupService(tokens repositories.ResetTokenRepository, sessions SessionStore, enabled bool) *CleanupService {
	cs := &CleanupService{
		tokens:   tokens,
		enabled:  enabled,
		interval: time.Hour,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	if s, ok := sessions.(sweeper); ok {
		cs.sessions = s
	}
	return cs
}

// Start starts the cleanup service
func (cs *CleanupService) Start(ctx context.Context) {
	logger := logging.NewLogger("cleanup")
	if !cs.enabled {
		logger.Info().Msg("Cleanup service is disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info().Msg("Cleanup service stopped")
				return
			case <-cs.done:
				logger.Info().Msg("Cleanup service stopped")
				return
			case <-ticker.C:
				cs.Cleanup(ctx)
			}
		}
	}()

	logger.Info().Dur("interval", cs.interval).Msg("Cleanup service started")
}

// Stop stops the cleanup service
func (cs *CleanupService) Stop() {
	if !cs.enabled {
		return
	}
	close(cs.done)
}

// Cleanup deletes expired recovery codes and sessions once
func (cs *CleanupService) Cleanup(ctx context.Context) int64 {
	logger := logging.NewLogger("cleanup")

	deleted, err := cs.tokens.DeleteExpired(ctx, cs.now())
	if err != nil {
		logger.Error().Err(err).Msg("Cleanup of expired recovery codes failed")
		return 0
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("Cleanup completed: deleted expired recovery codes")
	}

	if cs.sessions != nil {
		if n := cs.sessions.Sweep(); n > 0 {
			logger.Info().Int("deleted", n).Msg("Cleanup completed: dropped expired sessions")
		}
	}
	return deleted
}
