// Package scheduler keeps a signed-in client in sync by reloading the catalog
// and the user's registrations on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type refresher interface {
	RefreshAll(ctx context.Context) error
}

type Scheduler struct {
	coordinator refresher
	interval    time.Duration
	logger      logger.Logger
}

func New(
	coordinator refresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		coordinator: coordinator,
		interval:    interval,
		logger:      logger,
	}
}

// Start blocks until ctx is done. A non-positive interval disables the loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("auto refresh disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("auto refresh started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auto refresh stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()
	if err := s.coordinator.RefreshAll(ctx); err != nil {
		s.logger.Warn("auto refresh failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("auto refresh done",
		logger.Duration("took", time.Since(started)),
	)
}
