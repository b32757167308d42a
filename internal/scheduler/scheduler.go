package scheduler

import (
	"context"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type claimReleaser interface {
	ReleaseExpired(ctx context.Context) ([]*domain.Slot, error)
}

// Scheduler periodically returns abandoned claims to the free pool. A claim
// that never received a payment proof expires after the configured TTL.
type Scheduler struct {
	bookingService claimReleaser
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService claimReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.bookingService.ReleaseExpired(ctx)
	if err != nil {
		s.logger.Error("failed to release expired claims",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, slot := range released {
		s.logger.Info("claim expired",
			logger.Int64("slot_id", slot.ID),
			logger.String("start_time", slot.FormatStart()),
		)
	}
}
