package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reservationSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
	ResendNotifications(ctx context.Context) (int, error)
}

// Sweeper periodically reclaims expired holds and retries failed
// notifications through the same coordinator entry points interactive
// requests use. Expiry has no per-request timers; this loop is the only
// enforcement point.
type Sweeper struct {
	reservations reservationSweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations reservationSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	reclaimed, err := s.reservations.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
		)
	} else if reclaimed > 0 {
		s.logger.Info("expiry sweep reclaimed rooms",
			logger.Int("rooms", reclaimed),
		)
	}

	resent, err := s.reservations.ResendNotifications(ctx)
	if err != nil {
		s.logger.Error("notification resend failed",
			logger.String("error", err.Error()),
		)
	} else if resent > 0 {
		s.logger.Info("notifications re-dispatched",
			logger.Int("count", resent),
		)
	}
}
