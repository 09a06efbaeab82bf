package scheduler

import (
	"context"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type waitlistSweeper interface {
	ExpireOverdue(ctx context.Context) ([]*domain.WaitlistEntry, error)
	SendReminders(ctx context.Context) (int, error)
}

// Scheduler periodically expires overdue waitlist entries and sends reminder
// notifications for entries still waiting.
type Scheduler struct {
	waitlistService waitlistSweeper
	interval        time.Duration
	logger          logger.Logger
}

func New(
	waitlistService waitlistSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		waitlistService: waitlistService,
		interval:        interval,
		logger:          logger,
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
	expired, err := s.waitlistService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue waitlist entries",
			logger.String("error", err.Error()),
		)
	}

	for _, e := range expired {
		s.logger.Info("waitlist entry expired",
			logger.String("waitlist_id", e.WaitlistID.String()),
			logger.String("guest_id", e.GuestID.String()),
			logger.String("room_type_id", e.RoomTypeID),
		)
	}

	sent, err := s.waitlistService.SendReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send waitlist reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("waitlist reminders dispatched",
			logger.Int("count", sent),
		)
	}
}
