package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type WaitlistService struct {
	repo     ports.WaitlistRepo
	notifier ports.WaitlistNotifier
	logger   logger.Logger
}

func NewWaitlistService(repo ports.WaitlistRepo, notifier ports.WaitlistNotifier, logger logger.Logger) *WaitlistService {
	return &WaitlistService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

type AddWaitlistInput struct {
	GuestID    uuid.UUID
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	Priority   domain.Priority
}

func (s *WaitlistService) Add(ctx context.Context, input AddWaitlistInput) (*domain.WaitlistEntry, error) {
	requestedDates, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	guestCount, err := domain.NewGuestCount(input.Adults, input.Children)
	if err != nil {
		return nil, err
	}

	entry, err := domain.NewWaitlistEntry(input.GuestID, input.RoomTypeID, requestedDates, guestCount, input.Priority)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry created",
		logger.String("waitlist_id", entry.WaitlistID.String()),
		logger.String("room_type_id", entry.RoomTypeID),
		logger.String("priority", entry.Priority.String()),
	)

	return entry, nil
}

func (s *WaitlistService) GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitlistEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WaitlistService) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.WaitlistEntry, error) {
	return s.repo.ListByGuest(ctx, guestID)
}

// RoomWaitlist lists a room type's entries ranked by priority score
// descending. Tie order is not guaranteed.
func (s *WaitlistService) RoomWaitlist(ctx context.Context, roomTypeID string) ([]*domain.WaitlistEntry, error) {
	entries, err := s.repo.ListByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("list waitlist by room type: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PriorityScore() > entries[j].PriorityScore()
	})

	return entries, nil
}

func (s *WaitlistService) ActiveEntries(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	return s.repo.ListActive(ctx)
}

func (s *WaitlistService) Convert(ctx context.Context, waitlistID, reservationID uuid.UUID) (*domain.WaitlistEntry, error) {
	entry, err := s.repo.GetByID(ctx, waitlistID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	if err := entry.ConvertToReservation(reservationID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry converted",
		logger.String("waitlist_id", entry.WaitlistID.String()),
		logger.String("reservation_id", reservationID.String()),
	)

	return entry, nil
}

func (s *WaitlistService) Expire(ctx context.Context, waitlistID uuid.UUID) (*domain.WaitlistEntry, error) {
	entry, err := s.repo.GetByID(ctx, waitlistID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	if !entry.Expire() {
		s.logger.Debug("expire skipped, entry not active",
			logger.String("waitlist_id", entry.WaitlistID.String()),
			logger.String("status", string(entry.Status)),
		)
		return entry, nil
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update waitlist entry: %w", err)
	}

	return entry, nil
}

func (s *WaitlistService) ExtendExpiry(ctx context.Context, waitlistID uuid.UUID, additionalDays int) (*domain.WaitlistEntry, error) {
	entry, err := s.repo.GetByID(ctx, waitlistID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	if err := entry.ExtendExpiry(additionalDays); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update waitlist entry: %w", err)
	}

	return entry, nil
}

func (s *WaitlistService) UpgradePriority(ctx context.Context, waitlistID uuid.UUID, newPriority domain.Priority) (*domain.WaitlistEntry, error) {
	entry, err := s.repo.GetByID(ctx, waitlistID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	if !entry.UpgradePriority(newPriority) {
		s.logger.Debug("priority upgrade skipped, not an upgrade",
			logger.String("waitlist_id", entry.WaitlistID.String()),
			logger.String("current", entry.Priority.String()),
			logger.String("requested", newPriority.String()),
		)
		return entry, nil
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update waitlist entry: %w", err)
	}

	return entry, nil
}

func (s *WaitlistService) MarkNotified(ctx context.Context, waitlistID uuid.UUID) (*domain.WaitlistEntry, error) {
	entry, err := s.repo.GetByID(ctx, waitlistID)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	entry.MarkNotified()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update waitlist entry: %w", err)
	}

	return entry, nil
}

func (s *WaitlistService) EntriesToNotify(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active entries: %w", err)
	}

	var due []*domain.WaitlistEntry
	for _, entry := range active {
		if entry.ShouldNotifyAgain() {
			due = append(due, entry)
		}
	}
	return due, nil
}

// ExpireOverdue sweeps ACTIVE entries past their expiry. Called by the
// scheduler.
func (s *WaitlistService) ExpireOverdue(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active entries: %w", err)
	}

	now := time.Now().UTC()
	var expired []*domain.WaitlistEntry
	for _, entry := range active {
		if !entry.IsOverdue(now) {
			continue
		}
		entry.Expire()
		if err := s.repo.Update(ctx, entry); err != nil {
			return expired, fmt.Errorf("update waitlist entry: %w", err)
		}
		expired = append(expired, entry)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue waitlist entries expired",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}

// SendReminders notifies every due entry and records the notification time.
// Called by the scheduler.
func (s *WaitlistService) SendReminders(ctx context.Context) (int, error) {
	due, err := s.EntriesToNotify(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, entry := range due {
		s.notifier.NotifyWaitlistReminder(ctx, entry)

		entry.MarkNotified()
		if err := s.repo.Update(ctx, entry); err != nil {
			return sent, fmt.Errorf("update waitlist entry: %w", err)
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("waitlist reminders sent",
			logger.Int("count", sent),
		)
	}

	return sent, nil
}
