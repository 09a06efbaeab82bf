package service

import (
	"context"
	"fmt"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService fans a capacity operation out over every ledger day in
// [start, end]. Each day is an independent transaction: when a later day fails
// validation, earlier days stay mutated and the failing date is reported in
// the error. Callers that need compensation release the prefix themselves.
type AvailabilityService struct {
	repo   ports.AvailabilityRepo
	logger logger.Logger
}

func NewAvailabilityService(repo ports.AvailabilityRepo, logger logger.Logger) *AvailabilityService {
	return &AvailabilityService{repo: repo, logger: logger}
}

func (s *AvailabilityService) Create(ctx context.Context, roomTypeID string, date time.Time, totalRooms, overbookingThreshold int) (*domain.Availability, error) {
	availability, err := domain.NewAvailability(roomTypeID, date, totalRooms, overbookingThreshold)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, availability); err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}

	s.logger.Info("availability created",
		logger.String("room_type_id", availability.RoomTypeID),
		logger.String("date", availability.Date.Format("2006-01-02")),
		logger.Int("total_rooms", availability.TotalRooms),
	)

	return availability, nil
}

func (s *AvailabilityService) Get(ctx context.Context, roomTypeID string, date time.Time) (*domain.Availability, error) {
	return s.repo.GetByRoomAndDate(ctx, roomTypeID, date)
}

// CheckAvailability reports whether count rooms fit on every day of the range.
// A range with no ledger rows is not available.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, roomTypeID string, start, end time.Time, count int) (bool, error) {
	days, err := s.repo.ListByRoomType(ctx, roomTypeID, start, end)
	if err != nil {
		return false, fmt.Errorf("list availability: %w", err)
	}
	if len(days) == 0 {
		return false, nil
	}

	for _, day := range days {
		if !day.CheckAvailability(count) {
			return false, nil
		}
	}
	return true, nil
}

func (s *AvailabilityService) ReserveRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error {
	return s.forEachDay(ctx, roomTypeID, start, end, "reserve", func(day *domain.Availability) error {
		return day.ReserveRooms(count)
	})
}

func (s *AvailabilityService) ReleaseRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error {
	return s.forEachDay(ctx, roomTypeID, start, end, "release", func(day *domain.Availability) error {
		return day.ReleaseRooms(count)
	})
}

func (s *AvailabilityService) BlockRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int, reason string) error {
	return s.forEachDay(ctx, roomTypeID, start, end, "block", func(day *domain.Availability) error {
		return day.BlockRooms(count, reason)
	})
}

func (s *AvailabilityService) UnblockRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error {
	return s.forEachDay(ctx, roomTypeID, start, end, "unblock", func(day *domain.Availability) error {
		return day.UnblockRooms(count)
	})
}

// forEachDay applies op to every ledger day in order, persisting each success
// before touching the next. Best-effort across the range: no rollback.
func (s *AvailabilityService) forEachDay(ctx context.Context, roomTypeID string, start, end time.Time, opName string, op func(*domain.Availability) error) error {
	days, err := s.repo.ListByRoomType(ctx, roomTypeID, start, end)
	if err != nil {
		return fmt.Errorf("list availability: %w", err)
	}
	if len(days) == 0 {
		return fmt.Errorf("%w: no availability for %s between %s and %s",
			domain.ErrAvailabilityNotFound, roomTypeID,
			domain.Day(start).Format("2006-01-02"), domain.Day(end).Format("2006-01-02"))
	}

	for i, day := range days {
		if err := op(day); err != nil {
			s.logger.Warn("availability range operation failed mid-range",
				logger.String("op", opName),
				logger.String("room_type_id", roomTypeID),
				logger.String("failed_date", day.Date.Format("2006-01-02")),
				logger.Int("days_already_applied", i),
			)
			return fmt.Errorf("%s rooms on %s: %w", opName, day.Date.Format("2006-01-02"), err)
		}
		if err := s.repo.Update(ctx, day); err != nil {
			return fmt.Errorf("update availability for %s: %w", day.Date.Format("2006-01-02"), err)
		}
	}

	s.logger.Info("availability range updated",
		logger.String("op", opName),
		logger.String("room_type_id", roomTypeID),
		logger.Int("days", len(days)),
	)

	return nil
}
