package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AvailabilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AvailabilityRepository) Create(ctx context.Context, a *domain.Availability) error {
	query := `INSERT INTO availability (room_type_id, availability_date, total_rooms, reserved_rooms,
				  blocked_rooms, overbooking_threshold, last_updated, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		a.RoomTypeID, a.Date, a.TotalRooms, a.ReservedRooms,
		a.BlockedRooms, a.OverbookingThreshold, a.LastUpdated, a.Version,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAvailabilityExists
		}
		return fmt.Errorf("insert availability: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) GetByRoomAndDate(ctx context.Context, roomTypeID string, date time.Time) (*domain.Availability, error) {
	query := `SELECT room_type_id, availability_date, total_rooms, reserved_rooms,
				  blocked_rooms, overbooking_threshold, last_updated, version
			  FROM availability
			  WHERE room_type_id = $1 AND availability_date = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomTypeID, domain.Day(date))
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var a domain.Availability
	if err = row.Scan(
		&a.RoomTypeID, &a.Date, &a.TotalRooms, &a.ReservedRooms,
		&a.BlockedRooms, &a.OverbookingThreshold, &a.LastUpdated, &a.Version,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}

	return &a, nil
}

// ListByRoomType returns the ledger days for [start, end] inclusive, ordered by
// date. Days with no row are simply absent from the result.
func (r *AvailabilityRepository) ListByRoomType(ctx context.Context, roomTypeID string, start, end time.Time) ([]*domain.Availability, error) {
	query := `SELECT room_type_id, availability_date, total_rooms, reserved_rooms,
				  blocked_rooms, overbooking_threshold, last_updated, version
			  FROM availability
			  WHERE room_type_id = $1 AND availability_date BETWEEN $2 AND $3
			  ORDER BY availability_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomTypeID, domain.Day(start), domain.Day(end))
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer rows.Close()

	var res []*domain.Availability
	for rows.Next() {
		var a domain.Availability
		if err = rows.Scan(
			&a.RoomTypeID, &a.Date, &a.TotalRooms, &a.ReservedRooms,
			&a.BlockedRooms, &a.OverbookingThreshold, &a.LastUpdated, &a.Version,
		); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AvailabilityRepository) Update(ctx context.Context, a *domain.Availability) error {
	query := `UPDATE availability
			  SET total_rooms = $3, reserved_rooms = $4, blocked_rooms = $5,
				  overbooking_threshold = $6, last_updated = $7, version = $8
			  WHERE room_type_id = $1 AND availability_date = $2`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		a.RoomTypeID, domain.Day(a.Date), a.TotalRooms, a.ReservedRooms,
		a.BlockedRooms, a.OverbookingThreshold, a.LastUpdated, a.Version,
	)
	if err != nil {
		return fmt.Errorf("update availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("availability rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAvailabilityNotFound
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, roomTypeID string, date time.Time) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM availability WHERE room_type_id = $1 AND availability_date = $2`,
		roomTypeID, domain.Day(date),
	)
	if err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("availability rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAvailabilityNotFound
	}
	return nil
}
