package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const waitlistColumns = `waitlist_id, guest_id, room_type_id, check_in, check_out,
	adults, children, priority, status, created_at, expires_at, notified_at, converted_reservation_id`

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *domain.WaitlistEntry) error {
	query := `INSERT INTO waitlist_entries (` + waitlistColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.WaitlistID, e.GuestID, e.RoomTypeID, e.RequestedDates.CheckIn, e.RequestedDates.CheckOut,
		e.GuestCount.Adults, e.GuestCount.Children, int(e.Priority), e.Status,
		e.CreatedAt, e.ExpiresAt, e.NotifiedAt, e.ConvertedReservationID,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist entry: %w", err)
	}
	return nil
}

func (r *WaitlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE waitlist_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	return scanWaitlistEntry(row.Scan)
}

func (r *WaitlistRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, guestID)
}

func (r *WaitlistRepository) ListByRoomType(ctx context.Context, roomTypeID string) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE room_type_id = $1 AND status = $2`

	return r.list(ctx, query, roomTypeID, domain.WaitlistActive)
}

func (r *WaitlistRepository) ListActive(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE status = $1
			  ORDER BY created_at`

	return r.list(ctx, query, domain.WaitlistActive)
}

func (r *WaitlistRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.WaitlistEntry, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list waitlist entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.WaitlistEntry
	for rows.Next() {
		entry, err := scanWaitlistEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, entry)
	}

	return res, rows.Err()
}

func (r *WaitlistRepository) Update(ctx context.Context, e *domain.WaitlistEntry) error {
	query := `UPDATE waitlist_entries
			  SET priority = $2, status = $3, expires_at = $4, notified_at = $5, converted_reservation_id = $6
			  WHERE waitlist_id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.WaitlistID, int(e.Priority), e.Status, e.ExpiresAt, e.NotifiedAt, e.ConvertedReservationID,
	)
	if err != nil {
		return fmt.Errorf("update waitlist entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("waitlist rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrWaitlistNotFound
	}
	return nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM waitlist_entries WHERE waitlist_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete waitlist entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("waitlist rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrWaitlistNotFound
	}
	return nil
}

func scanWaitlistEntry(scan func(...interface{}) error) (*domain.WaitlistEntry, error) {
	var (
		e          domain.WaitlistEntry
		priority   int
		notifiedAt sql.NullTime
		convertedI uuid.NullUUID
	)
	err := scan(
		&e.WaitlistID, &e.GuestID, &e.RoomTypeID, &e.RequestedDates.CheckIn, &e.RequestedDates.CheckOut,
		&e.GuestCount.Adults, &e.GuestCount.Children, &priority, &e.Status,
		&e.CreatedAt, &e.ExpiresAt, &notifiedAt, &convertedI,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWaitlistNotFound
		}
		return nil, fmt.Errorf("scan waitlist entry: %w", err)
	}

	e.Priority = domain.Priority(priority)
	if notifiedAt.Valid {
		e.NotifiedAt = &notifiedAt.Time
	}
	if convertedI.Valid {
		e.ConvertedReservationID = &convertedI.UUID
	}
	return &e, nil
}
