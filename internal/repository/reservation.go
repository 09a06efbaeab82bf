package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `reservation_id, confirmation_code, guest_id, room_type_id,
	check_in, check_out, adults, children,
	total_amount, currency, policy_name, refund_percentage, deadline_hours,
	status, booking_source, room_number, cancellation_reason,
	created_at, modified_at, created_by, version`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = tx.ExecContext(ctx, query,
		res.ReservationID, res.ConfirmationCode, res.GuestID, res.RoomTypeID,
		res.DateRange.CheckIn, res.DateRange.CheckOut, res.GuestCount.Adults, res.GuestCount.Children,
		res.TotalAmount.Amount, res.TotalAmount.Currency,
		res.CancellationPolicy.PolicyName, res.CancellationPolicy.RefundPercentage, res.CancellationPolicy.DeadlineHours,
		res.Status, res.BookingSource, res.RoomNumber, res.CancellationReason,
		res.CreatedAt, res.ModifiedAt, res.CreatedBy, res.Version,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrReservationExists
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	if err = insertSpecialRequests(ctx, tx, res.ReservationID, res.SpecialRequests); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE reservation_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		return nil, err
	}

	if err = r.loadSpecialRequests(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE confirmation_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get reservation by code: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		return nil, err
	}

	if err = r.loadSpecialRequests(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, guestID)
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, reservation)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, reservation := range res {
		if err = r.loadSpecialRequests(ctx, reservation); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE reservations
			  SET check_in = $2, check_out = $3, adults = $4, children = $5,
				  room_type_id = $6, total_amount = $7, currency = $8,
				  status = $9, room_number = $10, cancellation_reason = $11,
				  modified_at = $12, version = $13
			  WHERE reservation_id = $1`
	result, err := tx.ExecContext(ctx, query,
		res.ReservationID,
		res.DateRange.CheckIn, res.DateRange.CheckOut, res.GuestCount.Adults, res.GuestCount.Children,
		res.RoomTypeID, res.TotalAmount.Amount, res.TotalAmount.Currency,
		res.Status, res.RoomNumber, res.CancellationReason,
		res.ModifiedAt, res.Version,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	// special requests are replaced wholesale, the aggregate owns them
	if _, err = tx.ExecContext(ctx, `DELETE FROM special_requests WHERE reservation_id = $1`, res.ReservationID); err != nil {
		return fmt.Errorf("delete special requests: %w", err)
	}
	if err = insertSpecialRequests(ctx, tx, res.ReservationID, res.SpecialRequests); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE reservation_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) loadSpecialRequests(ctx context.Context, res *domain.Reservation) error {
	query := `SELECT request_id, request_type, description, fulfilled, notes, created_at
			  FROM special_requests
			  WHERE reservation_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, res.ReservationID)
	if err != nil {
		return fmt.Errorf("list special requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.SpecialRequest
	for rows.Next() {
		var req domain.SpecialRequest
		if err = rows.Scan(&req.RequestID, &req.RequestType, &req.Description, &req.Fulfilled, &req.Notes, &req.CreatedAt); err != nil {
			return fmt.Errorf("scan special request: %w", err)
		}
		requests = append(requests, req)
	}

	res.SpecialRequests = requests
	return rows.Err()
}

func insertSpecialRequests(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID, requests []domain.SpecialRequest) error {
	query := `INSERT INTO special_requests (request_id, reservation_id, request_type, description, fulfilled, notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, req := range requests {
		if _, err := tx.ExecContext(ctx, query,
			req.RequestID, reservationID, req.RequestType, req.Description, req.Fulfilled, req.Notes, req.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert special request: %w", err)
		}
	}
	return nil
}

func scanReservation(scan func(...interface{}) error) (*domain.Reservation, error) {
	var res domain.Reservation
	err := scan(
		&res.ReservationID, &res.ConfirmationCode, &res.GuestID, &res.RoomTypeID,
		&res.DateRange.CheckIn, &res.DateRange.CheckOut, &res.GuestCount.Adults, &res.GuestCount.Children,
		&res.TotalAmount.Amount, &res.TotalAmount.Currency,
		&res.CancellationPolicy.PolicyName, &res.CancellationPolicy.RefundPercentage, &res.CancellationPolicy.DeadlineHours,
		&res.Status, &res.BookingSource, &res.RoomNumber, &res.CancellationReason,
		&res.CreatedAt, &res.ModifiedAt, &res.CreatedBy, &res.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}
