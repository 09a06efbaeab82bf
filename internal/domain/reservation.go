package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	minStayNights = 1
	maxStayNights = 30
)

// reservationTransitions is the legal state machine. Every mutator consults it.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

func canTransition(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SpecialRequest is a child entity owned exclusively by its Reservation.
type SpecialRequest struct {
	RequestID   uuid.UUID   `json:"request_id"`
	RequestType RequestType `json:"request_type"`
	Description string      `json:"description"`
	Fulfilled   bool        `json:"fulfilled"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (s *SpecialRequest) Fulfill(notes string) {
	s.Fulfilled = true
	s.Notes = notes
}

// Reservation is the booking aggregate root.
type Reservation struct {
	ReservationID    uuid.UUID `json:"reservation_id"`
	ConfirmationCode string    `json:"confirmation_code"`

	GuestID    uuid.UUID `json:"guest_id"`
	RoomTypeID string    `json:"room_type_id"`

	DateRange          DateRange          `json:"date_range"`
	GuestCount         GuestCount         `json:"guest_count"`
	TotalAmount        Money              `json:"total_amount"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`

	Status             ReservationStatus `json:"status"`
	BookingSource      BookingSource     `json:"booking_source"`
	RoomNumber         string            `json:"room_number,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`

	SpecialRequests []SpecialRequest `json:"special_requests"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `json:"created_by"`
	Version    int       `json:"version"`
}

func NewReservation(
	guestID uuid.UUID,
	roomTypeID string,
	dateRange DateRange,
	guestCount GuestCount,
	totalAmount Money,
	policy CancellationPolicy,
	source BookingSource,
	confirmationCode string,
	createdBy string,
) (*Reservation, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("%w: room type is required", ErrValidation)
	}
	if confirmationCode == "" {
		return nil, fmt.Errorf("%w: confirmation code is required", ErrValidation)
	}
	if err := validateStay(dateRange, guestCount, totalAmount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Reservation{
		ReservationID:      uuid.New(),
		ConfirmationCode:   confirmationCode,
		GuestID:            guestID,
		RoomTypeID:         roomTypeID,
		DateRange:          dateRange,
		GuestCount:         guestCount,
		TotalAmount:        totalAmount,
		CancellationPolicy: policy,
		Status:             StatusPending,
		BookingSource:      source,
		SpecialRequests:    []SpecialRequest{},
		CreatedAt:          now,
		ModifiedAt:         now,
		CreatedBy:          createdBy,
		Version:            1,
	}, nil
}

// validateStay holds the aggregate invariants re-checked on every mutation
// that replaces a value object.
func validateStay(dateRange DateRange, guestCount GuestCount, totalAmount Money) error {
	nights := dateRange.Nights()
	if nights < minStayNights {
		return fmt.Errorf("%w: reservation must be at least 1 night", ErrValidation)
	}
	if nights > maxStayNights {
		return fmt.Errorf("%w: maximum stay is %d nights", ErrValidation, maxStayNights)
	}
	if guestCount.Adults < 1 {
		return fmt.Errorf("%w: at least 1 adult required", ErrValidation)
	}
	if totalAmount.Amount <= 0 {
		return fmt.Errorf("%w: total amount must be greater than 0", ErrValidation)
	}
	return nil
}

func (r *Reservation) transition(to ReservationStatus) error {
	if !canTransition(r.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	r.touch()
	return nil
}

func (r *Reservation) touch() {
	r.ModifiedAt = time.Now().UTC()
	r.Version++
}

// Confirm moves a PENDING reservation to CONFIRMED once payment is settled.
func (r *Reservation) Confirm(paymentConfirmed bool) error {
	if !canTransition(r.Status, StatusConfirmed) {
		return fmt.Errorf("%w: can only confirm PENDING reservations, current %s", ErrInvalidTransition, r.Status)
	}
	if !paymentConfirmed {
		return ErrPaymentRequired
	}
	return r.transition(StatusConfirmed)
}

// CheckIn marks the guest as arrived. Not allowed before the check-in date.
func (r *Reservation) CheckIn(roomNumber string) error {
	if !canTransition(r.Status, StatusCheckedIn) {
		return fmt.Errorf("%w: can only check in CONFIRMED reservations, current %s", ErrInvalidTransition, r.Status)
	}
	if Day(time.Now()).Before(r.DateRange.CheckIn) {
		return ErrCheckInTooEarly
	}
	r.RoomNumber = roomNumber
	return r.transition(StatusCheckedIn)
}

// CheckOut settles the stay and returns the charged amount. No discounting:
// the full total is settled.
func (r *Reservation) CheckOut() (Money, error) {
	if !canTransition(r.Status, StatusCheckedOut) {
		return Money{}, fmt.Errorf("%w: can only check out CHECKED_IN reservations, current %s", ErrInvalidTransition, r.Status)
	}
	if err := r.transition(StatusCheckedOut); err != nil {
		return Money{}, err
	}
	return r.TotalAmount, nil
}

// Cancel terminates the reservation and returns the refund due under the
// cancellation policy as of today.
func (r *Reservation) Cancel(reason string) (Money, error) {
	if !r.IsCancellable() {
		return Money{}, fmt.Errorf("%w: cannot cancel %s reservation", ErrInvalidTransition, r.Status)
	}
	refund := r.RefundFor(time.Now())
	if err := r.transition(StatusCancelled); err != nil {
		return Money{}, err
	}
	r.CancellationReason = reason
	return refund, nil
}

func (r *Reservation) MarkNoShow() error {
	if !canTransition(r.Status, StatusNoShow) {
		return fmt.Errorf("%w: can only mark PENDING or CONFIRMED reservations as no-show, current %s", ErrInvalidTransition, r.Status)
	}
	return r.transition(StatusNoShow)
}

// ModifyReservation carries the optional replacements for Modify. Nil fields
// keep the current value.
type ModifyReservation struct {
	DateRange   *DateRange
	GuestCount  *GuestCount
	RoomTypeID  string
	TotalAmount *Money
}

// Modify replaces the supplied fields after re-validating the aggregate
// invariants against the candidate state. Nothing is mutated on failure.
func (r *Reservation) Modify(changes ModifyReservation) error {
	if !r.IsModifiable() {
		return ErrNotModifiable
	}

	dateRange := r.DateRange
	if changes.DateRange != nil {
		dateRange = *changes.DateRange
	}
	guestCount := r.GuestCount
	if changes.GuestCount != nil {
		guestCount = *changes.GuestCount
	}
	totalAmount := r.TotalAmount
	if changes.TotalAmount != nil {
		totalAmount = *changes.TotalAmount
	}
	if err := validateStay(dateRange, guestCount, totalAmount); err != nil {
		return err
	}

	r.DateRange = dateRange
	r.GuestCount = guestCount
	r.TotalAmount = totalAmount
	if changes.RoomTypeID != "" {
		r.RoomTypeID = changes.RoomTypeID
	}
	r.touch()
	return nil
}

// AddSpecialRequest appends a guest request. It refreshes ModifiedAt but does
// not bump Version.
func (r *Reservation) AddSpecialRequest(requestType RequestType, description string) *SpecialRequest {
	request := SpecialRequest{
		RequestID:   uuid.New(),
		RequestType: requestType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	r.SpecialRequests = append(r.SpecialRequests, request)
	r.ModifiedAt = time.Now().UTC()
	return &r.SpecialRequests[len(r.SpecialRequests)-1]
}

// IsModifiable reports whether details may still change: the stay has to be
// PENDING or CONFIRMED and start no earlier than tomorrow.
func (r *Reservation) IsModifiable() bool {
	if r.Status != StatusPending && r.Status != StatusConfirmed {
		return false
	}
	tomorrow := Day(time.Now()).AddDate(0, 0, 1)
	return !r.DateRange.CheckIn.Before(tomorrow)
}

func (r *Reservation) IsCancellable() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

func (r *Reservation) RefundFor(cancellationDate time.Time) Money {
	return r.CancellationPolicy.Refund(r.TotalAmount, cancellationDate, r.DateRange.CheckIn)
}

func (r *Reservation) Nights() int {
	return r.DateRange.Nights()
}
