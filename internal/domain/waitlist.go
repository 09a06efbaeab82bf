package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// WaitlistTTLDays is how long a new entry stays actionable.
	WaitlistTTLDays = 14
	// reminder cadence for guests already notified once
	notifyEveryDays = 3
)

// WaitlistEntry is the deferred-demand aggregate: a guest waiting for a room
// type over a date window, ranked by PriorityScore.
type WaitlistEntry struct {
	WaitlistID uuid.UUID `json:"waitlist_id"`

	GuestID        uuid.UUID  `json:"guest_id"`
	RoomTypeID     string     `json:"room_type_id"`
	RequestedDates DateRange  `json:"requested_dates"`
	GuestCount     GuestCount `json:"guest_count"`

	Priority Priority       `json:"priority"`
	Status   WaitlistStatus `json:"status"`

	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`

	ConvertedReservationID *uuid.UUID `json:"converted_reservation_id,omitempty"`
}

func NewWaitlistEntry(
	guestID uuid.UUID,
	roomTypeID string,
	requestedDates DateRange,
	guestCount GuestCount,
	priority Priority,
) (*WaitlistEntry, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("%w: room type is required", ErrValidation)
	}
	if _, err := ParsePriority(int(priority)); err != nil {
		return nil, err
	}
	if guestCount.Adults < 1 {
		return nil, fmt.Errorf("%w: at least 1 adult required", ErrValidation)
	}

	now := time.Now().UTC()
	return &WaitlistEntry{
		WaitlistID:     uuid.New(),
		GuestID:        guestID,
		RoomTypeID:     roomTypeID,
		RequestedDates: requestedDates,
		GuestCount:     guestCount,
		Priority:       priority,
		Status:         WaitlistActive,
		CreatedAt:      now,
		ExpiresAt:      now.AddDate(0, 0, WaitlistTTLDays),
	}, nil
}

// ConvertToReservation terminates the entry, recording the reservation that
// satisfied it. converted_reservation_id is set iff status is CONVERTED.
func (e *WaitlistEntry) ConvertToReservation(reservationID uuid.UUID) error {
	if e.Status != WaitlistActive {
		return fmt.Errorf("%w: can only convert ACTIVE entries, current %s", ErrWaitlistNotActive, e.Status)
	}
	e.Status = WaitlistConverted
	e.ConvertedReservationID = &reservationID
	return nil
}

// Expire reports whether the entry actually transitioned; expiring a
// non-ACTIVE entry is an explicit no-op.
func (e *WaitlistEntry) Expire() bool {
	if e.Status != WaitlistActive {
		return false
	}
	e.Status = WaitlistExpired
	return true
}

func (e *WaitlistEntry) ExtendExpiry(additionalDays int) error {
	if additionalDays <= 0 {
		return fmt.Errorf("%w: additional days must be positive", ErrValidation)
	}
	if e.Status != WaitlistActive {
		return fmt.Errorf("%w: can only extend ACTIVE entries, current %s", ErrWaitlistNotActive, e.Status)
	}
	e.ExpiresAt = e.ExpiresAt.AddDate(0, 0, additionalDays)
	return nil
}

// UpgradePriority applies only strictly higher priorities and reports whether
// the entry changed; a downgrade attempt is an explicit no-op.
func (e *WaitlistEntry) UpgradePriority(newPriority Priority) bool {
	if newPriority <= e.Priority {
		return false
	}
	e.Priority = newPriority
	return true
}

func (e *WaitlistEntry) MarkNotified() {
	now := time.Now().UTC()
	e.NotifiedAt = &now
}

// ShouldNotifyAgain is true for never-notified entries and for entries last
// notified at least three days ago.
func (e *WaitlistEntry) ShouldNotifyAgain() bool {
	if e.NotifiedAt == nil {
		return true
	}
	return int(time.Now().UTC().Sub(*e.NotifiedAt).Hours()/24) >= notifyEveryDays
}

func (e *WaitlistEntry) IsOverdue(now time.Time) bool {
	return e.Status == WaitlistActive && now.After(e.ExpiresAt)
}

// PriorityScore ranks entries for allocation preference: base priority, then
// time already waited, then urgency as expiry approaches. All terms are
// truncated integer day counts.
func (e *WaitlistEntry) PriorityScore() int {
	now := time.Now().UTC()

	score := int(e.Priority) * 100

	daysWaiting := int(now.Sub(e.CreatedAt).Hours() / 24)
	score += daysWaiting * 2

	daysToExpiry := int(e.ExpiresAt.Sub(now).Hours() / 24)
	score += (WaitlistTTLDays - daysToExpiry) * 5

	return score
}
