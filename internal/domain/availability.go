package domain

import (
	"fmt"
	"time"
)

// Availability is the per (room type, date) capacity ledger. Identity is the
// composite RoomTypeID + Date; one row per sellable day.
type Availability struct {
	RoomTypeID string    `json:"room_type_id"`
	Date       time.Time `json:"availability_date"`

	TotalRooms    int `json:"total_rooms"`
	ReservedRooms int `json:"reserved_rooms"`
	BlockedRooms  int `json:"blocked_rooms"`

	// OverbookingThreshold is extra capacity beyond TotalRooms that may be
	// sold as a controlled risk.
	OverbookingThreshold int `json:"overbooking_threshold"`

	LastUpdated time.Time `json:"last_updated"`
	Version     int       `json:"version"`
}

func NewAvailability(roomTypeID string, date time.Time, totalRooms, overbookingThreshold int) (*Availability, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("%w: room type is required", ErrValidation)
	}
	if totalRooms < 0 {
		return nil, fmt.Errorf("%w: total rooms cannot be negative", ErrValidation)
	}
	if overbookingThreshold < 0 {
		return nil, fmt.Errorf("%w: overbooking threshold cannot be negative", ErrValidation)
	}
	return &Availability{
		RoomTypeID:           roomTypeID,
		Date:                 Day(date),
		TotalRooms:           totalRooms,
		OverbookingThreshold: overbookingThreshold,
		LastUpdated:          time.Now().UTC(),
		Version:              1,
	}, nil
}

// AvailableRooms may go negative while overbooked.
func (a *Availability) AvailableRooms() int {
	return a.TotalRooms - a.ReservedRooms - a.BlockedRooms
}

func (a *Availability) IsFullyBooked() bool {
	return a.AvailableRooms() <= 0
}

func (a *Availability) CanOverbook() bool {
	currentOverbooking := 0
	if available := a.AvailableRooms(); available < 0 {
		currentOverbooking = -available
	}
	return currentOverbooking < a.OverbookingThreshold
}

// CheckAvailability is the sole admission test for ReserveRooms: the
// overbooking allowance is part of sellable capacity.
func (a *Availability) CheckAvailability(count int) bool {
	return a.AvailableRooms() >= count || a.AvailableRooms()+a.OverbookingThreshold >= count
}

func (a *Availability) ReserveRooms(count int) error {
	if !a.CheckAvailability(count) {
		return fmt.Errorf("%w: %d rooms requested, %d sellable for %s on %s",
			ErrCapacityExceeded, count, a.AvailableRooms()+a.OverbookingThreshold,
			a.RoomTypeID, a.Date.Format("2006-01-02"))
	}
	a.ReservedRooms += count
	a.touch()
	return nil
}

func (a *Availability) ReleaseRooms(count int) error {
	if count > a.ReservedRooms {
		return fmt.Errorf("%w: %d rooms requested, %d reserved", ErrInvalidRelease, count, a.ReservedRooms)
	}
	a.ReservedRooms -= count
	a.touch()
	return nil
}

// BlockRooms takes rooms out of sale for maintenance or events. Blocking
// never draws on the overbooking allowance.
func (a *Availability) BlockRooms(count int, reason string) error {
	if a.BlockedRooms+count > a.TotalRooms {
		return fmt.Errorf("%w: cannot block %d rooms, %d of %d already blocked",
			ErrCapacityExceeded, count, a.BlockedRooms, a.TotalRooms)
	}
	a.BlockedRooms += count
	a.touch()
	return nil
}

func (a *Availability) UnblockRooms(count int) error {
	if count > a.BlockedRooms {
		return fmt.Errorf("%w: %d rooms requested, %d blocked", ErrInvalidUnblock, count, a.BlockedRooms)
	}
	a.BlockedRooms -= count
	a.touch()
	return nil
}

func (a *Availability) touch() {
	a.LastUpdated = time.Now().UTC()
	a.Version++
}
