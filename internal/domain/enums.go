package domain

import "fmt"

type ReservationStatus string

const (
	StatusPending    ReservationStatus = "PENDING"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

type BookingSource string

const (
	SourceOnline  BookingSource = "ONLINE"
	SourcePhone   BookingSource = "PHONE"
	SourceWalkIn  BookingSource = "WALK_IN"
	SourcePartner BookingSource = "PARTNER"
)

func ParseBookingSource(s string) (BookingSource, error) {
	switch BookingSource(s) {
	case SourceOnline, SourcePhone, SourceWalkIn, SourcePartner:
		return BookingSource(s), nil
	}
	return "", fmt.Errorf("%w: unknown booking source %q", ErrValidation, s)
}

type RequestType string

const (
	RequestEarlyCheckIn     RequestType = "EARLY_CHECKIN"
	RequestLateCheckOut     RequestType = "LATE_CHECKOUT"
	RequestHighFloor        RequestType = "HIGH_FLOOR"
	RequestLowFloor         RequestType = "LOW_FLOOR"
	RequestSmoking          RequestType = "SMOKING"
	RequestNonSmoking       RequestType = "NON_SMOKING"
	RequestSpecialAmenities RequestType = "SPECIAL_AMENITIES"
	RequestOther            RequestType = "OTHER"
)

func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestEarlyCheckIn, RequestLateCheckOut, RequestHighFloor, RequestLowFloor,
		RequestSmoking, RequestNonSmoking, RequestSpecialAmenities, RequestOther:
		return RequestType(s), nil
	}
	return "", fmt.Errorf("%w: unknown request type %q", ErrValidation, s)
}

// Priority is ordinal: higher value outranks lower.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

func ParsePriority(v int) (Priority, error) {
	p := Priority(v)
	if p < PriorityLow || p > PriorityUrgent {
		return 0, fmt.Errorf("%w: priority must be between 1 and 4, got %d", ErrValidation, v)
	}
	return p, nil
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

type WaitlistStatus string

const (
	WaitlistActive    WaitlistStatus = "ACTIVE"
	WaitlistConverted WaitlistStatus = "CONVERTED"
	WaitlistExpired   WaitlistStatus = "EXPIRED"
	WaitlistCancelled WaitlistStatus = "CANCELLED"
)
