package dto

import (
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
)

const dateLayout = "2006-01-02"

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type SpecialRequestResponse struct {
	RequestID   string `json:"request_id"`
	RequestType string `json:"request_type"`
	Description string `json:"description"`
	Fulfilled   bool   `json:"fulfilled"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ReservationResponse struct {
	ReservationID      string                   `json:"reservation_id"`
	ConfirmationCode   string                   `json:"confirmation_code"`
	GuestID            string                   `json:"guest_id"`
	RoomTypeID         string                   `json:"room_type_id"`
	CheckIn            string                   `json:"check_in"`
	CheckOut           string                   `json:"check_out"`
	Nights             int                      `json:"nights"`
	Adults             int                      `json:"adults"`
	Children           int                      `json:"children"`
	TotalAmount        MoneyResponse            `json:"total_amount"`
	Status             string                   `json:"status"`
	BookingSource      string                   `json:"booking_source"`
	RoomNumber         string                   `json:"room_number,omitempty"`
	CancellationReason string                   `json:"cancellation_reason,omitempty"`
	SpecialRequests    []SpecialRequestResponse `json:"special_requests"`
	CreatedAt          string                   `json:"created_at"`
	ModifiedAt         string                   `json:"modified_at"`
	CreatedBy          string                   `json:"created_by"`
	Version            int                      `json:"version"`
}

type AvailabilityResponse struct {
	RoomTypeID           string `json:"room_type_id"`
	Date                 string `json:"date"`
	TotalRooms           int    `json:"total_rooms"`
	ReservedRooms        int    `json:"reserved_rooms"`
	BlockedRooms         int    `json:"blocked_rooms"`
	AvailableRooms       int    `json:"available_rooms"`
	OverbookingThreshold int    `json:"overbooking_threshold"`
	IsFullyBooked        bool   `json:"is_fully_booked"`
	LastUpdated          string `json:"last_updated"`
	Version              int    `json:"version"`
}

type AvailabilityCheckResponse struct {
	RoomTypeID string `json:"room_type_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Count      int    `json:"count"`
	Available  bool   `json:"available"`
}

type WaitlistEntryResponse struct {
	WaitlistID             string  `json:"waitlist_id"`
	GuestID                string  `json:"guest_id"`
	RoomTypeID             string  `json:"room_type_id"`
	CheckIn                string  `json:"check_in"`
	CheckOut               string  `json:"check_out"`
	Adults                 int     `json:"adults"`
	Children               int     `json:"children"`
	Priority               string  `json:"priority"`
	PriorityScore          int     `json:"priority_score"`
	Status                 string  `json:"status"`
	CreatedAt              string  `json:"created_at"`
	ExpiresAt              string  `json:"expires_at"`
	NotifiedAt             *string `json:"notified_at,omitempty"`
	ConvertedReservationID *string `json:"converted_reservation_id,omitempty"`
}

type RefundResponse struct {
	Status string        `json:"status"`
	Amount MoneyResponse `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	requests := make([]SpecialRequestResponse, 0, len(r.SpecialRequests))
	for _, req := range r.SpecialRequests {
		requests = append(requests, SpecialRequestResponse{
			RequestID:   req.RequestID.String(),
			RequestType: string(req.RequestType),
			Description: req.Description,
			Fulfilled:   req.Fulfilled,
			Notes:       req.Notes,
			CreatedAt:   req.CreatedAt.Format(time.RFC3339),
		})
	}

	return ReservationResponse{
		ReservationID:      r.ReservationID.String(),
		ConfirmationCode:   r.ConfirmationCode,
		GuestID:            r.GuestID.String(),
		RoomTypeID:         r.RoomTypeID,
		CheckIn:            r.DateRange.CheckIn.Format(dateLayout),
		CheckOut:           r.DateRange.CheckOut.Format(dateLayout),
		Nights:             r.Nights(),
		Adults:             r.GuestCount.Adults,
		Children:           r.GuestCount.Children,
		TotalAmount:        MoneyResponse{Amount: r.TotalAmount.Amount, Currency: r.TotalAmount.Currency},
		Status:             string(r.Status),
		BookingSource:      string(r.BookingSource),
		RoomNumber:         r.RoomNumber,
		CancellationReason: r.CancellationReason,
		SpecialRequests:    requests,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		ModifiedAt:         r.ModifiedAt.Format(time.RFC3339),
		CreatedBy:          r.CreatedBy,
		Version:            r.Version,
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		RoomTypeID:           a.RoomTypeID,
		Date:                 a.Date.Format(dateLayout),
		TotalRooms:           a.TotalRooms,
		ReservedRooms:        a.ReservedRooms,
		BlockedRooms:         a.BlockedRooms,
		AvailableRooms:       a.AvailableRooms(),
		OverbookingThreshold: a.OverbookingThreshold,
		IsFullyBooked:        a.IsFullyBooked(),
		LastUpdated:          a.LastUpdated.Format(time.RFC3339),
		Version:              a.Version,
	}
}

func ToWaitlistEntryResponse(e *domain.WaitlistEntry) WaitlistEntryResponse {
	resp := WaitlistEntryResponse{
		WaitlistID:    e.WaitlistID.String(),
		GuestID:       e.GuestID.String(),
		RoomTypeID:    e.RoomTypeID,
		CheckIn:       e.RequestedDates.CheckIn.Format(dateLayout),
		CheckOut:      e.RequestedDates.CheckOut.Format(dateLayout),
		Adults:        e.GuestCount.Adults,
		Children:      e.GuestCount.Children,
		Priority:      e.Priority.String(),
		PriorityScore: e.PriorityScore(),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		ExpiresAt:     e.ExpiresAt.Format(time.RFC3339),
	}

	if e.NotifiedAt != nil {
		notified := e.NotifiedAt.Format(time.RFC3339)
		resp.NotifiedAt = &notified
	}
	if e.ConvertedReservationID != nil {
		converted := e.ConvertedReservationID.String()
		resp.ConvertedReservationID = &converted
	}
	return resp
}

func ToRefundResponse(status string, amount domain.Money) RefundResponse {
	return RefundResponse{
		Status: status,
		Amount: MoneyResponse{Amount: amount.Amount, Currency: amount.Currency},
	}
}
