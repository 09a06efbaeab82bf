package dto

type SpecialRequestInput struct {
	RequestType string `json:"request_type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type CreateReservationRequest struct {
	GuestID         string                `json:"guest_id" binding:"required,uuid"`
	RoomTypeID      string                `json:"room_type_id" binding:"required"`
	CheckIn         string                `json:"check_in" binding:"required"`
	CheckOut        string                `json:"check_out" binding:"required"`
	Adults          int                   `json:"adults" binding:"required,gt=0"`
	Children        int                   `json:"children"`
	BookingSource   string                `json:"booking_source"`
	SpecialRequests []SpecialRequestInput `json:"special_requests"`
	CreatedBy       string                `json:"created_by"`
}

type ModifyReservationRequest struct {
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Adults     *int    `json:"adults"`
	Children   *int    `json:"children"`
	RoomTypeID string  `json:"room_type_id"`
}

type AddSpecialRequestRequest struct {
	RequestType string `json:"request_type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ConfirmReservationRequest struct {
	PaymentConfirmed bool `json:"payment_confirmed"`
}

type CheckInRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type CreateAvailabilityRequest struct {
	RoomTypeID           string `json:"room_type_id" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	TotalRooms           int    `json:"total_rooms" binding:"min=0"`
	OverbookingThreshold int    `json:"overbooking_threshold" binding:"min=0"`
}

type AvailabilityRangeRequest struct {
	RoomTypeID string `json:"room_type_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Count      int    `json:"count" binding:"required,gt=0"`
	Reason     string `json:"reason"`
}

type AddWaitlistRequest struct {
	GuestID    string `json:"guest_id" binding:"required,uuid"`
	RoomTypeID string `json:"room_type_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Adults     int    `json:"adults" binding:"required,gt=0"`
	Children   int    `json:"children"`
	Priority   int    `json:"priority" binding:"min=0,max=4"`
}

type ConvertWaitlistRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
}

type ExtendWaitlistRequest struct {
	AdditionalDays int `json:"additional_days" binding:"required,gt=0"`
}

type UpgradePriorityRequest struct {
	Priority int `json:"priority" binding:"required,min=1,max=4"`
}
