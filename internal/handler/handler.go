package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/handler/dto"
	"github.com/KenzieRafa/Reservation-API/internal/service"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type ReservationSvc interface {
	Create(ctx context.Context, input service.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Modify(ctx context.Context, id uuid.UUID, input service.ModifyReservationInput) (*domain.Reservation, error)
	AddSpecialRequest(ctx context.Context, id uuid.UUID, requestType domain.RequestType, description string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id uuid.UUID, paymentConfirmed bool) (*domain.Reservation, error)
	CheckIn(ctx context.Context, id uuid.UUID, roomNumber string) (*domain.Reservation, error)
	CheckOut(ctx context.Context, id uuid.UUID) (domain.Money, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.Money, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
}

type AvailabilitySvc interface {
	Create(ctx context.Context, roomTypeID string, date time.Time, totalRooms, overbookingThreshold int) (*domain.Availability, error)
	Get(ctx context.Context, roomTypeID string, date time.Time) (*domain.Availability, error)
	CheckAvailability(ctx context.Context, roomTypeID string, start, end time.Time, count int) (bool, error)
	ReserveRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error
	ReleaseRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error
	BlockRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int, reason string) error
	UnblockRooms(ctx context.Context, roomTypeID string, start, end time.Time, count int) error
}

type WaitlistSvc interface {
	Add(ctx context.Context, input service.AddWaitlistInput) (*domain.WaitlistEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitlistEntry, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.WaitlistEntry, error)
	RoomWaitlist(ctx context.Context, roomTypeID string) ([]*domain.WaitlistEntry, error)
	ActiveEntries(ctx context.Context) ([]*domain.WaitlistEntry, error)
	Convert(ctx context.Context, waitlistID, reservationID uuid.UUID) (*domain.WaitlistEntry, error)
	Expire(ctx context.Context, waitlistID uuid.UUID) (*domain.WaitlistEntry, error)
	ExtendExpiry(ctx context.Context, waitlistID uuid.UUID, additionalDays int) (*domain.WaitlistEntry, error)
	UpgradePriority(ctx context.Context, waitlistID uuid.UUID, newPriority domain.Priority) (*domain.WaitlistEntry, error)
	MarkNotified(ctx context.Context, waitlistID uuid.UUID) (*domain.WaitlistEntry, error)
	EntriesToNotify(ctx context.Context) ([]*domain.WaitlistEntry, error)
}

type Handler struct {
	reservationService  ReservationSvc
	availabilityService AvailabilitySvc
	waitlistService     WaitlistSvc
}

func NewHandler(reservationService ReservationSvc, availabilityService AvailabilitySvc, waitlistService WaitlistSvc) *Handler {
	return &Handler{
		reservationService:  reservationService,
		availabilityService: availabilityService,
		waitlistService:     waitlistService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guestID, _ := uuid.Parse(req.GuestID)

	checkIn, checkOut, ok := h.parseDates(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	source := domain.SourceOnline
	if req.BookingSource != "" {
		parsed, err := domain.ParseBookingSource(req.BookingSource)
		if err != nil {
			h.handleError(c, err)
			return
		}
		source = parsed
	}

	requests := make([]service.SpecialRequestInput, 0, len(req.SpecialRequests))
	for _, r := range req.SpecialRequests {
		requestType, err := domain.ParseRequestType(r.RequestType)
		if err != nil {
			h.handleError(c, err)
			return
		}
		requests = append(requests, service.SpecialRequestInput{
			RequestType: requestType,
			Description: r.Description,
		})
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), service.CreateReservationInput{
		GuestID:         guestID,
		RoomTypeID:      req.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		BookingSource:   source,
		SpecialRequests: requests,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservationByCode(c *ginext.Context) {
	reservation, err := h.reservationService.GetByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationList(reservations))
}

func (h *Handler) ListGuestReservations(c *ginext.Context) {
	guestID, ok := h.pathUUID(c, "guest_id")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationList(reservations))
}

func (h *Handler) ModifyReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ModifyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := service.ModifyReservationInput{
		Adults:     req.Adults,
		Children:   req.Children,
		RoomTypeID: req.RoomTypeID,
	}

	if req.CheckIn != nil && req.CheckOut != nil {
		checkIn, checkOut, ok := h.parseDates(c, *req.CheckIn, *req.CheckOut)
		if !ok {
			return
		}
		input.CheckIn = &checkIn
		input.CheckOut = &checkOut
	}

	reservation, err := h.reservationService.Modify(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) AddSpecialRequest(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.AddSpecialRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	requestType, err := domain.ParseRequestType(req.RequestType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reservation, err := h.reservationService.AddSpecialRequest(c.Request.Context(), id, requestType, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Confirm(c.Request.Context(), id, req.PaymentConfirmed)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CheckInReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.CheckIn(c.Request.Context(), id, req.RoomNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CheckOutReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	settled, err := h.reservationService.CheckOut(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundResponse("checked_out", settled))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	refund, err := h.reservationService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundResponse("cancelled", refund))
}

func (h *Handler) MarkNoShow(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.MarkNoShow(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Availability

func (h *Handler) CreateAvailability(c *ginext.Context) {
	var req dto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	availability, err := h.availabilityService.Create(c.Request.Context(), req.RoomTypeID, date, req.TotalRooms, req.OverbookingThreshold)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	availability, err := h.availabilityService.Get(c.Request.Context(), c.Param("room_type_id"), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	available, err := h.availabilityService.CheckAvailability(c.Request.Context(), req.RoomTypeID, start, end, req.Count)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityCheckResponse{
		RoomTypeID: req.RoomTypeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Count:      req.Count,
		Available:  available,
	})
}

func (h *Handler) ReserveRooms(c *ginext.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	if err := h.availabilityService.ReserveRooms(c.Request.Context(), req.RoomTypeID, start, end, req.Count); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "reserved"})
}

func (h *Handler) ReleaseRooms(c *ginext.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	if err := h.availabilityService.ReleaseRooms(c.Request.Context(), req.RoomTypeID, start, end, req.Count); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) BlockRooms(c *ginext.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	if err := h.availabilityService.BlockRooms(c.Request.Context(), req.RoomTypeID, start, end, req.Count, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "blocked"})
}

func (h *Handler) UnblockRooms(c *ginext.Context) {
	req, start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	if err := h.availabilityService.UnblockRooms(c.Request.Context(), req.RoomTypeID, start, end, req.Count); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "unblocked"})
}

// Waitlist

func (h *Handler) AddWaitlistEntry(c *ginext.Context) {
	var req dto.AddWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guestID, _ := uuid.Parse(req.GuestID)

	checkIn, checkOut, ok := h.parseDates(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	priority := domain.PriorityMedium
	if req.Priority != 0 {
		parsed, err := domain.ParsePriority(req.Priority)
		if err != nil {
			h.handleError(c, err)
			return
		}
		priority = parsed
	}

	entry, err := h.waitlistService.Add(c.Request.Context(), service.AddWaitlistInput{
		GuestID:    guestID,
		RoomTypeID: req.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     req.Adults,
		Children:   req.Children,
		Priority:   priority,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) GetWaitlistEntry(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.waitlistService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ListGuestWaitlist(c *ginext.Context) {
	guestID, ok := h.pathUUID(c, "guest_id")
	if !ok {
		return
	}

	entries, err := h.waitlistService.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWaitlistList(entries))
}

func (h *Handler) GetRoomWaitlist(c *ginext.Context) {
	entries, err := h.waitlistService.RoomWaitlist(c.Request.Context(), c.Param("room_type_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWaitlistList(entries))
}

func (h *Handler) ListActiveWaitlist(c *ginext.Context) {
	entries, err := h.waitlistService.ActiveEntries(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWaitlistList(entries))
}

func (h *Handler) ConvertWaitlistEntry(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ConvertWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	reservationID, _ := uuid.Parse(req.ReservationID)

	entry, err := h.waitlistService.Convert(c.Request.Context(), id, reservationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ExpireWaitlistEntry(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.waitlistService.Expire(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ExtendWaitlistEntry(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ExtendWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.waitlistService.ExtendExpiry(c.Request.Context(), id, req.AdditionalDays)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) UpgradeWaitlistPriority(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpgradePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		h.handleError(c, err)
		return
	}

	entry, err := h.waitlistService.UpgradePriority(c.Request.Context(), id, priority)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) NotifyWaitlistEntry(c *ginext.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.waitlistService.MarkNotified(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ListPendingNotifications(c *ginext.Context) {
	entries, err := h.waitlistService.EntriesToNotify(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWaitlistList(entries))
}

// helpers

func (h *Handler) pathUUID(c *ginext.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) parseDates(c *ginext.Context, checkIn, checkOut string) (time.Time, time.Time, bool) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}

func (h *Handler) bindRange(c *ginext.Context) (dto.AvailabilityRangeRequest, time.Time, time.Time, bool) {
	var req dto.AvailabilityRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return req, time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return req, time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return req, time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "end_date cannot be before start_date"})
		return req, time.Time{}, time.Time{}, false
	}
	return req, start, end, true
}

func toReservationList(reservations []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func toWaitlistList(entries []*domain.WaitlistEntry) []dto.WaitlistEntryResponse {
	resp := make([]dto.WaitlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToWaitlistEntryResponse(e))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrAvailabilityNotFound),
		errors.Is(err, domain.ErrWaitlistNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPaymentRequired),
		errors.Is(err, domain.ErrCheckInTooEarly),
		errors.Is(err, domain.ErrNotModifiable),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidRelease),
		errors.Is(err, domain.ErrInvalidUnblock),
		errors.Is(err, domain.ErrWaitlistNotActive),
		errors.Is(err, domain.ErrReservationExists),
		errors.Is(err, domain.ErrAvailabilityExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
