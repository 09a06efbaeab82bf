package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/handler/dto"
	hmocks "github.com/KenzieRafa/Reservation-API/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockAvailabilitySvc, *hmocks.MockWaitlistSvc, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	waitlistSvc := hmocks.NewMockWaitlistSvc(t)

	h := NewHandler(reservationSvc, availabilitySvc, waitlistSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.GET("/reservations/code/:code", h.GetReservationByCode)
		api.GET("/reservations/guest/:guest_id", h.ListGuestReservations)
		api.PUT("/reservations/:id", h.ModifyReservation)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/check-in", h.CheckInReservation)
		api.POST("/reservations/:id/check-out", h.CheckOutReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/no-show", h.MarkNoShow)

		api.POST("/availability", h.CreateAvailability)
		api.GET("/availability/:room_type_id/:date", h.GetAvailability)
		api.POST("/availability/check", h.CheckAvailability)
		api.POST("/availability/reserve", h.ReserveRooms)

		api.POST("/waitlist", h.AddWaitlistEntry)
		api.GET("/waitlist/:id", h.GetWaitlistEntry)
		api.GET("/waitlist/room/:room_type_id", h.GetRoomWaitlist)
		api.POST("/waitlist/:id/convert", h.ConvertWaitlistEntry)
		api.POST("/waitlist/:id/upgrade-priority", h.UpgradeWaitlistPriority)
	}

	return reservationSvc, availabilitySvc, waitlistSvc, r
}

func testReservation(t *testing.T) *domain.Reservation {
	t.Helper()

	dr, err := domain.NewDateRange(time.Now().AddDate(0, 0, 10), time.Now().AddDate(0, 0, 12))
	require.NoError(t, err)
	gc, err := domain.NewGuestCount(2, 0)
	require.NoError(t, err)
	total, err := domain.NewMoney(3_000_000, domain.DefaultCurrency)
	require.NoError(t, err)
	policy, err := domain.NewCancellationPolicy("Standard", 80, 24)
	require.NoError(t, err)

	r, err := domain.NewReservation(uuid.New(), "DELUXE_001", dr, gc, total, policy, domain.SourceOnline, "AB12CD34", "tester")
	require.NoError(t, err)
	return r
}

func testWaitlistEntry(t *testing.T) *domain.WaitlistEntry {
	t.Helper()

	dr, err := domain.NewDateRange(time.Now().AddDate(0, 0, 10), time.Now().AddDate(0, 0, 12))
	require.NoError(t, err)
	gc, err := domain.NewGuestCount(2, 0)
	require.NoError(t, err)

	entry, err := domain.NewWaitlistEntry(uuid.New(), "DELUXE_001", dr, gc, domain.PriorityMedium)
	require.NoError(t, err)
	return entry
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := testReservation(t)
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		GuestID:    uuid.New().String(),
		RoomTypeID: "DELUXE_001",
		CheckIn:    time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		CheckOut:   time.Now().AddDate(0, 0, 12).Format("2006-01-02"),
		Adults:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "AB12CD34", resp.ConfirmationCode)
}

func TestHandler_CreateReservation_BadDates(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"guest_id":"` + uuid.New().String() + `","room_type_id":"DELUXE_001","check_in":"not-a-date","check_out":"2030-01-05","adults":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_UnknownSource(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"guest_id":"` + uuid.New().String() + `","room_type_id":"DELUXE_001","check_in":"2030-01-01","check_out":"2030-01-05","adults":2,"booking_source":"CARRIER_PIGEON"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := testReservation(t)
	reservationSvc.EXPECT().GetByID(mock.Anything, reservation.ReservationID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+reservation.ReservationID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reservation.ReservationID.String(), resp.ReservationID)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New()
	reservationSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservationByCode_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := testReservation(t)
	reservationSvc.EXPECT().GetByConfirmationCode(mock.Anything, "AB12CD34").Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/code/AB12CD34", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListGuestReservations_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := testReservation(t)
	reservationSvc.EXPECT().ListByGuest(mock.Anything, reservation.GuestID).
		Return([]*domain.Reservation{reservation}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/guest/"+reservation.GuestID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ConfirmReservation_PaymentRequired(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New()
	reservationSvc.EXPECT().Confirm(mock.Anything, id, false).Return(nil, domain.ErrPaymentRequired)

	body := []byte(`{"payment_confirmed":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id.String()+"/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckIn_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := testReservation(t)
	reservationSvc.EXPECT().CheckIn(mock.Anything, reservation.ReservationID, "412").Return(reservation, nil)

	body, _ := json.Marshal(dto.CheckInRequest{RoomNumber: "412"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservation.ReservationID.String()+"/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckIn_MissingRoomNumber(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+uuid.New().String()+"/check-in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Cancel_ReturnsRefund(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New()
	refund, err := domain.NewMoney(2_400_000, domain.DefaultCurrency)
	require.NoError(t, err)
	reservationSvc.EXPECT().Cancel(mock.Anything, id, "change of plans").Return(refund, nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{Reason: "change of plans"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id.String()+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RefundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2_400_000), resp.Amount.Amount)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CheckOut_WrongState(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New()
	reservationSvc.EXPECT().CheckOut(mock.Anything, id).Return(domain.Money{}, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id.String()+"/check-out", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Availability ---

func TestHandler_CreateAvailability_Success(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	availability, err := domain.NewAvailability("DELUXE_001", time.Now().AddDate(0, 0, 3), 10, 2)
	require.NoError(t, err)
	availabilitySvc.EXPECT().Create(mock.Anything, "DELUXE_001", mock.Anything, 10, 2).Return(availability, nil)

	body, _ := json.Marshal(dto.CreateAvailabilityRequest{
		RoomTypeID:           "DELUXE_001",
		Date:                 time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TotalRooms:           10,
		OverbookingThreshold: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.AvailableRooms)
}

func TestHandler_CheckAvailability_Success(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	availabilitySvc.EXPECT().
		CheckAvailability(mock.Anything, "DELUXE_001", mock.Anything, mock.Anything, 2).
		Return(true, nil)

	body, _ := json.Marshal(dto.AvailabilityRangeRequest{
		RoomTypeID: "DELUXE_001",
		StartDate:  "2030-01-01",
		EndDate:    "2030-01-04",
		Count:      2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckAvailability_ReversedRange(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AvailabilityRangeRequest{
		RoomTypeID: "DELUXE_001",
		StartDate:  "2030-01-04",
		EndDate:    "2030-01-01",
		Count:      2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReserveRooms_CapacityExceeded(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	availabilitySvc.EXPECT().
		ReserveRooms(mock.Anything, "DELUXE_001", mock.Anything, mock.Anything, 5).
		Return(domain.ErrCapacityExceeded)

	body, _ := json.Marshal(dto.AvailabilityRangeRequest{
		RoomTypeID: "DELUXE_001",
		StartDate:  "2030-01-01",
		EndDate:    "2030-01-04",
		Count:      5,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Waitlist ---

func TestHandler_AddWaitlistEntry_Success(t *testing.T) {
	_, _, waitlistSvc, r := setupRouter(t)

	entry := testWaitlistEntry(t)
	waitlistSvc.EXPECT().Add(mock.Anything, mock.Anything).Return(entry, nil)

	body, _ := json.Marshal(dto.AddWaitlistRequest{
		GuestID:    uuid.New().String(),
		RoomTypeID: "DELUXE_001",
		CheckIn:    time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		CheckOut:   time.Now().AddDate(0, 0, 12).Format("2006-01-02"),
		Adults:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, "MEDIUM", resp.Priority)
}

func TestHandler_GetRoomWaitlist_Success(t *testing.T) {
	_, _, waitlistSvc, r := setupRouter(t)

	entry := testWaitlistEntry(t)
	waitlistSvc.EXPECT().RoomWaitlist(mock.Anything, "DELUXE_001").
		Return([]*domain.WaitlistEntry{entry}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/waitlist/room/DELUXE_001", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ConvertWaitlistEntry_NotActive(t *testing.T) {
	_, _, waitlistSvc, r := setupRouter(t)

	id := uuid.New()
	reservationID := uuid.New()
	waitlistSvc.EXPECT().Convert(mock.Anything, id, reservationID).Return(nil, domain.ErrWaitlistNotActive)

	body, _ := json.Marshal(dto.ConvertWaitlistRequest{ReservationID: reservationID.String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/"+id.String()+"/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpgradePriority_InvalidValue(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"priority":9}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/"+uuid.New().String()+"/upgrade-priority", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New()
	reservationSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
