package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservation(t *testing.T, checkInOffsetDays int) *Reservation {
	t.Helper()

	dr, err := NewDateRange(
		time.Now().AddDate(0, 0, checkInOffsetDays),
		time.Now().AddDate(0, 0, checkInOffsetDays+3),
	)
	require.NoError(t, err)

	gc, err := NewGuestCount(2, 1)
	require.NoError(t, err)

	total, err := NewMoney(3_000_000, "IDR")
	require.NoError(t, err)

	policy, err := NewCancellationPolicy("Standard", 80, 24)
	require.NoError(t, err)

	r, err := NewReservation(
		uuid.New(), "DELUXE_001", dr, gc, total, policy,
		SourceOnline, "ABC12345", "SYSTEM",
	)
	require.NoError(t, err)
	return r
}

func TestNewReservation_StartsPending(t *testing.T) {
	r := newTestReservation(t, 5)

	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, 1, r.Version)
	assert.Equal(t, 3, r.Nights())
	assert.Empty(t, r.SpecialRequests)
}

func TestNewReservation_StayTooLong(t *testing.T) {
	dr, err := NewDateRange(time.Now().AddDate(0, 0, 5), time.Now().AddDate(0, 0, 40))
	require.NoError(t, err)
	gc, _ := NewGuestCount(2, 0)
	total, _ := NewMoney(1_000_000, "IDR")
	policy, _ := NewCancellationPolicy("Standard", 80, 24)

	_, err = NewReservation(uuid.New(), "DELUXE_001", dr, gc, total, policy, SourceOnline, "ABC12345", "SYSTEM")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewReservation_ZeroAmount(t *testing.T) {
	dr, err := NewDateRange(time.Now().AddDate(0, 0, 5), time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)
	gc, _ := NewGuestCount(1, 0)
	policy, _ := NewCancellationPolicy("Standard", 80, 24)

	_, err = NewReservation(uuid.New(), "DELUXE_001", dr, gc, Money{Currency: "IDR"}, policy, SourceOnline, "ABC12345", "SYSTEM")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReservation_Confirm(t *testing.T) {
	r := newTestReservation(t, 5)

	require.NoError(t, r.Confirm(true))

	assert.Equal(t, StatusConfirmed, r.Status)
	assert.Equal(t, 2, r.Version)
}

func TestReservation_Confirm_PaymentRequired(t *testing.T) {
	r := newTestReservation(t, 5)

	err := r.Confirm(false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentRequired)
	assert.Equal(t, StatusPending, r.Status)
}

func TestReservation_Confirm_Twice(t *testing.T) {
	r := newTestReservation(t, 5)
	require.NoError(t, r.Confirm(true))

	err := r.Confirm(true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReservation_CheckIn_RequiresConfirmed(t *testing.T) {
	// CHECKED_IN is reachable only through CONFIRMED, never straight from PENDING
	r := newTestReservation(t, 0)

	err := r.CheckIn("101")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, r.Status)
}

func TestReservation_CheckIn_TooEarly(t *testing.T) {
	r := newTestReservation(t, 5)
	require.NoError(t, r.Confirm(true))

	err := r.CheckIn("101")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckInTooEarly)
	assert.Equal(t, StatusConfirmed, r.Status)
}

func TestReservation_FullLifecycle(t *testing.T) {
	r := newTestReservation(t, 0) // check-in date is today

	require.NoError(t, r.Confirm(true))
	require.NoError(t, r.CheckIn("812"))
	assert.Equal(t, StatusCheckedIn, r.Status)
	assert.Equal(t, "812", r.RoomNumber)

	settled, err := r.CheckOut()
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, r.Status)
	assert.Equal(t, r.TotalAmount, settled)
	assert.Equal(t, 4, r.Version)
}

func TestReservation_CheckOut_NotCheckedIn(t *testing.T) {
	r := newTestReservation(t, 5)

	_, err := r.CheckOut()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReservation_Cancel_FullRefund(t *testing.T) {
	r := newTestReservation(t, 10)

	refund, err := r.Cancel("change of plans")

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, r.Status)
	assert.Equal(t, "change of plans", r.CancellationReason)
	// 80% of 3,000,000 — the deadline is comfortably met
	assert.Equal(t, int64(2_400_000), refund.Amount)
}

func TestReservation_Cancel_NoRefundInsideDeadline(t *testing.T) {
	r := newTestReservation(t, 0) // check-in today: 0 hours to check-in

	refund, err := r.Cancel("late cancel")

	require.NoError(t, err)
	assert.Equal(t, int64(0), refund.Amount)
}

func TestReservation_Cancel_Terminal(t *testing.T) {
	r := newTestReservation(t, 0)
	require.NoError(t, r.Confirm(true))
	require.NoError(t, r.CheckIn("101"))

	_, err := r.Cancel("too late")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCheckedIn, r.Status)
}

func TestReservation_MarkNoShow(t *testing.T) {
	r := newTestReservation(t, 5)
	require.NoError(t, r.Confirm(true))

	require.NoError(t, r.MarkNoShow())
	assert.Equal(t, StatusNoShow, r.Status)

	err := r.MarkNoShow()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReservation_Modify(t *testing.T) {
	r := newTestReservation(t, 5)

	gc, err := NewGuestCount(4, 0)
	require.NoError(t, err)
	total, err := NewMoney(5_000_000, "IDR")
	require.NoError(t, err)

	require.NoError(t, r.Modify(ModifyReservation{
		GuestCount:  &gc,
		RoomTypeID:  "SUITE_002",
		TotalAmount: &total,
	}))

	assert.Equal(t, 4, r.GuestCount.Adults)
	assert.Equal(t, "SUITE_002", r.RoomTypeID)
	assert.Equal(t, int64(5_000_000), r.TotalAmount.Amount)
	assert.Equal(t, 2, r.Version)
}

func TestReservation_Modify_SameDayStay(t *testing.T) {
	// check-in today: modification window has closed
	r := newTestReservation(t, 0)

	err := r.Modify(ModifyReservation{RoomTypeID: "SUITE_002"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotModifiable)
}

func TestReservation_Modify_InvalidCandidateLeavesStateUntouched(t *testing.T) {
	r := newTestReservation(t, 5)
	before := *r

	bad := Money{Amount: 0, Currency: "IDR"}
	err := r.Modify(ModifyReservation{TotalAmount: &bad, RoomTypeID: "SUITE_002"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before.RoomTypeID, r.RoomTypeID)
	assert.Equal(t, before.TotalAmount, r.TotalAmount)
	assert.Equal(t, before.Version, r.Version)
}

func TestReservation_Modify_AfterCancel(t *testing.T) {
	r := newTestReservation(t, 5)
	_, err := r.Cancel("no longer needed")
	require.NoError(t, err)

	err = r.Modify(ModifyReservation{RoomTypeID: "SUITE_002"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotModifiable)
}

func TestReservation_AddSpecialRequest_NoVersionBump(t *testing.T) {
	r := newTestReservation(t, 5)

	req := r.AddSpecialRequest(RequestHighFloor, "room above the 10th floor")

	require.Len(t, r.SpecialRequests, 1)
	assert.Equal(t, RequestHighFloor, req.RequestType)
	assert.False(t, req.Fulfilled)
	assert.Equal(t, 1, r.Version) // child appends never bump the root version
}

func TestSpecialRequest_Fulfill(t *testing.T) {
	r := newTestReservation(t, 5)
	req := r.AddSpecialRequest(RequestLateCheckOut, "until 2pm")

	req.Fulfill("approved by front desk")

	assert.True(t, r.SpecialRequests[0].Fulfilled)
	assert.Equal(t, "approved by front desk", r.SpecialRequests[0].Notes)
}
