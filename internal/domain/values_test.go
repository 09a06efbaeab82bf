package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_Valid(t *testing.T) {
	checkIn := time.Now().AddDate(0, 0, 5)
	checkOut := time.Now().AddDate(0, 0, 8)

	dr, err := NewDateRange(checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, 3, dr.Nights())
	assert.True(t, dr.CheckOut.After(dr.CheckIn))
}

func TestNewDateRange_CheckOutNotAfterCheckIn(t *testing.T) {
	day := time.Now().AddDate(0, 0, 5)

	_, err := NewDateRange(day, day)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDateRange(day, day.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewDateRange_CheckInInPast(t *testing.T) {
	_, err := NewDateRange(time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 3))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewDateRange_TruncatesToDay(t *testing.T) {
	checkIn := time.Now().AddDate(0, 0, 1)

	dr, err := NewDateRange(checkIn, checkIn.AddDate(0, 0, 1))

	require.NoError(t, err)
	assert.Equal(t, 0, dr.CheckIn.Hour())
	assert.Equal(t, 0, dr.CheckIn.Minute())
	assert.Equal(t, time.UTC, dr.CheckIn.Location())
}

func TestNewMoney_DefaultCurrency(t *testing.T) {
	m, err := NewMoney(1_000_000, "")

	require.NoError(t, err)
	assert.Equal(t, "IDR", m.Currency)
	assert.Equal(t, int64(1_000_000), m.Amount)
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := NewMoney(-1, "IDR")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewGuestCount_Bounds(t *testing.T) {
	gc, err := NewGuestCount(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, gc.Total())

	_, err = NewGuestCount(0, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGuestCount(11, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGuestCount(1, -1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewGuestCount(1, 11)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewCancellationPolicy_Invalid(t *testing.T) {
	_, err := NewCancellationPolicy("Standard", 101, 24)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCancellationPolicy("Standard", -1, 24)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCancellationPolicy("Standard", 80, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancellationPolicy_Refund_BeforeDeadline(t *testing.T) {
	policy, err := NewCancellationPolicy("Standard", 80, 24)
	require.NoError(t, err)

	total := Money{Amount: 3_000_000, Currency: "IDR"}
	checkIn := time.Date(2030, 9, 10, 0, 0, 0, 0, time.UTC)

	// cancelling exactly 24 hours before check-in still qualifies
	refund := policy.Refund(total, checkIn.AddDate(0, 0, -1), checkIn)

	assert.Equal(t, int64(2_400_000), refund.Amount)
	assert.Equal(t, "IDR", refund.Currency)
}

func TestCancellationPolicy_Refund_PastDeadline(t *testing.T) {
	policy, err := NewCancellationPolicy("Standard", 80, 24)
	require.NoError(t, err)

	total := Money{Amount: 3_000_000, Currency: "IDR"}
	checkIn := time.Date(2030, 9, 10, 0, 0, 0, 0, time.UTC)

	// same-day cancellation is inside the deadline window
	refund := policy.Refund(total, checkIn, checkIn)

	assert.Equal(t, int64(0), refund.Amount)
	assert.Equal(t, "IDR", refund.Currency)
}

func TestCancellationPolicy_Refund_ZeroDeadline(t *testing.T) {
	policy, err := NewCancellationPolicy("Flexible", 100, 0)
	require.NoError(t, err)

	total := Money{Amount: 500_000, Currency: "IDR"}
	checkIn := time.Date(2030, 9, 10, 0, 0, 0, 0, time.UTC)

	refund := policy.Refund(total, checkIn, checkIn)

	assert.Equal(t, total.Amount, refund.Amount)
}
