package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaitlistEntry(t *testing.T, priority Priority) *WaitlistEntry {
	t.Helper()

	dr, err := NewDateRange(time.Now().AddDate(0, 0, 10), time.Now().AddDate(0, 0, 12))
	require.NoError(t, err)
	gc, err := NewGuestCount(2, 0)
	require.NoError(t, err)

	entry, err := NewWaitlistEntry(uuid.New(), "DELUXE_001", dr, gc, priority)
	require.NoError(t, err)
	return entry
}

func TestNewWaitlistEntry_Defaults(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityMedium)

	assert.Equal(t, WaitlistActive, entry.Status)
	assert.Nil(t, entry.NotifiedAt)
	assert.Nil(t, entry.ConvertedReservationID)
	assert.Equal(t, WaitlistTTLDays, int(entry.ExpiresAt.Sub(entry.CreatedAt).Hours()/24))
}

func TestNewWaitlistEntry_InvalidPriority(t *testing.T) {
	dr, err := NewDateRange(time.Now().AddDate(0, 0, 10), time.Now().AddDate(0, 0, 12))
	require.NoError(t, err)
	gc, _ := NewGuestCount(1, 0)

	_, err = NewWaitlistEntry(uuid.New(), "DELUXE_001", dr, gc, Priority(9))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWaitlistEntry_ConvertToReservation(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityHigh)
	reservationID := uuid.New()

	require.NoError(t, entry.ConvertToReservation(reservationID))

	assert.Equal(t, WaitlistConverted, entry.Status)
	require.NotNil(t, entry.ConvertedReservationID)
	assert.Equal(t, reservationID, *entry.ConvertedReservationID)
}

func TestWaitlistEntry_ConvertTwice(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityHigh)
	require.NoError(t, entry.ConvertToReservation(uuid.New()))

	err := entry.ConvertToReservation(uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWaitlistNotActive)
}

func TestWaitlistEntry_Expire(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityLow)

	assert.True(t, entry.Expire())
	assert.Equal(t, WaitlistExpired, entry.Status)

	// double-expire is an explicit no-op
	assert.False(t, entry.Expire())
	assert.Equal(t, WaitlistExpired, entry.Status)
}

func TestWaitlistEntry_Expire_ConvertedIsNoOp(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityLow)
	require.NoError(t, entry.ConvertToReservation(uuid.New()))

	assert.False(t, entry.Expire())
	assert.Equal(t, WaitlistConverted, entry.Status)
}

func TestWaitlistEntry_ExtendExpiry(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityLow)
	before := entry.ExpiresAt

	require.NoError(t, entry.ExtendExpiry(7))
	assert.Equal(t, before.AddDate(0, 0, 7), entry.ExpiresAt)

	err := entry.ExtendExpiry(0)
	assert.ErrorIs(t, err, ErrValidation)

	entry.Expire()
	err = entry.ExtendExpiry(7)
	assert.ErrorIs(t, err, ErrWaitlistNotActive)
}

func TestWaitlistEntry_UpgradePriority(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityMedium)

	assert.True(t, entry.UpgradePriority(PriorityUrgent))
	assert.Equal(t, PriorityUrgent, entry.Priority)

	// downgrades and same-rank upgrades are explicit no-ops
	assert.False(t, entry.UpgradePriority(PriorityLow))
	assert.Equal(t, PriorityUrgent, entry.Priority)

	assert.False(t, entry.UpgradePriority(PriorityUrgent))
	assert.Equal(t, PriorityUrgent, entry.Priority)
}

func TestWaitlistEntry_ShouldNotifyAgain(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityMedium)

	assert.True(t, entry.ShouldNotifyAgain(), "never-notified entries always qualify")

	entry.MarkNotified()
	assert.False(t, entry.ShouldNotifyAgain())

	fourDaysAgo := time.Now().UTC().AddDate(0, 0, -4)
	entry.NotifiedAt = &fourDaysAgo
	assert.True(t, entry.ShouldNotifyAgain())
}

func TestWaitlistEntry_IsOverdue(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityMedium)

	assert.False(t, entry.IsOverdue(time.Now()))
	assert.True(t, entry.IsOverdue(entry.ExpiresAt.Add(time.Hour)))

	entry.Expire()
	assert.False(t, entry.IsOverdue(entry.ExpiresAt.Add(time.Hour)), "only ACTIVE entries go overdue")
}

func TestWaitlistEntry_PriorityScore_GrowsWithWaiting(t *testing.T) {
	fresh := newTestWaitlistEntry(t, PriorityMedium)

	waited := newTestWaitlistEntry(t, PriorityMedium)
	waited.CreatedAt = waited.CreatedAt.AddDate(0, 0, -5)

	assert.Greater(t, waited.PriorityScore(), fresh.PriorityScore())
}

func TestWaitlistEntry_PriorityScore_GrowsTowardExpiry(t *testing.T) {
	relaxed := newTestWaitlistEntry(t, PriorityMedium)

	urgent := newTestWaitlistEntry(t, PriorityMedium)
	urgent.ExpiresAt = time.Now().UTC().AddDate(0, 0, 2)

	assert.Greater(t, urgent.PriorityScore(), relaxed.PriorityScore())
}

func TestWaitlistEntry_UpgradeNeverDecreasesScore(t *testing.T) {
	entry := newTestWaitlistEntry(t, PriorityLow)
	before := entry.PriorityScore()

	entry.UpgradePriority(PriorityHigh)
	assert.GreaterOrEqual(t, entry.PriorityScore(), before)

	// a rejected downgrade leaves the score alone
	scoreAtHigh := entry.PriorityScore()
	entry.UpgradePriority(PriorityLow)
	assert.Equal(t, scoreAtHigh, entry.PriorityScore())
}
