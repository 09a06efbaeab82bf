package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAvailability(t *testing.T, total, overbooking int) *Availability {
	t.Helper()
	av, err := NewAvailability("DELUXE_001", time.Now().AddDate(0, 0, 7), total, overbooking)
	require.NoError(t, err)
	return av
}

func capacityInvariant(t *testing.T, av *Availability) {
	t.Helper()
	assert.LessOrEqual(t, av.ReservedRooms+av.BlockedRooms, av.TotalRooms+av.OverbookingThreshold)
}

func TestNewAvailability_Invalid(t *testing.T) {
	_, err := NewAvailability("", time.Now(), 10, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAvailability("DELUXE_001", time.Now(), -1, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAvailability("DELUXE_001", time.Now(), 10, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAvailability_ReserveRooms(t *testing.T) {
	av := newTestAvailability(t, 10, 0)

	require.NoError(t, av.ReserveRooms(4))

	assert.Equal(t, 4, av.ReservedRooms)
	assert.Equal(t, 6, av.AvailableRooms())
	assert.Equal(t, 2, av.Version)
	capacityInvariant(t, av)
}

func TestAvailability_ReserveRooms_Overbooking(t *testing.T) {
	av := newTestAvailability(t, 10, 2)

	// 11 <= 10+2: admitted via the overbooking allowance
	require.NoError(t, av.ReserveRooms(11))
	assert.Equal(t, -1, av.AvailableRooms())
	assert.True(t, av.IsFullyBooked())
	capacityInvariant(t, av)

	// 11+2 = 13 > 12: rejected
	err := av.ReserveRooms(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 11, av.ReservedRooms)

	// but one last room still fits the threshold: 11+1 = 12 <= 12
	require.NoError(t, av.ReserveRooms(1))
	assert.Equal(t, 12, av.ReservedRooms)
	assert.False(t, av.CanOverbook())
	capacityInvariant(t, av)
}

func TestAvailability_ReleaseRooms_RoundTrip(t *testing.T) {
	av := newTestAvailability(t, 10, 0)

	require.NoError(t, av.ReserveRooms(6))
	require.NoError(t, av.ReleaseRooms(6))

	assert.Equal(t, 0, av.ReservedRooms)
	assert.Equal(t, 10, av.AvailableRooms())
	capacityInvariant(t, av)
}

func TestAvailability_ReleaseRooms_MoreThanReserved(t *testing.T) {
	av := newTestAvailability(t, 10, 0)
	require.NoError(t, av.ReserveRooms(3))

	err := av.ReleaseRooms(4)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRelease)
	assert.Equal(t, 3, av.ReservedRooms)
}

func TestAvailability_BlockRooms(t *testing.T) {
	av := newTestAvailability(t, 10, 2)

	require.NoError(t, av.BlockRooms(4, "renovation"))
	assert.Equal(t, 4, av.BlockedRooms)
	assert.Equal(t, 6, av.AvailableRooms())

	// blocking never draws on the overbooking allowance
	err := av.BlockRooms(7, "renovation")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 4, av.BlockedRooms)
	capacityInvariant(t, av)
}

func TestAvailability_UnblockRooms(t *testing.T) {
	av := newTestAvailability(t, 10, 0)
	require.NoError(t, av.BlockRooms(3, "maintenance"))

	require.NoError(t, av.UnblockRooms(2))
	assert.Equal(t, 1, av.BlockedRooms)

	err := av.UnblockRooms(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUnblock)
	assert.Equal(t, 1, av.BlockedRooms)
}

func TestAvailability_InvariantAfterMixedSequence(t *testing.T) {
	av := newTestAvailability(t, 10, 2)

	ops := []func() error{
		func() error { return av.ReserveRooms(5) },
		func() error { return av.BlockRooms(3, "event") },
		func() error { return av.ReserveRooms(4) },
		func() error { return av.ReleaseRooms(2) },
		func() error { return av.UnblockRooms(1) },
		func() error { return av.ReserveRooms(3) },
	}

	for _, op := range ops {
		_ = op() // some ops may fail; the invariant must hold regardless
		capacityInvariant(t, av)
	}
}

func TestAvailability_VersionBumpsOnEveryMutation(t *testing.T) {
	av := newTestAvailability(t, 10, 0)

	require.NoError(t, av.ReserveRooms(2))
	require.NoError(t, av.BlockRooms(1, "x"))
	require.NoError(t, av.ReleaseRooms(1))
	require.NoError(t, av.UnblockRooms(1))

	assert.Equal(t, 5, av.Version)

	// failed mutation leaves version untouched
	require.Error(t, av.ReleaseRooms(100))
	assert.Equal(t, 5, av.Version)
}
