package service

import (
	"context"
	"testing"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredAvailability(t *testing.T, dayOffset, total, overbooking int) *domain.Availability {
	t.Helper()

	a, err := domain.NewAvailability("DELUXE_001", time.Now().AddDate(0, 0, dayOffset), total, overbooking)
	require.NoError(t, err)
	return a
}

func TestAvailabilityService_Create(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	availability, err := svc.Create(context.Background(), "DELUXE_001", time.Now().AddDate(0, 0, 3), 10, 2)

	require.NoError(t, err)
	assert.Equal(t, 10, availability.TotalRooms)
	assert.Equal(t, 0, availability.ReservedRooms)
	assert.Equal(t, 2, availability.OverbookingThreshold)
}

func TestAvailabilityService_Create_InvalidCapacity(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	_, err := svc.Create(context.Background(), "DELUXE_001", time.Now(), -1, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_CheckAvailability(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := time.Now().AddDate(0, 0, 4)

	days := []*domain.Availability{
		newStoredAvailability(t, 3, 10, 0),
		newStoredAvailability(t, 4, 10, 0),
	}
	require.NoError(t, days[1].ReserveRooms(9))

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return(days, nil)

	ok, err := svc.CheckAvailability(context.Background(), "DELUXE_001", start, end, 2)

	require.NoError(t, err)
	assert.False(t, ok, "the tighter day bounds the whole range")
}

func TestAvailabilityService_CheckAvailability_NoLedger(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := time.Now().AddDate(0, 0, 4)

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return(nil, nil)

	ok, err := svc.CheckAvailability(context.Background(), "DELUXE_001", start, end, 1)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityService_ReserveRooms(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := time.Now().AddDate(0, 0, 4)

	days := []*domain.Availability{
		newStoredAvailability(t, 3, 10, 0),
		newStoredAvailability(t, 4, 10, 0),
	}

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return(days, nil)
	repo.EXPECT().Update(mock.Anything, days[0]).Return(nil)
	repo.EXPECT().Update(mock.Anything, days[1]).Return(nil)

	require.NoError(t, svc.ReserveRooms(context.Background(), "DELUXE_001", start, end, 2))

	assert.Equal(t, 2, days[0].ReservedRooms)
	assert.Equal(t, 2, days[1].ReservedRooms)
}

func TestAvailabilityService_ReserveRooms_MidRangeFailure(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := time.Now().AddDate(0, 0, 4)

	roomy := newStoredAvailability(t, 3, 10, 0)
	full := newStoredAvailability(t, 4, 10, 0)
	require.NoError(t, full.ReserveRooms(10))

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return([]*domain.Availability{roomy, full}, nil)
	repo.EXPECT().Update(mock.Anything, roomy).Return(nil)

	err := svc.ReserveRooms(context.Background(), "DELUXE_001", start, end, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), full.Date.Format("2006-01-02"))
	assert.Equal(t, 2, roomy.ReservedRooms, "applied days stay applied")
}

func TestAvailabilityService_ReserveRooms_NoLedger(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := time.Now().AddDate(0, 0, 4)

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return(nil, nil)

	err := svc.ReserveRooms(context.Background(), "DELUXE_001", start, end, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAvailabilityNotFound)
}

func TestAvailabilityService_ReleaseRooms(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := start

	day := newStoredAvailability(t, 3, 10, 0)
	require.NoError(t, day.ReserveRooms(4))

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return([]*domain.Availability{day}, nil)
	repo.EXPECT().Update(mock.Anything, day).Return(nil)

	require.NoError(t, svc.ReleaseRooms(context.Background(), "DELUXE_001", start, end, 3))
	assert.Equal(t, 1, day.ReservedRooms)
}

func TestAvailabilityService_BlockRooms(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := start

	day := newStoredAvailability(t, 3, 10, 0)

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return([]*domain.Availability{day}, nil)
	repo.EXPECT().Update(mock.Anything, day).Return(nil)

	require.NoError(t, svc.BlockRooms(context.Background(), "DELUXE_001", start, end, 3, "maintenance"))
	assert.Equal(t, 3, day.BlockedRooms)
	assert.Equal(t, 7, day.AvailableRooms())
}

func TestAvailabilityService_UnblockRooms_TooMany(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	svc := NewAvailabilityService(repo, newTestLogger(t))

	start := time.Now().AddDate(0, 0, 3)
	end := start

	day := newStoredAvailability(t, 3, 10, 0)
	require.NoError(t, day.BlockRooms(2, "maintenance"))

	repo.EXPECT().ListByRoomType(mock.Anything, "DELUXE_001", start, end).Return([]*domain.Availability{day}, nil)

	err := svc.UnblockRooms(context.Background(), "DELUXE_001", start, end, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidUnblock)
}
