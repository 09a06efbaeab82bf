package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/service/ports/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testNightlyRate = 1_500_000

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newStoredReservation(t *testing.T, checkInOffsetDays int) *domain.Reservation {
	t.Helper()

	dr, err := domain.NewDateRange(
		time.Now().AddDate(0, 0, checkInOffsetDays),
		time.Now().AddDate(0, 0, checkInOffsetDays+2),
	)
	require.NoError(t, err)
	gc, err := domain.NewGuestCount(2, 0)
	require.NoError(t, err)
	total, err := domain.NewMoney(testNightlyRate*2, domain.DefaultCurrency)
	require.NoError(t, err)
	policy, err := domain.NewCancellationPolicy(standardPolicyName, standardRefundPercent, standardDeadlineHours)
	require.NoError(t, err)

	r, err := domain.NewReservation(uuid.New(), "DELUXE_001", dr, gc, total, policy, domain.SourceOnline, "TESTCODE", "tester")
	require.NoError(t, err)
	return r
}

func TestReservationService_Create(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := svc.Create(context.Background(), CreateReservationInput{
		GuestID:       uuid.New(),
		RoomTypeID:    "DELUXE_001",
		CheckIn:       time.Now().AddDate(0, 0, 5),
		CheckOut:      time.Now().AddDate(0, 0, 8),
		Adults:        2,
		Children:      1,
		BookingSource: domain.SourceOnline,
		SpecialRequests: []SpecialRequestInput{
			{RequestType: domain.RequestHighFloor, Description: "above fifth floor"},
		},
		CreatedBy: "reception",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reservation.Status)
	assert.Equal(t, int64(testNightlyRate*3), reservation.TotalAmount.Amount)
	assert.Len(t, reservation.ConfirmationCode, confirmationCodeLength)
	assert.Len(t, reservation.SpecialRequests, 1)
	assert.Equal(t, "reception", reservation.CreatedBy)
}

func TestReservationService_Create_DefaultsCreatedBy(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := svc.Create(context.Background(), CreateReservationInput{
		GuestID:       uuid.New(),
		RoomTypeID:    "STANDARD_001",
		CheckIn:       time.Now().AddDate(0, 0, 5),
		CheckOut:      time.Now().AddDate(0, 0, 6),
		Adults:        1,
		BookingSource: domain.SourceWalkIn,
	})

	require.NoError(t, err)
	assert.Equal(t, "SYSTEM", reservation.CreatedBy)
}

func TestReservationService_Create_InvalidDates(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	_, err := svc.Create(context.Background(), CreateReservationInput{
		GuestID:       uuid.New(),
		RoomTypeID:    "DELUXE_001",
		CheckIn:       time.Now().AddDate(0, 0, 8),
		CheckOut:      time.Now().AddDate(0, 0, 5),
		Adults:        2,
		BookingSource: domain.SourceOnline,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Modify_RecomputesTotal(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	newCheckIn := time.Now().AddDate(0, 0, 10)
	newCheckOut := time.Now().AddDate(0, 0, 15)

	modified, err := svc.Modify(context.Background(), stored.ReservationID, ModifyReservationInput{
		CheckIn:  &newCheckIn,
		CheckOut: &newCheckOut,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, modified.Nights())
	assert.Equal(t, int64(testNightlyRate*5), modified.TotalAmount.Amount)
	assert.Equal(t, 2, modified.Version)
}

func TestReservationService_Modify_NotFound(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	id := uuid.New()
	repo.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Modify(context.Background(), id, ModifyReservationInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Confirm_RequiresPayment(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)

	_, err := svc.Confirm(context.Background(), stored.ReservationID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)
}

func TestReservationService_Confirm(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	confirmed, err := svc.Confirm(context.Background(), stored.ReservationID, true)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
}

func TestReservationService_CheckIn(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 0)
	require.NoError(t, stored.Confirm(true))

	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	checkedIn, err := svc.CheckIn(context.Background(), stored.ReservationID, "412")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, checkedIn.Status)
	assert.Equal(t, "412", checkedIn.RoomNumber)
}

func TestReservationService_CheckOut_WrongState(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)

	_, err := svc.CheckOut(context.Background(), stored.ReservationID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Cancel_RefundBeforeDeadline(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	refund, err := svc.Cancel(context.Background(), stored.ReservationID, "change of plans")

	require.NoError(t, err)
	assert.Equal(t, stored.TotalAmount.Amount*standardRefundPercent/100, refund.Amount)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, "change of plans", stored.CancellationReason)
}

func TestReservationService_Cancel_UpdateFails(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(errors.New("db down"))

	_, err := svc.Cancel(context.Background(), stored.ReservationID, "change of plans")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update reservation")
}

func TestReservationService_MarkNoShow(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, testNightlyRate, newTestLogger(t))

	stored := newStoredReservation(t, 10)
	require.NoError(t, stored.Confirm(true))

	repo.EXPECT().GetByID(mock.Anything, stored.ReservationID).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	noShow, err := svc.MarkNoShow(context.Background(), stored.ReservationID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, noShow.Status)
}

func TestGenerateConfirmationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateConfirmationCode()
		assert.Len(t, code, confirmationCodeLength)
		for _, c := range code {
			assert.Contains(t, confirmationCodeCharset, string(c))
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90, "codes should rarely collide")
}
