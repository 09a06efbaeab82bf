package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/scheduler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresAndReminds(t *testing.T) {
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	expired := []*domain.WaitlistEntry{
		{WaitlistID: uuid.New(), GuestID: uuid.New(), RoomTypeID: "DELUXE_001"},
	}
	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	sweeper.EXPECT().SendReminders(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 2)
}

func TestScheduler_Tick_ExpireErrorStillSendsReminders(t *testing.T) {
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))
	sweeper.EXPECT().SendReminders(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, log)

	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil).Times(3)
	sweeper.EXPECT().SendReminders(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(sweeper.Calls)
	assert.GreaterOrEqual(t, calls, 6)
}
