package ports

import (
	"context"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/google/uuid"
)

type WaitlistRepo interface {
	Create(ctx context.Context, e *domain.WaitlistEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitlistEntry, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.WaitlistEntry, error)
	ListByRoomType(ctx context.Context, roomTypeID string) ([]*domain.WaitlistEntry, error)
	ListActive(ctx context.Context) ([]*domain.WaitlistEntry, error)
	Update(ctx context.Context, e *domain.WaitlistEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WaitlistNotifier interface {
	NotifyWaitlistReminder(ctx context.Context, entry *domain.WaitlistEntry)
}
