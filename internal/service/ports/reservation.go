package ports

import (
	"context"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/google/uuid"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}
