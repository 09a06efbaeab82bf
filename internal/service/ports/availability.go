package ports

import (
	"context"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
)

type AvailabilityRepo interface {
	Create(ctx context.Context, a *domain.Availability) error
	GetByRoomAndDate(ctx context.Context, roomTypeID string, date time.Time) (*domain.Availability, error)
	ListByRoomType(ctx context.Context, roomTypeID string, start, end time.Time) ([]*domain.Availability, error)
	Update(ctx context.Context, a *domain.Availability) error
	Delete(ctx context.Context, roomTypeID string, date time.Time) error
}
