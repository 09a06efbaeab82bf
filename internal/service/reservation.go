package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/KenzieRafa/Reservation-API/internal/domain"
	"github.com/KenzieRafa/Reservation-API/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	confirmationCodeLength  = 8
	confirmationCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	standardPolicyName    = "Standard"
	standardRefundPercent = 80
	standardDeadlineHours = 24
)

type ReservationService struct {
	repo        ports.ReservationRepo
	nightlyRate int64
	logger      logger.Logger
}

func NewReservationService(repo ports.ReservationRepo, nightlyRate int64, logger logger.Logger) *ReservationService {
	return &ReservationService{
		repo:        repo,
		nightlyRate: nightlyRate,
		logger:      logger,
	}
}

type SpecialRequestInput struct {
	RequestType domain.RequestType
	Description string
}

type CreateReservationInput struct {
	GuestID         uuid.UUID
	RoomTypeID      string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	BookingSource   domain.BookingSource
	SpecialRequests []SpecialRequestInput
	CreatedBy       string
}

func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	dateRange, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	guestCount, err := domain.NewGuestCount(input.Adults, input.Children)
	if err != nil {
		return nil, err
	}

	totalAmount, err := domain.NewMoney(s.nightlyRate*int64(dateRange.Nights()), domain.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	policy, err := domain.NewCancellationPolicy(standardPolicyName, standardRefundPercent, standardDeadlineHours)
	if err != nil {
		return nil, err
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = "SYSTEM"
	}

	reservation, err := domain.NewReservation(
		input.GuestID,
		input.RoomTypeID,
		dateRange,
		guestCount,
		totalAmount,
		policy,
		input.BookingSource,
		generateConfirmationCode(),
		createdBy,
	)
	if err != nil {
		return nil, err
	}

	for _, req := range input.SpecialRequests {
		reservation.AddSpecialRequest(req.RequestType, req.Description)
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ReservationID.String()),
		logger.String("confirmation_code", reservation.ConfirmationCode),
		logger.String("room_type_id", reservation.RoomTypeID),
		logger.Int("nights", reservation.Nights()),
	)

	return reservation, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return s.repo.GetByConfirmationCode(ctx, code)
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*domain.Reservation, error) {
	return s.repo.ListByGuest(ctx, guestID)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.List(ctx)
}

type ModifyReservationInput struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	Adults     *int
	Children   *int
	RoomTypeID string
}

func (s *ReservationService) Modify(ctx context.Context, id uuid.UUID, input ModifyReservationInput) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	changes := domain.ModifyReservation{RoomTypeID: input.RoomTypeID}

	if input.CheckIn != nil && input.CheckOut != nil {
		dateRange, err := domain.NewDateRange(*input.CheckIn, *input.CheckOut)
		if err != nil {
			return nil, err
		}
		changes.DateRange = &dateRange

		// new dates mean a new total at the current rate
		totalAmount, err := domain.NewMoney(s.nightlyRate*int64(dateRange.Nights()), reservation.TotalAmount.Currency)
		if err != nil {
			return nil, err
		}
		changes.TotalAmount = &totalAmount
	}

	if input.Adults != nil && input.Children != nil {
		guestCount, err := domain.NewGuestCount(*input.Adults, *input.Children)
		if err != nil {
			return nil, err
		}
		changes.GuestCount = &guestCount
	}

	if err := reservation.Modify(changes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation modified",
		logger.String("reservation_id", reservation.ReservationID.String()),
		logger.Int("version", reservation.Version),
	)

	return reservation, nil
}

func (s *ReservationService) AddSpecialRequest(ctx context.Context, id uuid.UUID, requestType domain.RequestType, description string) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	reservation.AddSpecialRequest(requestType, description)

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	return reservation, nil
}

func (s *ReservationService) Confirm(ctx context.Context, id uuid.UUID, paymentConfirmed bool) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err := reservation.Confirm(paymentConfirmed); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", reservation.ReservationID.String()),
	)

	return reservation, nil
}

func (s *ReservationService) CheckIn(ctx context.Context, id uuid.UUID, roomNumber string) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err := reservation.CheckIn(roomNumber); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("guest checked in",
		logger.String("reservation_id", reservation.ReservationID.String()),
		logger.String("room_number", roomNumber),
	)

	return reservation, nil
}

func (s *ReservationService) CheckOut(ctx context.Context, id uuid.UUID) (domain.Money, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Money{}, fmt.Errorf("get reservation: %w", err)
	}

	settled, err := reservation.CheckOut()
	if err != nil {
		return domain.Money{}, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return domain.Money{}, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("guest checked out",
		logger.String("reservation_id", reservation.ReservationID.String()),
		logger.Int64("settled_amount", settled.Amount),
	)

	return settled, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.Money, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Money{}, fmt.Errorf("get reservation: %w", err)
	}

	refund, err := reservation.Cancel(reason)
	if err != nil {
		return domain.Money{}, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return domain.Money{}, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservation.ReservationID.String()),
		logger.Int64("refund_amount", refund.Amount),
	)

	return refund, nil
}

func (s *ReservationService) MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err := reservation.MarkNoShow(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation marked as no-show",
		logger.String("reservation_id", reservation.ReservationID.String()),
	)

	return reservation, nil
}

func generateConfirmationCode() string {
	code := make([]byte, confirmationCodeLength)
	for i := range code {
		code[i] = confirmationCodeCharset[rand.Intn(len(confirmationCodeCharset))]
	}
	return string(code)
}
