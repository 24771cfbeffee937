package get_blocked_dates

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// UseCase use case для получения занятых дат машины за период
type UseCase struct {
	carRepo    CarRepository
	rentalRepo RentalRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, rentalRepo RentalRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения занятых дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBlockedDates: car=%d, period=%s - %s", req.CarID, req.From, req.To)

	// 1. Валидация входных данных
	if req.CarID <= 0 {
		return nil, fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}
	if err := req.From.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid period start", ErrInvalidInput)
	}
	if err := req.To.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid period end", ErrInvalidInput)
	}
	if req.To.IsBefore(req.From) {
		return nil, fmt.Errorf("%w: period is reversed", ErrInvalidInput)
	}

	// 2. Проверяем, что машина существует
	if _, err := uc.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetBlockedDates: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetBlockedDates: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 3. Разворачиваем активные аренды в набор занятых дат
	rentals, err := uc.rentalRepo.GetActiveByCarInPeriod(ctx, req.CarID, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetBlockedDates: failed to get rentals: %v", err)
		return nil, fmt.Errorf("%w: failed to get rentals: %v", ErrInternal, err)
	}

	blocked, err := domain.BlockedDatesFromRentals(rentals, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetBlockedDates: failed to expand blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to expand blocked dates: %v", ErrInternal, err)
	}

	dates := make([]types.DateString, 0, len(blocked))
	for d := range blocked {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	uc.logger.Info("GetBlockedDates: car=%d, blocked=%d", req.CarID, len(dates))

	return &Response{CarID: req.CarID, Dates: dates}, nil
}
