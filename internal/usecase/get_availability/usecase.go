package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// UseCase use case для получения календаря доступности машины на месяц
type UseCase struct {
	carRepo      CarRepository
	rentalRepo   RentalRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, rentalRepo RentalRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo:      carRepo,
		rentalRepo:   rentalRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: car=%d, month=%s", req.CarID, req.Month)

	// 1. Валидация входных данных
	monthStart, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объявление
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetAvailability: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetAvailability: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !car.IsListed() {
		uc.logger.Warn("GetAvailability: car id=%d is not listed", req.CarID)
		return nil, ErrCarNotListed
	}

	// 3. Границы месяца
	monthEnd := monthStart.AddDate(0, 1, -1)
	from := types.NewDateString(monthStart)
	to := types.NewDateString(monthEnd)

	// 4. Получаем активные аренды, пересекающие месяц
	rentals, err := uc.rentalRepo.GetActiveByCarInPeriod(ctx, req.CarID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get rentals for car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get rentals: %v", ErrInternal, err)
	}

	blocked, err := domain.BlockedDatesFromRentals(rentals, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to expand blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to expand blocked dates: %v", ErrInternal, err)
	}

	// 5. Текущий момент для отсечения прошлого и сегодняшней даты после закрытия
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)
	nowTime := types.NewTimeString(now)

	// 6. Собираем календарь по дням месяца
	days := make([]Day, 0, monthEnd.Day())
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		date := types.NewDateString(d)
		days = append(days, Day{
			Date:       date,
			Selectable: domain.IsDateSelectable(date, today, blocked, car.Hours, nowTime),
			Blocked:    blocked.Contains(date),
		})
	}

	uc.logger.Info("GetAvailability: car=%d, month=%s, days=%d, blocked=%d",
		req.CarID, req.Month, len(days), len(blocked))

	return &Response{
		CarID: req.CarID,
		Month: req.Month,
		Days:  days,
	}, nil
}
