package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// UseCase use case для получения доступных времен выдачи/возврата на дату
type UseCase struct {
	carRepo      CarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo:      carRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: car=%d, date=%s", req.CarID, req.Date)

	// 1. Валидация входных данных
	if req.CarID <= 0 {
		uc.logger.Warn("GetAvailableTimes: invalid car id=%d", req.CarID)
		return nil, fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		uc.logger.Warn("GetAvailableTimes: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// 2. Получаем объявление ради окна выдачи
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetAvailableTimes: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 3. Пересекаем сетку слотов с окном выдачи.
	// Для сегодняшней даты остаются только слоты строго позже текущего времени
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)
	nowTime := types.NewTimeString(now)

	times := domain.ListAvailableTimes(req.Date, car.Hours, today, nowTime)

	uc.logger.Info("GetAvailableTimes: car=%d, date=%s, slots=%d", req.CarID, req.Date, len(times))

	return &Response{
		CarID: req.CarID,
		Date:  req.Date,
		Times: times,
	}, nil
}
