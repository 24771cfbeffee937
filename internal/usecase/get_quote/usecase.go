package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
)

// UseCase use case для расчета стоимости аренды
type UseCase struct {
	carRepo CarRepository
	pricing PricingConfig
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, pricing PricingConfig, logger Logger) *UseCase {
	return &UseCase{
		carRepo: carRepo,
		pricing: pricing,
		logger:  logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: car=%d, range=%s %s - %s %s, model=%s",
		req.CarID, req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.FeeModel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объявление ради дневной ставки
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("GetQuote: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("GetQuote: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 3. Количество дней: неполный диапазон дает длительность по умолчанию
	days := domain.DefaultRentalDays
	if rangeComplete(req) {
		days, err = domain.ComputeDays(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
		if err != nil {
			uc.logger.Warn("GetQuote: failed to compute days: %v", err)
			return nil, fmt.Errorf("%w: invalid date range", ErrInvalidInput)
		}
	}

	// 4. Модель сбора выбирается вызывающей стороной:
	// flat для карточки машины, percentage для оформления аренды
	var fee domain.FeeModel
	var insurance float64
	switch req.FeeModel {
	case domain.FeePercentage:
		fee = domain.PercentageFee(uc.pricing.ServiceFeePercent)
		insurance = 0
	default:
		fee = domain.FlatFee(uc.pricing.FlatServiceFee)
		insurance = uc.pricing.FlatInsurance
	}

	quote := domain.ComputeQuote(days, car.PricePerDay, fee, insurance)

	uc.logger.Info("GetQuote: car=%d, days=%d, total=%.2f", req.CarID, quote.Days, quote.Total)

	return &Response{
		CarID:       req.CarID,
		PricePerDay: car.PricePerDay,
		Days:        quote.Days,
		RentalCost:  quote.RentalCost,
		ServiceFee:  quote.ServiceFee,
		Insurance:   quote.Insurance,
		Total:       quote.Total,
	}, nil
}
