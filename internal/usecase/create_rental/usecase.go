package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	"github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
)

// UseCase use case для оформления аренды с оплатой
type UseCase struct {
	carRepo       CarRepository
	rentalRepo    RentalRepository
	paymentClient PaymentClient
	txManager     TransactionManager
	pricing       PricingConfig
	timeProvider  TimeProvider
	idGenerator   IDGenerator
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carRepo CarRepository,
	rentalRepo RentalRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	pricing PricingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:       carRepo,
		rentalRepo:    rentalRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		pricing:       pricing,
		timeProvider:  &RealTimeProvider{},
		idGenerator:   &UUIDGenerator{},
		logger:        logger,
	}
}

// Execute выполняет use case оформления аренды.
// Списание происходит до записи в БД; запись идет в сериализуемой
// транзакции с повторной проверкой занятости дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: renter=%d, car=%d, range=%s %s - %s %s",
		req.RenterID, req.CarID, req.StartDate, req.StartTime, req.EndDate, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объявление
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CreateRental: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CreateRental: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	if !car.IsListed() {
		uc.logger.Warn("CreateRental: car id=%d is not listed", req.CarID)
		return nil, ErrCarNotListed
	}

	if car.HostID == req.RenterID {
		uc.logger.Warn("CreateRental: renter id=%d owns car id=%d", req.RenterID, req.CarID)
		return nil, ErrOwnCar
	}

	// 4. Предварительная проверка занятости диапазона
	rentals, err := uc.rentalRepo.GetActiveByCarInPeriod(ctx, req.CarID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("CreateRental: failed to get rentals for car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get rentals: %v", ErrInternal, err)
	}

	blocked, err := domain.BlockedDatesFromRentals(rentals, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("CreateRental: failed to expand blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to expand blocked dates: %v", ErrInternal, err)
	}

	if err := validateRange(req, car, blocked, now); err != nil {
		uc.logger.Warn("CreateRental: range validation failed: %v", err)
		return nil, err
	}

	// Занятый день внутри диапазона тоже конфликт, не только крайние даты
	if hasOverlap(rentals, req.StartDate, req.EndDate) {
		uc.logger.Warn("CreateRental: range %s - %s overlaps an active rental", req.StartDate, req.EndDate)
		return nil, ErrDatesUnavailable
	}

	// 5. Считаем стоимость по процентной модели оформления
	days, err := domain.ComputeDays(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateRental: failed to compute days: %v", err)
		return nil, fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	}

	quote := domain.ComputeQuote(days, car.PricePerDay,
		domain.PercentageFee(uc.pricing.ServiceFeePercent), 0)

	// 6. Проводим списание до записи аренды
	idempotencyKey := uc.idGenerator.NewID()

	charge, err := uc.paymentClient.ProcessPayment(ctx, quote.Total, req.Card, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, paymentgateway.ErrInvalidCard):
			uc.logger.Warn("CreateRental: invalid card for renter id=%d", req.RenterID)
			return nil, ErrInvalidCard
		case errors.Is(err, paymentgateway.ErrPaymentDeclined):
			uc.logger.Warn("CreateRental: payment declined for renter id=%d", req.RenterID)
			return nil, ErrPaymentDeclined
		default:
			uc.logger.Error("CreateRental: payment failed for renter id=%d: %v", req.RenterID, err)
			return nil, fmt.Errorf("%w: payment failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateRental: charged %.2f, transaction=%s", quote.Total, charge.TransactionID)

	// Переменная для хранения результата
	var result *domain.Rental

	// 7. Записываем аренду в сериализуемой транзакции
	// с повторной проверкой занятости дат
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.rentalRepo.GetActiveByCarInPeriod(txCtx, req.CarID, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: failed to re-check rentals: %v", ErrInternal, err)
		}

		if hasOverlap(current, req.StartDate, req.EndDate) {
			return ErrDatesUnavailable
		}

		rental := &domain.Rental{
			RenterID:      req.RenterID,
			CarID:         car.ID,
			HostID:        car.HostID,
			StartDate:     req.StartDate,
			StartTime:     req.StartTime,
			EndDate:       req.EndDate,
			EndTime:       req.EndTime,
			Days:          quote.Days,
			RentalCost:    quote.RentalCost,
			ServiceFee:    quote.ServiceFee,
			Insurance:     quote.Insurance,
			TotalPrice:    quote.Total,
			Status:        domain.StatusConfirmed,
			TransactionID: &charge.TransactionID,
			CarMake:       car.Make,
			CarModel:      car.Model,
			PricePerDay:   car.PricePerDay,
		}

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		if err := uc.carRepo.IncrementTrips(txCtx, car.ID); err != nil {
			return fmt.Errorf("%w: failed to increment trips: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDatesUnavailable) {
			// Списание уже прошло: конфликт требует ручного возврата средств
			uc.logger.Warn("CreateRental: dates taken after charge, transaction=%s needs refund",
				charge.TransactionID)
			return nil, ErrDatesUnavailable
		}
		uc.logger.Error("CreateRental: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateRental: created rental id=%d for renter=%d, car=%d, total=%.2f",
		result.ID, req.RenterID, req.CarID, result.TotalPrice)

	return &Response{Rental: result}, nil
}
