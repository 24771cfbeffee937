package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
	rentalRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/rental"
	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

// Service сервис для работы с арендами
type Service struct {
	rentalRepo RentalRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(rentalRepo RentalRepository, logger Logger) *Service {
	return &Service{
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

// GetByID получает аренду по ID
// Доступно арендатору и хосту машины
func (s *Service) GetByID(ctx context.Context, userID, rentalID int64) (*models.RentalResponse, error) {
	s.logger.Info("GetByID: user=%d, rental=%d", userID, rentalID)

	if rentalID <= 0 {
		return nil, fmt.Errorf("%w: rental id must be positive", ErrInvalidInput)
	}

	rental, err := s.getRental(ctx, rentalID, "GetByID")
	if err != nil {
		return nil, err
	}

	if rental.RenterID != userID && rental.HostID != userID {
		s.logger.Warn("GetByID: user=%d has no access to rental=%d", userID, rentalID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainRental(rental), nil
}

// Cancel отменяет аренду
// Арендатор и хост получают разные конечные статусы
func (s *Service) Cancel(ctx context.Context, req *models.CancelRentalRequest) (*models.RentalResponse, error) {
	s.logger.Info("Cancel: user=%d, rental=%d", req.UserID, req.RentalID)

	// 1. Валидируем входные данные
	if req.RentalID <= 0 {
		return nil, fmt.Errorf("%w: rental id must be positive", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	// 2. Получаем аренду и проверяем доступ
	rental, err := s.getRental(ctx, req.RentalID, "Cancel")
	if err != nil {
		return nil, err
	}

	var status domain.RentalStatus
	switch req.UserID {
	case rental.RenterID:
		status = domain.StatusCancelledByRenter
	case rental.HostID:
		status = domain.StatusCancelledByHost
	default:
		s.logger.Warn("Cancel: user=%d has no access to rental=%d", req.UserID, req.RentalID)
		return nil, ErrAccessDenied
	}

	// 3. Отменять можно только pending и confirmed
	if !rental.CanBeCancelled() {
		s.logger.Warn("Cancel: rental=%d in status %s cannot be cancelled", req.RentalID, rental.Status)
		return nil, ErrCannotCancel
	}

	// 4. Отменяем
	if err := s.rentalRepo.Cancel(ctx, req.RentalID, status, req.CancellationReason); err != nil {
		if errors.Is(err, rentalRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error: %v", err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 5. Возвращаем обновленную аренду
	updated, err := s.getRental(ctx, req.RentalID, "Cancel")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: rental=%d cancelled with status %s", req.RentalID, updated.Status)
	return models.FromDomainRental(updated), nil
}

// GetRenterRentals возвращает историю аренд пользователя
// Пользователь видит только свои аренды
func (s *Service) GetRenterRentals(ctx context.Context, req *models.GetRenterRentalsRequest) ([]*models.RentalResponse, error) {
	s.logger.Info("GetRenterRentals: user=%d, renter=%d", req.UserID, req.RenterID)

	if req.UserID != req.RenterID {
		s.logger.Warn("GetRenterRentals: user=%d requested rentals of renter=%d", req.UserID, req.RenterID)
		return nil, ErrAccessDenied
	}

	var status *domain.RentalStatus
	if req.Status != nil {
		converted, err := models.ToDomainRentalStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		status = &converted
	}

	rentals, err := s.rentalRepo.GetByRenterID(ctx, req.RenterID, status)
	if err != nil {
		s.logger.Error("GetRenterRentals: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRenterRentals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRentals(rentals), nil
}

// GetHostRentals возвращает аренды машин хоста с фильтрами
// Хост видит только свои машины
func (s *Service) GetHostRentals(ctx context.Context, req *models.GetHostRentalsRequest) ([]*models.RentalResponse, error) {
	s.logger.Info("GetHostRentals: user=%d, host=%d", req.UserID, req.HostID)

	if req.UserID != req.HostID {
		s.logger.Warn("GetHostRentals: user=%d requested rentals of host=%d", req.UserID, req.HostID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rentals, err := s.rentalRepo.GetByHostWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHostRentals: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHostRentals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRentals(rentals), nil
}

// getRental получает аренду с маппингом ошибки "не найдено"
func (s *Service) getRental(ctx context.Context, id int64, op string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("%s: rental id=%d not found", op, id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return rental, nil
}
