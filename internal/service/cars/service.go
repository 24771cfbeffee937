package cars

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	"github.com/cubecar/CC-RentalService/internal/service/cars/models"
)

// defaultFeatures комплектация по умолчанию для новых объявлений
var defaultFeatures = []string{"Bluetooth", "Backup Camera"}

// Service сервис для работы с объявлениями
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// Create публикует новое объявление
// Хост берется из авторизации, незаполненные поля получают дефолты
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Create: host=%d, %s %s (%d)", req.HostID, req.Make, req.Model, req.Year)

	// 1. Валидируем входные данные
	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Конвертируем в domain модель с дефолтами
	car := req.ToDomainCar()
	if len(car.Features) == 0 {
		car.Features = defaultFeatures
	}
	if car.Images == nil {
		car.Images = []string{}
	}

	// 3. Создаем объявление
	created, err := s.carRepo.Create(ctx, car)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created car id=%d", created.ID)
	return models.FromDomainCar(created), nil
}

// GetByID получает объявление по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	s.logger.Info("GetByID: car=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// List возвращает каталог доступных машин
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) ([]*models.CarResponse, error) {
	cars, err := s.carRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: returned %d cars", len(cars))
	return models.FromDomainCars(cars), nil
}

// ListByHost возвращает объявления хоста
func (s *Service) ListByHost(ctx context.Context, hostID int64) ([]*models.CarResponse, error) {
	if hostID <= 0 {
		return nil, fmt.Errorf("%w: host id must be positive", ErrInvalidInput)
	}

	cars, err := s.carRepo.ListByHost(ctx, hostID)
	if err != nil {
		s.logger.Error("ListByHost: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByHost - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCars(cars), nil
}

// validateCreateRequest проверяет корректность данных нового объявления
func (s *Service) validateCreateRequest(req *models.CreateCarRequest) error {
	if req.HostID <= 0 {
		return fmt.Errorf("%w: host id must be positive", ErrInvalidInput)
	}
	if req.Make == "" || req.Model == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if req.Year < domain.MinCarYear || req.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: invalid year %d", ErrInvalidInput, req.Year)
	}
	if req.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if !domain.IsValidCarType(domain.CarType(req.Type)) {
		return fmt.Errorf("%w: unknown car type %q", ErrInvalidInput, req.Type)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	car := req.ToDomainCar()
	if err := car.Hours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid pickup start time", ErrInvalidInput)
	}
	if err := car.Hours.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid pickup end time", ErrInvalidInput)
	}
	if car.Hours.End.IsBefore(car.Hours.Start) {
		return fmt.Errorf("%w: pickup window is reversed", ErrInvalidInput)
	}

	return nil
}
