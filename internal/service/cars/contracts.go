package cars

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	ListAvailable(ctx context.Context) ([]*domain.Car, error)
	ListByHost(ctx context.Context, hostID int64) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
