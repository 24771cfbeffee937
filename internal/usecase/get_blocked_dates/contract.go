package get_blocked_dates

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
