package get_availability

import (
	"context"
	"time"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	// GetByID получает объявление по ID
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	// GetActiveByCarInPeriod получает активные аренды машины, пересекающие период
	GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
