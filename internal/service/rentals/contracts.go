package rentals

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetByRenterID(ctx context.Context, renterID int64, status *domain.RentalStatus) ([]*domain.Rental, error)
	GetByHostWithFilter(ctx context.Context, filter domain.HostRentalsFilter) ([]*domain.Rental, error)
	Cancel(ctx context.Context, id int64, status domain.RentalStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
