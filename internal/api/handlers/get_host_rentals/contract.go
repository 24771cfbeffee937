package get_host_rentals

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	GetHostRentals(ctx context.Context, req *models.GetHostRentalsRequest) ([]*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
