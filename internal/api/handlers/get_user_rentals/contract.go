package get_user_rentals

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	GetRenterRentals(ctx context.Context, req *models.GetRenterRentalsRequest) ([]*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
