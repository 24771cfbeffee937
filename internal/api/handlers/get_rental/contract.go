package get_rental

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	GetByID(ctx context.Context, userID, rentalID int64) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
