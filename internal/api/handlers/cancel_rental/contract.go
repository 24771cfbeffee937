package cancel_rental

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	Cancel(ctx context.Context, req *models.CancelRentalRequest) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
