package list_cars

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/cars/models"
)

type CarService interface {
	List(ctx context.Context) ([]*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
