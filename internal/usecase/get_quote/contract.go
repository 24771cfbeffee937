package get_quote

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	// GetByID получает объявление по ID
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PricingConfig параметры расчета стоимости
type PricingConfig struct {
	ServiceFeePercent float64 // Доля сервисного сбора для процентной модели
	FlatServiceFee    float64 // Фиксированный сервисный сбор
	FlatInsurance     float64 // Страховка для фиксированной модели
}
