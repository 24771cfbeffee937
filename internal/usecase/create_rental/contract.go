package create_rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	IncrementTrips(ctx context.Context, id int64) error
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error)
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	ProcessPayment(ctx context.Context, amount float64, card paymentgateway.CardDetails, idempotencyKey string) (*paymentgateway.ChargeResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// IDGenerator интерфейс генерации ключей идемпотентности (для тестирования)
type IDGenerator interface {
	NewID() string
}

// PricingConfig параметры расчета стоимости на оформлении
type PricingConfig struct {
	ServiceFeePercent float64
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор ключей идемпотентности на базе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный ключ
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
