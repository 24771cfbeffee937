package get_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
)

type fakeCarRepo struct {
	car *domain.Car
	err error
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return f.car, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testPricing() PricingConfig {
	return PricingConfig{
		ServiceFeePercent: 0.10,
		FlatServiceFee:    45.0,
		FlatInsurance:     30.0,
	}
}

func newUseCase(dailyRate float64) *UseCase {
	car := &domain.Car{ID: 1, PricePerDay: dailyRate, Available: true}
	return NewUseCase(&fakeCarRepo{car: car}, testPricing(), nopLogger{})
}

func TestExecute_FlatModelWithCompleteRange(t *testing.T) {
	uc := newUseCase(85)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     1,
		StartDate: "2026-06-20", StartTime: "10:00",
		EndDate: "2026-06-23", EndTime: "10:00",
		FeeModel: domain.FeeFlat,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 255.0, resp.RentalCost)
	assert.Equal(t, 45.0, resp.ServiceFee)
	assert.Equal(t, 30.0, resp.Insurance)
	assert.Equal(t, 330.0, resp.Total)
}

func TestExecute_PercentageModel(t *testing.T) {
	uc := newUseCase(85)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     1,
		StartDate: "2026-06-20", StartTime: "10:00",
		EndDate: "2026-06-23", EndTime: "10:00",
		FeeModel: domain.FeePercentage,
	})

	require.NoError(t, err)
	assert.Equal(t, 255.0, resp.RentalCost)
	assert.InDelta(t, 25.5, resp.ServiceFee, 1e-9)
	assert.Equal(t, 0.0, resp.Insurance)
	assert.InDelta(t, 280.5, resp.Total, 1e-9)
}

func TestExecute_IncompleteRangeUsesDefaultDays(t *testing.T) {
	uc := newUseCase(85)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     1,
		StartDate: "2026-06-20", StartTime: "10:00",
		// Конец диапазона не выбран
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRentalDays, resp.Days)
	assert.Equal(t, 255.0, resp.RentalCost)
}

func TestExecute_EmptyFeeModelDefaultsToFlat(t *testing.T) {
	uc := newUseCase(100)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1})

	require.NoError(t, err)
	assert.Equal(t, 45.0, resp.ServiceFee)
	assert.Equal(t, 30.0, resp.Insurance)
}

func TestExecute_PartialDayRoundsUp(t *testing.T) {
	uc := newUseCase(100)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:     1,
		StartDate: "2026-06-20", StartTime: "10:00",
		EndDate: "2026-06-21", EndTime: "10:30",
		FeeModel: domain.FeeFlat,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Days)
}

func TestExecute_ReversedRangeRejected(t *testing.T) {
	uc := newUseCase(100)

	_, err := uc.Execute(context.Background(), &Request{
		CarID:     1,
		StartDate: "2026-06-23", StartTime: "10:00",
		EndDate: "2026-06-20", EndTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownFeeModelRejected(t *testing.T) {
	uc := newUseCase(100)

	_, err := uc.Execute(context.Background(), &Request{CarID: 1, FeeModel: "subscription"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CarNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCarRepo{err: carRepo.ErrCarNotFound}, testPricing(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CarID: 42})

	assert.ErrorIs(t, err, ErrCarNotFound)
}
