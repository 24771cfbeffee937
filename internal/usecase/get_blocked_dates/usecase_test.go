package get_blocked_dates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

type fakeCarRepo struct {
	car *domain.Car
	err error
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return f.car, f.err
}

type fakeRentalRepo struct {
	rentals []*domain.Rental
}

func (f *fakeRentalRepo) GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error) {
	return f.rentals, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_SortedAndClamped(t *testing.T) {
	rentals := []*domain.Rental{
		// Частично за границей периода: обрезается по from
		{Status: domain.StatusConfirmed, StartDate: "2026-05-30", EndDate: "2026-06-02"},
		{Status: domain.StatusInProgress, StartDate: "2026-06-10", EndDate: "2026-06-11"},
	}

	uc := NewUseCase(&fakeCarRepo{car: &domain.Car{ID: 1}}, &fakeRentalRepo{rentals: rentals}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CarID: 1, From: "2026-06-01", To: "2026-06-30",
	})

	require.NoError(t, err)
	assert.Equal(t, []types.DateString{
		"2026-06-01", "2026-06-02", "2026-06-10", "2026-06-11",
	}, resp.Dates)
}

func TestExecute_ReversedPeriodRejected(t *testing.T) {
	uc := NewUseCase(&fakeCarRepo{car: &domain.Car{ID: 1}}, &fakeRentalRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CarID: 1, From: "2026-06-30", To: "2026-06-01",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
