package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
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
	err     error
}

func (f *fakeRentalRepo) GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error) {
	return f.rentals, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func listedCar() *domain.Car {
	return &domain.Car{
		ID:        1,
		HostID:    10,
		Available: true,
		Hours:     domain.OperatingHours{Start: "08:00", End: "18:00"},
	}
}

func newUseCase(cars *fakeCarRepo, rentals *fakeRentalRepo, now time.Time) *UseCase {
	uc := NewUseCase(cars, rentals, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_MonthCalendar(t *testing.T) {
	// Середина июня: прошлые дни недоступны, будущие доступны
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	rentals := []*domain.Rental{
		{
			ID:        100,
			CarID:     1,
			Status:    domain.StatusConfirmed,
			StartDate: "2026-06-20",
			EndDate:   "2026-06-22",
		},
	}

	uc := newUseCase(&fakeCarRepo{car: listedCar()}, &fakeRentalRepo{rentals: rentals}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Month: "2026-06"})

	require.NoError(t, err)
	require.Len(t, resp.Days, 30)

	byDate := make(map[types.DateString]Day, len(resp.Days))
	for _, d := range resp.Days {
		byDate[d.Date] = d
	}

	assert.False(t, byDate["2026-06-01"].Selectable, "past day must not be selectable")
	assert.True(t, byDate["2026-06-15"].Selectable, "today before closing must be selectable")
	assert.True(t, byDate["2026-06-16"].Selectable)

	assert.False(t, byDate["2026-06-20"].Selectable)
	assert.True(t, byDate["2026-06-20"].Blocked)
	assert.True(t, byDate["2026-06-21"].Blocked)
	assert.True(t, byDate["2026-06-22"].Blocked)
	assert.False(t, byDate["2026-06-23"].Blocked)
}

func TestExecute_TodayAfterClosingNotSelectable(t *testing.T) {
	now := time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)

	uc := newUseCase(&fakeCarRepo{car: listedCar()}, &fakeRentalRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Month: "2026-06"})

	require.NoError(t, err)

	for _, d := range resp.Days {
		if d.Date == "2026-06-15" {
			assert.False(t, d.Selectable)
			assert.False(t, d.Blocked)
		}
	}
}

func TestExecute_CancelledRentalsDoNotBlock(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	rentals := []*domain.Rental{
		{
			ID:        101,
			CarID:     1,
			Status:    domain.StatusCancelledByRenter,
			StartDate: "2026-06-10",
			EndDate:   "2026-06-12",
		},
	}

	uc := newUseCase(&fakeCarRepo{car: listedCar()}, &fakeRentalRepo{rentals: rentals}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Month: "2026-06"})

	require.NoError(t, err)

	for _, d := range resp.Days {
		assert.False(t, d.Blocked, "cancelled rental must not block %s", d.Date)
	}
}

func TestExecute_CarNotFound(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeCarRepo{err: carRepo.ErrCarNotFound}, &fakeRentalRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{CarID: 42, Month: "2026-06"})

	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_UnlistedCar(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	car := listedCar()
	car.Available = false

	uc := newUseCase(&fakeCarRepo{car: car}, &fakeRentalRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{CarID: 1, Month: "2026-06"})

	assert.ErrorIs(t, err, ErrCarNotListed)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := newUseCase(&fakeCarRepo{car: listedCar()}, &fakeRentalRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CarID: 1, Month: "June 2026"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
