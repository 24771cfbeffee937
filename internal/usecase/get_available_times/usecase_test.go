package get_available_times

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

func newUseCase(cars *fakeCarRepo, now time.Time) *UseCase {
	uc := NewUseCase(cars, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func carWithHours(start, end types.TimeString) *domain.Car {
	return &domain.Car{
		ID:        1,
		Available: true,
		Hours:     domain.OperatingHours{Start: start, End: end},
	}
}

func TestExecute_FutureDateFullWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeCarRepo{car: carWithHours("08:00", "18:00")}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Date: "2026-06-20"})

	require.NoError(t, err)
	// 08:00..18:00 включительно по сетке 30 минут
	require.Len(t, resp.Times, 21)
	assert.Equal(t, types.TimeString("08:00"), resp.Times[0])
	assert.Equal(t, types.TimeString("18:00"), resp.Times[len(resp.Times)-1])
}

func TestExecute_TodayFiltersPastSlots(t *testing.T) {
	// После 17:45 остается единственный слот 18:00
	now := time.Date(2026, 6, 15, 17, 45, 0, 0, time.UTC)

	uc := newUseCase(&fakeCarRepo{car: carWithHours("08:00", "18:00")}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Date: "2026-06-15"})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:00"}, resp.Times)
}

func TestExecute_TodayAfterClosingEmpty(t *testing.T) {
	now := time.Date(2026, 6, 15, 19, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeCarRepo{car: carWithHours("08:00", "18:00")}, now)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, Date: "2026-06-15"})

	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_CarNotFound(t *testing.T) {
	uc := newUseCase(&fakeCarRepo{err: carRepo.ErrCarNotFound}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CarID: 42, Date: "2026-06-20"})

	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newUseCase(&fakeCarRepo{car: carWithHours("08:00", "18:00")}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CarID: 1, Date: "20-06-2026"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
