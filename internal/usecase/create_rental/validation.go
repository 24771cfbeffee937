package create_rental

import (
	"fmt"
	"time"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renter id must be positive", ErrInvalidInput)
	}
	if req.CarID <= 0 {
		return fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}

	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end date", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time", ErrInvalidInput)
	}

	// Порядок дат проверяется той же машиной состояний, что строит
	// диапазон на стороне клиента
	r := domain.DateRange{}.SelectStartDate(req.StartDate)
	if _, err := r.SelectEndDate(req.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateRange проверяет диапазон против календаря машины:
// обе даты выбираемы, оба времени в окне выдачи
func validateRange(req *Request, car *domain.Car, blocked domain.BlockedDates, now time.Time) error {
	today := types.NewDateString(now)
	nowTime := types.NewTimeString(now)

	if !domain.IsDateSelectable(req.StartDate, today, blocked, car.Hours, nowTime) {
		return fmt.Errorf("%w: start date %s", ErrDatesUnavailable, req.StartDate)
	}
	if !domain.IsDateSelectable(req.EndDate, today, blocked, car.Hours, nowTime) {
		return fmt.Errorf("%w: end date %s", ErrDatesUnavailable, req.EndDate)
	}

	if !car.Hours.Contains(req.StartTime) {
		return fmt.Errorf("%w: start time %s", ErrTimeOutsideHours, req.StartTime)
	}
	if !car.Hours.Contains(req.EndTime) {
		return fmt.Errorf("%w: end time %s", ErrTimeOutsideHours, req.EndTime)
	}

	// Выдача сегодня возможна только на слот строго позже текущего времени
	if req.StartDate == today && !req.StartTime.IsAfter(nowTime) {
		return fmt.Errorf("%w: start time %s has already passed", ErrDatesUnavailable, req.StartTime)
	}

	return nil
}

// hasOverlap сообщает, пересекается ли диапазон с какой-либо активной арендой
func hasOverlap(rentals []*domain.Rental, start, end types.DateString) bool {
	for _, r := range rentals {
		if r.IsActive() && r.OverlapsRange(start, end) {
			return true
		}
	}
	return false
}
