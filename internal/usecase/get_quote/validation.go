package get_quote

import (
	"fmt"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.CarID <= 0 {
		return fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}

	switch req.FeeModel {
	case "", domain.FeeFlat, domain.FeePercentage:
	default:
		return fmt.Errorf("%w: unknown fee model %q", ErrInvalidInput, req.FeeModel)
	}

	// Каждое заданное поле диапазона должно быть валидным само по себе
	if !req.StartDate.IsZero() {
		if err := req.StartDate.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start date", ErrInvalidInput)
		}
	}
	if !req.EndDate.IsZero() {
		if err := req.EndDate.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end date", ErrInvalidInput)
		}
	}
	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
	}
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time", ErrInvalidInput)
		}
	}

	// Перевернутый диапазон отклоняется, недостающие части допустимы.
	// Порядок проверяет та же машина состояний, что строит диапазон
	// на стороне клиента
	if rangeComplete(req) {
		r := domain.DateRange{}.SelectStartDate(req.StartDate)
		if _, err := r.SelectEndDate(req.EndDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// rangeComplete сообщает, заданы ли все четыре части диапазона
func rangeComplete(req *Request) bool {
	return !req.StartDate.IsZero() && !req.StartTime.IsZero() &&
		!req.EndDate.IsZero() && !req.EndTime.IsZero()
}
