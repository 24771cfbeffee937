package get_availability

import (
	"fmt"
	"time"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) (time.Time, error) {
	if req.CarID <= 0 {
		return time.Time{}, fmt.Errorf("%w: car id must be positive", ErrInvalidInput)
	}

	month, err := time.Parse(MonthFormat, req.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}

	return month, nil
}
