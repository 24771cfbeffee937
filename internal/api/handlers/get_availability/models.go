package get_availability

import (
	getAvailability "github.com/cubecar/CC-RentalService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CarID int64         `json:"carId"`
	Month string        `json:"month"` // "2026-06"
	Days  []DayResponse `json:"days"`
}

// DayResponse состояние одного дня календаря
type DayResponse struct {
	Date       string `json:"date"` // "2026-06-15"
	Selectable bool   `json:"selectable"`
	Blocked    bool   `json:"blocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:       d.Date.String(),
			Selectable: d.Selectable,
			Blocked:    d.Blocked,
		})
	}

	return &AvailabilityResponse{
		CarID: resp.CarID,
		Month: resp.Month,
		Days:  days,
	}
}
