package create_rental

import (
	"github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
	createRental "github.com/cubecar/CC-RentalService/internal/usecase/create_rental"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	CarID     int64  `json:"carId"`
	StartDate string `json:"startDate"` // "2026-06-20"
	StartTime string `json:"startTime"` // "10:00"
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`

	Card CardRequest `json:"card"`
}

// CardRequest данные карты из тела запроса
type CardRequest struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"` // MM/YY
	CVC    string `json:"cvc"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRentalRequest) ToUseCaseRequest(renterID int64) *createRental.Request {
	return &createRental.Request{
		RenterID:  renterID,
		CarID:     r.CarID,
		StartDate: types.DateString(r.StartDate),
		StartTime: types.TimeString(r.StartTime),
		EndDate:   types.DateString(r.EndDate),
		EndTime:   types.TimeString(r.EndTime),
		Card: paymentgateway.CardDetails{
			Number: r.Card.Number,
			Holder: r.Card.Holder,
			Expiry: r.Card.Expiry,
			CVC:    r.Card.CVC,
		},
	}
}
