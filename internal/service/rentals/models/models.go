package models

import (
	"errors"
	"time"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// ToDomainRentalStatus конвертирует строку в domain статус
func ToDomainRentalStatus(s string) (domain.RentalStatus, error) {
	status := domain.RentalStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusInProgress,
		domain.StatusCompleted, domain.StatusCancelledByRenter,
		domain.StatusCancelledByHost, domain.StatusNoShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Request модели

// CancelRentalRequest запрос на отмену аренды
type CancelRentalRequest struct {
	UserID             int64  `json:"userId"`
	RentalID           int64  `json:"rentalId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetRenterRentalsRequest запрос на историю аренд пользователя
type GetRenterRentalsRequest struct {
	UserID   int64   `json:"userId"`
	RenterID int64   `json:"renterId"`
	Status   *string `json:"status,omitempty"`
}

// GetHostRentalsRequest запрос на аренды машин хоста
type GetHostRentalsRequest struct {
	UserID          int64   `json:"userId"`
	HostID          int64   `json:"hostId"`
	CarID           *int64  `json:"carId,omitempty"`
	StartDate       *string `json:"startDate,omitempty"` // "2026-06-01"
	EndDate         *string `json:"endDate,omitempty"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHostRentalsRequest) ToDomainFilter() (domain.HostRentalsFilter, error) {
	filter := domain.HostRentalsFilter{
		HostID:          r.HostID,
		CarID:           r.CarID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil {
		d, err := types.NewDateStringFromString(*r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &d
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainRentalStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// RentalResponse ответ с данными аренды
type RentalResponse struct {
	ID       int64 `json:"id"`
	RenterID int64 `json:"renterId"`
	CarID    int64 `json:"carId"`
	HostID   int64 `json:"hostId"`

	StartDate string `json:"startDate"` // "2026-06-20"
	StartTime string `json:"startTime"` // "10:00"
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`

	Days       int     `json:"days"`
	RentalCost float64 `json:"rentalCost"`
	ServiceFee float64 `json:"serviceFee"`
	Insurance  float64 `json:"insurance"`
	TotalPrice float64 `json:"totalPrice"`

	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`

	CarMake     string  `json:"carMake"`
	CarModel    string  `json:"carModel"`
	PricePerDay float64 `json:"pricePerDay"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainRental конвертирует domain модель в response
func FromDomainRental(r *domain.Rental) *RentalResponse {
	return &RentalResponse{
		ID:                 r.ID,
		RenterID:           r.RenterID,
		CarID:              r.CarID,
		HostID:             r.HostID,
		StartDate:          r.StartDate.String(),
		StartTime:          r.StartTime.String(),
		EndDate:            r.EndDate.String(),
		EndTime:            r.EndTime.String(),
		Days:               r.Days,
		RentalCost:         r.RentalCost,
		ServiceFee:         r.ServiceFee,
		Insurance:          r.Insurance,
		TotalPrice:         r.TotalPrice,
		Status:             string(r.Status),
		TransactionID:      r.TransactionID,
		CarMake:            r.CarMake,
		CarModel:           r.CarModel,
		PricePerDay:        r.PricePerDay,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainRentals конвертирует список domain моделей в response
func FromDomainRentals(rentals []*domain.Rental) []*RentalResponse {
	result := make([]*RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		result = append(result, FromDomainRental(r))
	}
	return result
}
