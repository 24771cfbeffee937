package domain

import (
	"time"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	StatusPending           RentalStatus = "pending"
	StatusConfirmed         RentalStatus = "confirmed"
	StatusInProgress        RentalStatus = "in_progress"
	StatusCompleted         RentalStatus = "completed"
	StatusCancelledByRenter RentalStatus = "cancelled_by_renter"
	StatusCancelledByHost   RentalStatus = "cancelled_by_host"
	StatusNoShow            RentalStatus = "no_show"
)

// Rental represents a booked car rental
type Rental struct {
	ID       int64
	RenterID int64
	CarID    int64
	HostID   int64

	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString

	// Стоимость фиксируется на момент бронирования
	Days       int
	RentalCost float64
	ServiceFee float64
	Insurance  float64
	TotalPrice float64

	Status        RentalStatus
	TransactionID *string

	// Denormalized car data for history
	CarMake     string
	CarModel    string
	PricePerDay float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the rental is in an active state
func (r *Rental) IsActive() bool {
	return r.Status != StatusCancelledByRenter &&
		r.Status != StatusCancelledByHost &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the rental can be cancelled
func (r *Rental) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the rental has been cancelled
func (r *Rental) IsCancelled() bool {
	return r.Status == StatusCancelledByRenter || r.Status == StatusCancelledByHost
}

// CoversDate returns true if d falls within [StartDate, EndDate] inclusive
func (r *Rental) CoversDate(d types.DateString) bool {
	return !d.IsBefore(r.StartDate) && !d.IsAfter(r.EndDate)
}

// OverlapsRange returns true if [start, end] intersects the rental's dates.
// Оба диапазона включают границы: машина занята весь день возврата
func (r *Rental) OverlapsRange(start, end types.DateString) bool {
	return !r.StartDate.IsAfter(end) && !r.EndDate.IsBefore(start)
}

// HostRentalsFilter фильтр для получения аренд хоста
type HostRentalsFilter struct {
	HostID          int64             // Обязательный параметр
	CarID           *int64            // Фильтр по машине (опционально)
	StartDate       *types.DateString // Начало периода (опционально)
	EndDate         *types.DateString // Конец периода (опционально)
	Status          *RentalStatus     // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отмененные и no-show
}
