package domain

import "github.com/cubecar/CC-RentalService/pkg/types"

// Time grid constants
const (
	// TimeSlotStepMinutes шаг сетки времени выдачи/возврата
	TimeSlotStepMinutes = 30

	// TimeSlotsPerDay количество слотов сетки в сутках ("00:00".."23:30")
	TimeSlotsPerDay = 24 * 60 / TimeSlotStepMinutes
)

// Pricing defaults
const (
	// DefaultRentalDays длительность аренды по умолчанию,
	// когда диапазон дат еще не выбран полностью
	DefaultRentalDays = 3

	DefaultServiceFeePercent = 0.10
	DefaultFlatServiceFee    = 45.0
	DefaultFlatInsurance     = 30.0
)

// Default operating hours для новых объявлений
const (
	DefaultPickupStart types.TimeString = "08:00"
	DefaultPickupEnd   types.TimeString = "18:00"
)

// Business validation constants
const (
	MinCarYear                  = 1980
	MaxDescriptionLength        = 2000
	MaxMessageLength            = 2000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = types.DateFormat // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных аренд
// Используется при подсчете занятых дат
var InactiveStatuses = []RentalStatus{
	StatusCancelledByRenter,
	StatusCancelledByHost,
	StatusNoShow,
}

// ActiveStatuses список статусов активных аренд
var ActiveStatuses = []RentalStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
