package domain

import (
	"math"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

// FeeModelKind вид модели сервисного сбора
type FeeModelKind string

const (
	FeeFlat       FeeModelKind = "flat"
	FeePercentage FeeModelKind = "percentage"
)

// FeeModel describes how the service fee is derived from the rental cost.
// Явный tagged-вариант: вызывающая сторона выбирает модель per call site
type FeeModel struct {
	Kind   FeeModelKind
	Amount float64 // для Kind == FeeFlat
	Rate   float64 // для Kind == FeePercentage, доля от стоимости аренды
}

// FlatFee returns a flat-amount fee model
func FlatFee(amount float64) FeeModel {
	return FeeModel{Kind: FeeFlat, Amount: amount}
}

// PercentageFee returns a percentage-of-rental fee model
func PercentageFee(rate float64) FeeModel {
	return FeeModel{Kind: FeePercentage, Rate: rate}
}

// Apply computes the service fee for the given rental cost
func (f FeeModel) Apply(rentalCost float64) float64 {
	switch f.Kind {
	case FeePercentage:
		return rentalCost * f.Rate
	default:
		return f.Amount
	}
}

// Quote is the derived cost breakdown for a date range.
// Никогда не хранится: пересчитывается при каждом изменении диапазона
type Quote struct {
	Days       int
	RentalCost float64
	ServiceFee float64
	Insurance  float64
	Total      float64
}

// ComputeDays converts a completed date-time range into billable days:
// ceil((end - start) / 24h), clamped to a minimum of 1.
//
// Минимум в один день маскирует перевернутый диапазон - упорядоченность
// дат проверяется на этапе выбора (DateRange), не здесь
func ComputeDays(
	startDate types.DateString, startTime types.TimeString,
	endDate types.DateString, endTime types.TimeString,
) (int, error) {
	start, err := startDate.At(startTime)
	if err != nil {
		return 0, err
	}

	end, err := endDate.At(endTime)
	if err != nil {
		return 0, err
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}

	return days, nil
}

// ComputeQuote builds the deterministic cost breakdown.
// Чистая функция: одинаковые входы дают побитово одинаковый результат
func ComputeQuote(days int, dailyRate float64, fee FeeModel, insurance float64) Quote {
	if days < 1 {
		days = 1
	}

	rentalCost := float64(days) * dailyRate
	serviceFee := fee.Apply(rentalCost)

	return Quote{
		Days:       days,
		RentalCost: rentalCost,
		ServiceFee: serviceFee,
		Insurance:  insurance,
		Total:      rentalCost + serviceFee + insurance,
	}
}
