package get_quote

import (
	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// Request модель запроса расчета стоимости.
// Диапазон опционален: при неполном диапазоне берется длительность по умолчанию
type Request struct {
	CarID     int64
	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString
	FeeModel  domain.FeeModelKind // flat | percentage; пустое значение = flat
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	CarID       int64
	PricePerDay float64
	Days        int
	RentalCost  float64
	ServiceFee  float64
	Insurance   float64
	Total       float64
}
