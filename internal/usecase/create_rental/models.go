package create_rental

import (
	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// Request модель запроса на оформление аренды
type Request struct {
	RenterID int64 // ID арендатора (из заголовка авторизации)
	CarID    int64 // ID машины

	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString

	Card paymentgateway.CardDetails // Данные карты для списания
}

// Response модель ответа с созданной арендой
type Response struct {
	Rental *domain.Rental
}
