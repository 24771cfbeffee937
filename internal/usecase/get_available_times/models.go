package get_available_times

import "github.com/cubecar/CC-RentalService/pkg/types"

// Request модель запроса доступных времен выдачи на дату
type Request struct {
	CarID int64            // ID машины
	Date  types.DateString // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных времен
type Response struct {
	CarID int64              // ID машины
	Date  types.DateString   // Запрошенная дата
	Times []types.TimeString // Доступные слоты времени по сетке 30 минут
}
