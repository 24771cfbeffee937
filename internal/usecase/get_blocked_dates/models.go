package get_blocked_dates

import "github.com/cubecar/CC-RentalService/pkg/types"

// Request модель запроса занятых дат машины за период
type Request struct {
	CarID int64
	From  types.DateString
	To    types.DateString
}

// Response модель ответа с занятыми датами
type Response struct {
	CarID int64
	Dates []types.DateString // Отсортированы по возрастанию
}
