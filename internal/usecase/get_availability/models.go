package get_availability

import "github.com/cubecar/CC-RentalService/pkg/types"

// MonthFormat формат параметра месяца
const MonthFormat = "2006-01"

// Request модель запроса календаря доступности на месяц
type Request struct {
	CarID int64  // ID машины
	Month string // Месяц в формате YYYY-MM
}

// Response модель ответа с календарем на месяц
type Response struct {
	CarID int64  // ID машины
	Month string // Запрошенный месяц
	Days  []Day  // Дни месяца по порядку
}

// Day состояние одного дня календаря
type Day struct {
	Date       types.DateString // Дата дня
	Selectable bool             // Можно ли выбрать день для начала/конца аренды
	Blocked    bool             // Занят ли день активной арендой
}
