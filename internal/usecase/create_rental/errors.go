package create_rental

import "errors"

var (
	// ErrCarNotFound возвращается, когда машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrCarNotListed возвращается, когда объявление снято с публикации
	ErrCarNotListed = errors.New("car is not listed")

	// ErrOwnCar возвращается при попытке арендовать собственную машину
	ErrOwnCar = errors.New("cannot rent your own car")

	// ErrDatesUnavailable возвращается, когда выбранные даты уже заняты
	ErrDatesUnavailable = errors.New("selected dates are not available")

	// ErrTimeOutsideHours возвращается, когда время выдачи или возврата
	// выходит за окно выдачи машины
	ErrTimeOutsideHours = errors.New("time is outside pickup hours")

	// ErrInvalidCard возвращается при некорректных данных карты
	ErrInvalidCard = errors.New("invalid card details")

	// ErrPaymentDeclined возвращается, когда платеж отклонен шлюзом
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
