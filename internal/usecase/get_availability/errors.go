package get_availability

import "errors"

var (
	// ErrCarNotFound возвращается, когда машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrCarNotListed возвращается, когда объявление снято с публикации
	ErrCarNotListed = errors.New("car is not listed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
