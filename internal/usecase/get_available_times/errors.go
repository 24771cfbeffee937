package get_available_times

import "errors"

var (
	// ErrCarNotFound возвращается, когда машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
