package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда объявление не найдено
	ErrCarNotFound = errors.New("car not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
