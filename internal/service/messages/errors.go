package messages

import "errors"

var (
	// ErrConversationNotFound возвращается, когда диалог не найден
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrCarNotFound возвращается, когда машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к диалогу
	ErrAccessDenied = errors.New("access denied")

	// ErrSelfConversation возвращается при попытке написать самому себе
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
