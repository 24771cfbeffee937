package assistant

import "errors"

var (
	// ErrNotConfigured возвращается, когда клиент ассистента не настроен
	ErrNotConfigured = errors.New("assistant client: not configured")

	// ErrGenerationFailed возвращается при ошибке генерации ответа
	ErrGenerationFailed = errors.New("assistant client: generation failed")

	// ErrEmptyResponse возвращается, когда модель не вернула текст
	ErrEmptyResponse = errors.New("assistant client: empty response")
)
