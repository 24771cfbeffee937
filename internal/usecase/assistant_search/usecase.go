package assistant_search

import (
	"context"
	"fmt"
	"strings"

	"github.com/cubecar/CC-RentalService/internal/integrations/assistant"
)

// Тексты-заглушки при недоступности ассистента.
// Сбой модели не должен превращаться в ошибку для пользователя
const (
	msgNotConfigured = "AI service is not configured."
	msgSearchFailed  = "Sorry, I encountered an error while searching."
)

// maxQueryLength максимальная длина поискового запроса
const maxQueryLength = 1000

// UseCase use case поиска через AI-ассистента
type UseCase struct {
	client AssistantClient // nil, если ассистент выключен в конфигурации
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AssistantClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет поисковый запрос к ассистенту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	query := strings.TrimSpace(req.Query)

	// 1. Валидация входных данных
	if query == "" {
		uc.logger.Warn("AssistantSearch: empty query")
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	if len(query) > maxQueryLength {
		uc.logger.Warn("AssistantSearch: query too long (%d chars)", len(query))
		return nil, fmt.Errorf("%w: query is too long", ErrInvalidInput)
	}

	// 2. Ассистент может быть выключен в конфигурации
	if uc.client == nil {
		uc.logger.Info("AssistantSearch: assistant is disabled")
		return &Response{Text: msgNotConfigured, Sources: []assistant.Source{}}, nil
	}

	uc.logger.Info("AssistantSearch: query length=%d, has_location=%t",
		len(query), req.Latitude != nil && req.Longitude != nil)

	// 3. Запрос к модели; сбой деградирует до текста-заглушки
	result, err := uc.client.Search(ctx, query, req.Latitude, req.Longitude)
	if err != nil {
		uc.logger.Error("AssistantSearch: search failed: %v", err)
		return &Response{Text: msgSearchFailed, Sources: []assistant.Source{}}, nil
	}

	return &Response{Text: result.Text, Sources: result.Sources}, nil
}
