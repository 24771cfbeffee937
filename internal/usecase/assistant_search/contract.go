package assistant_search

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/integrations/assistant"
)

// AssistantClient интерфейс клиента ассистента
type AssistantClient interface {
	Search(ctx context.Context, query string, lat, lng *float64) (*assistant.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
