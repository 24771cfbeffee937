package assistant_search

import (
	"context"

	assistantSearch "github.com/cubecar/CC-RentalService/internal/usecase/assistant_search"
)

type AssistantSearchUseCase interface {
	Execute(ctx context.Context, req *assistantSearch.Request) (*assistantSearch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
