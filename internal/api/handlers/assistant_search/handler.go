package assistant_search

import (
	"errors"
	"net/http"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	assistantSearch "github.com/cubecar/CC-RentalService/internal/usecase/assistant_search"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректный поисковый запрос"
)

type Handler struct {
	useCase AssistantSearchUseCase
	logger  Logger
}

func NewHandler(useCase AssistantSearchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assistantSearch.Request{
		Query:     req.Query,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, assistantSearch.ErrInvalidInput):
			h.logger.Warn("POST /assistant/search - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("POST /assistant/search - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/search - Success: sources=%d", len(result.Sources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
