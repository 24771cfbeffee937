package get_conversation_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/messages"
)

const (
	msgInvalidConversationID = "некорректный ID диалога"
	msgNotFound              = "диалог не найден"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/conversations/{conversationId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	conversationID, err := strconv.ParseInt(vars["conversationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /conversations/{id}/messages - Invalid conversation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /conversations/{id}/messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListMessages(r.Context(), userID, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrConversationNotFound):
			h.logger.Warn("GET /conversations/{id}/messages - Not found: conversation_id=%d", conversationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, messages.ErrAccessDenied):
			h.logger.Warn("GET /conversations/{id}/messages - Access denied: conversation_id=%d, user_id=%d",
				conversationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, messages.ErrInvalidInput):
			h.logger.Warn("GET /conversations/{id}/messages - Invalid input: conversation_id=%d", conversationID)
			handlers.RespondBadRequest(w, msgInvalidConversationID)

		default:
			h.logger.Error("GET /conversations/{id}/messages - Failed: conversation_id=%d, error=%v",
				conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /conversations/{id}/messages - Returned %d messages: conversation_id=%d, user_id=%d",
		len(result), conversationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
