package send_message

import (
	"errors"
	"net/http"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/messages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCarNotFound        = "машина не найдена"
	msgSelfConversation   = "нельзя отправить сообщение самому себе"
	msgInvalidMessage     = "некорректное сообщение"
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

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /messages - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	message, err := h.service.SendMessage(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrCarNotFound):
			h.logger.Warn("POST /messages - Car not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, messages.ErrSelfConversation):
			h.logger.Warn("POST /messages - Self conversation: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgSelfConversation)

		case errors.Is(err, messages.ErrInvalidInput):
			h.logger.Warn("POST /messages - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /messages - Failed to send message: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /messages - Message sent: message_id=%d, user_id=%d", message.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, message)
}
