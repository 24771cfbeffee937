package cancel_rental

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/rentals"
	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аренда не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "аренда не может быть отменена"
)

type Handler struct {
	service RentalService
	logger  Logger
}

func NewHandler(service RentalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/cancel - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rentals/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: причина отмены может отсутствовать
	var req CancelRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /rentals/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rental, err := h.service.Cancel(r.Context(), &models.CancelRentalRequest{
		UserID:             userID,
		RentalID:           rentalID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrAccessDenied):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Access denied: rental_id=%d, user_id=%d",
				rentalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rentals.ErrCannotCancel):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Cannot cancel: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Invalid input: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /rentals/{id}/cancel - Failed to cancel: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/cancel - Rental cancelled: rental_id=%d, user_id=%d, status=%s",
		rentalID, userID, rental.Status)
	handlers.RespondJSON(w, http.StatusOK, rental)
}
