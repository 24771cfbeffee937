package get_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "некорректный ID аренды"
	msgNotFound        = "аренда не найдена"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rentals/{id} - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rentals/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	rental, err := h.service.GetByID(r.Context(), userID, rentalID)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("GET /rentals/{id} - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrAccessDenied):
			h.logger.Warn("GET /rentals/{id} - Access denied: rental_id=%d, user_id=%d", rentalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("GET /rentals/{id} - Invalid input: rental_id=%d", rentalID)
			handlers.RespondBadRequest(w, msgInvalidRentalID)

		default:
			h.logger.Error("GET /rentals/{id} - Failed to get rental: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rentals/{id} - Rental retrieved successfully: rental_id=%d, user_id=%d",
		rentalID, userID)
	handlers.RespondJSON(w, http.StatusOK, rental)
}
