package get_host_rentals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/rentals"
	"github.com/cubecar/CC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidHostID  = "некорректный ID хоста"
	msgInvalidCarID   = "некорректный ID машины"
	msgInvalidFilters = "некорректные параметры фильтрации"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/hosts/{hostId}/rentals
// Query params: carId, startDate, endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hostID, err := strconv.ParseInt(vars["hostId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hosts/{id}/rentals - Invalid host ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHostID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hosts/{id}/rentals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()

	req := &models.GetHostRentalsRequest{
		UserID:          userID,
		HostID:          hostID,
		IncludeInactive: q.Get("includeInactive") == "true",
	}

	if raw := q.Get("carId"); raw != "" {
		carID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /hosts/{id}/rentals - Invalid car ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)
			return
		}
		req.CarID = &carID
	}
	if raw := q.Get("startDate"); raw != "" {
		req.StartDate = &raw
	}
	if raw := q.Get("endDate"); raw != "" {
		req.EndDate = &raw
	}
	if raw := q.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetHostRentals(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrAccessDenied):
			h.logger.Warn("GET /hosts/{id}/rentals - Access denied: host_id=%d, user_id=%d",
				hostID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rentals.ErrInvalidInput), errors.Is(err, rentals.ErrInvalidStatus):
			h.logger.Warn("GET /hosts/{id}/rentals - Invalid filters: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /hosts/{id}/rentals - Failed: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hosts/{id}/rentals - Returned %d rentals: host_id=%d", len(result), hostID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
