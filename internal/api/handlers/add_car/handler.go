package add_car

import (
	"errors"
	"net/http"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/service/cars"
	"github.com/cubecar/CC-RentalService/internal/service/cars/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarData     = "некорректные данные объявления"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /cars - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Хост всегда берется из авторизации, а не из тела
	req.HostID = userID

	car, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid car data: host_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidCarData)

		default:
			h.logger.Error("POST /cars - Failed to create car: host_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created successfully: car_id=%d, host_id=%d", car.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, car)
}
