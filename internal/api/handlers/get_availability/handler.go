package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	getAvailability "github.com/cubecar/CC-RentalService/internal/usecase/get_availability"
)

const (
	msgInvalidCarID = "некорректный ID машины"
	msgMissingMonth = "месяц обязателен"
	msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"
	msgCarNotFound  = "машина не найдена"
	msgCarNotListed = "объявление снято с публикации"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/availability
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		h.logger.Warn("GET /cars/{id}/availability - Missing month: car_id=%d", carID)
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CarID: carID,
		Month: month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/availability - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getAvailability.ErrCarNotListed):
			h.logger.Warn("GET /cars/{id}/availability - Car not listed: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotListed)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/availability - Invalid input: car_id=%d, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /cars/{id}/availability - Failed: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id}/availability - Success: car_id=%d, month=%s", carID, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
