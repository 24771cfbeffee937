package get_blocked_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	getBlockedDates "github.com/cubecar/CC-RentalService/internal/usecase/get_blocked_dates"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

const (
	msgInvalidCarID  = "некорректный ID машины"
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidPeriod = "некорректный период, ожидается YYYY-MM-DD"
	msgCarNotFound   = "машина не найдена"
)

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	CarID int64    `json:"carId"`
	Dates []string `json:"dates"` // ["2026-06-20", ...]
}

type Handler struct {
	useCase GetBlockedDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/blocked-dates
// Query params: from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id}/blocked-dates - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		h.logger.Warn("GET /cars/{id}/blocked-dates - Missing period: car_id=%d", carID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBlockedDates.Request{
		CarID: carID,
		From:  types.DateString(from),
		To:    types.DateString(to),
	})
	if err != nil {
		switch {
		case errors.Is(err, getBlockedDates.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/blocked-dates - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getBlockedDates.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/blocked-dates - Invalid input: car_id=%d, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /cars/{id}/blocked-dates - Failed: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	dates := make([]string, 0, len(result.Dates))
	for _, d := range result.Dates {
		dates = append(dates, d.String())
	}

	h.logger.Info("GET /cars/{id}/blocked-dates - Success: car_id=%d, blocked=%d", carID, len(dates))
	handlers.RespondJSON(w, http.StatusOK, &BlockedDatesResponse{CarID: result.CarID, Dates: dates})
}
