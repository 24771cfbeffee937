package get_available_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	getAvailableTimes "github.com/cubecar/CC-RentalService/internal/usecase/get_available_times"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

const (
	msgInvalidCarID = "некорректный ID машины"
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCarNotFound  = "машина не найдена"
)

// TimesResponse HTTP response model
type TimesResponse struct {
	CarID int64    `json:"carId"`
	Date  string   `json:"date"`
	Times []string `json:"times"` // ["08:00", "08:30", ...]
}

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/available-times
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id}/available-times - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /cars/{id}/available-times - Missing date: car_id=%d", carID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		CarID: carID,
		Date:  types.DateString(date),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/available-times - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/available-times - Invalid input: car_id=%d, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /cars/{id}/available-times - Failed: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	times := make([]string, 0, len(result.Times))
	for _, t := range result.Times {
		times = append(times, t.String())
	}

	h.logger.Info("GET /cars/{id}/available-times - Success: car_id=%d, date=%s, slots=%d",
		carID, date, len(times))
	handlers.RespondJSON(w, http.StatusOK, &TimesResponse{
		CarID: result.CarID,
		Date:  result.Date.String(),
		Times: times,
	})
}
