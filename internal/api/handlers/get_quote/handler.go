package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/domain"
	getQuote "github.com/cubecar/CC-RentalService/internal/usecase/get_quote"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

const (
	msgInvalidCarID = "некорректный ID машины"
	msgInvalidInput = "некорректные параметры расчета"
	msgCarNotFound  = "машина не найдена"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CarID       int64   `json:"carId"`
	PricePerDay float64 `json:"pricePerDay"`
	Days        int     `json:"days"`
	RentalCost  float64 `json:"rentalCost"`
	ServiceFee  float64 `json:"serviceFee"`
	Insurance   float64 `json:"insurance"`
	Total       float64 `json:"total"`
}

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/quote
// Query params: startDate, startTime, endDate, endTime (все опциональны),
// feeModel (flat|percentage, по умолчанию flat)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cars/{id}/quote - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	q := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{
		CarID:     carID,
		StartDate: types.DateString(q.Get("startDate")),
		StartTime: types.TimeString(q.Get("startTime")),
		EndDate:   types.DateString(q.Get("endDate")),
		EndTime:   types.TimeString(q.Get("endTime")),
		FeeModel:  domain.FeeModelKind(q.Get("feeModel")),
	})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/quote - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/quote - Invalid input: car_id=%d, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /cars/{id}/quote - Failed: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id}/quote - Success: car_id=%d, days=%d, total=%.2f",
		carID, result.Days, result.Total)
	handlers.RespondJSON(w, http.StatusOK, &QuoteResponse{
		CarID:       result.CarID,
		PricePerDay: result.PricePerDay,
		Days:        result.Days,
		RentalCost:  result.RentalCost,
		ServiceFee:  result.ServiceFee,
		Insurance:   result.Insurance,
		Total:       result.Total,
	})
}
