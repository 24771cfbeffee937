package create_rental

import (
	"errors"
	"net/http"

	"github.com/cubecar/CC-RentalService/internal/api/handlers"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	rentalModels "github.com/cubecar/CC-RentalService/internal/service/rentals/models"
	createRental "github.com/cubecar/CC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCarNotFound        = "машина не найдена"
	msgCarNotListed       = "объявление снято с публикации"
	msgOwnCar             = "нельзя арендовать собственную машину"
	msgDatesUnavailable   = "выбранные даты недоступны"
	msgTimeOutsideHours   = "время вне окна выдачи машины"
	msgInvalidCard        = "некорректные данные карты"
	msgPaymentDeclined    = "платеж отклонен"
	msgInvalidRentalData  = "некорректные данные аренды"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rentals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrCarNotFound):
			h.logger.Warn("POST /rentals - Car not found: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createRental.ErrCarNotListed):
			h.logger.Warn("POST /rentals - Car not listed: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondNotFound(w, msgCarNotListed)

		case errors.Is(err, createRental.ErrOwnCar):
			h.logger.Warn("POST /rentals - Own car: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondBadRequest(w, msgOwnCar)

		case errors.Is(err, createRental.ErrDatesUnavailable):
			h.logger.Warn("POST /rentals - Dates unavailable: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondError(w, http.StatusConflict, msgDatesUnavailable)

		case errors.Is(err, createRental.ErrTimeOutsideHours):
			h.logger.Warn("POST /rentals - Time outside hours: car_id=%d, user_id=%d", req.CarID, userID)
			handlers.RespondBadRequest(w, msgTimeOutsideHours)

		case errors.Is(err, createRental.ErrInvalidCard):
			h.logger.Warn("POST /rentals - Invalid card: user_id=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidCard)

		case errors.Is(err, createRental.ErrPaymentDeclined):
			h.logger.Warn("POST /rentals - Payment declined: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRentalData)

		default:
			h.logger.Error("POST /rentals - Failed to create rental: car_id=%d, user_id=%d, error=%v",
				req.CarID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created successfully: rental_id=%d, user_id=%d, car_id=%d",
		result.Rental.ID, userID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, rentalModels.FromDomainRental(result.Rental))
}
