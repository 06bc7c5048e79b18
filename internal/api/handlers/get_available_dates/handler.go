package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_dates"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-dates - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{RestaurantID: restaurantID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-dates - Invalid input: restaurant_id=%d", restaurantID)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)

		default:
			h.logger.Error("GET /restaurants/{id}/available-dates - Failed to get dates: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /restaurants/{id}/available-dates - Dates retrieved successfully: restaurant_id=%d, dates_count=%d",
		restaurantID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
