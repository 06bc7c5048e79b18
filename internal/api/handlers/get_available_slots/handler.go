package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgMissingPartySize    = "количество гостей обязательно"
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidDate         = "некорректная дата бронирования"
	msgDateTooFar          = "дата выходит за пределы окна бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-slots
// Query params: date (required, YYYY-MM-DD), partySize (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем restaurantId из URL
	restaurantIDStr := vars["restaurantId"]
	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем partySize из query параметров
	partySizeStr := r.URL.Query().Get("partySize")
	if partySizeStr == "" {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Missing party size")
		handlers.RespondBadRequest(w, msgMissingPartySize)
		return
	}

	// Формируем запрос к use case (с парсингом даты и размера компании)
	useCaseReq, err := ToUseCaseRequest(restaurantID, dateStr, partySizeStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid date: restaurant_id=%d, date=%s",
				restaurantID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Date too far in future: restaurant_id=%d, date=%s",
				restaurantID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /restaurants/{id}/available-slots - Failed to get slots: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /restaurants/{id}/available-slots - Slots retrieved successfully: restaurant_id=%d, date=%s, slots_count=%d",
		restaurantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
