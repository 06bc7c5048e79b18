package delete_restaurant_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

const (
	msgInvalidRestaurantID  = "некорректный ID ресторана"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgAvailabilityNotFound = "конфигурация доступности не найдена"
	msgRestaurantNotFound   = "ресторан не найден"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/restaurants/{restaurantId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /restaurants/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем конфигурацию (сервис сам проверит права владельца)
	if err := h.service.Delete(r.Context(), restaurantID, userID); err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /restaurants/{id}/availability - Availability not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		case errors.Is(err, availability.ErrRestaurantNotFound):
			h.logger.Warn("DELETE /restaurants/{id}/availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /restaurants/{id}/availability - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /restaurants/{id}/availability - Failed to delete availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/availability - Availability deleted successfully: restaurant_id=%d, user_id=%d",
		restaurantID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
