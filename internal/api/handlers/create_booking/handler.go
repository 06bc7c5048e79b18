package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата выходит за пределы окна бронирования"
	msgRestaurantNotFound = "ресторан не найден"
	msgRestaurantInactive = "ресторан не принимает бронирования"
	msgRestaurantClosed   = "ресторан закрыт в выбранную дату"
	msgNotConfigured      = "ресторан временно не принимает бронирования"
	msgSlotNotInSchedule  = "выбранное время не входит в расписание"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, restaurant_id=%d, time=%s",
				userID, req.RestaurantID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrRestaurantInactive):
			h.logger.Warn("POST /bookings - Restaurant inactive: restaurant_id=%d", req.RestaurantID)
			handlers.RespondBadRequest(w, msgRestaurantInactive)

		case errors.Is(err, createBooking.ErrAvailabilityNotConfigured):
			h.logger.Warn("POST /bookings - Availability not configured: restaurant_id=%d", req.RestaurantID)
			handlers.RespondBadRequest(w, msgNotConfigured)

		case errors.Is(err, createBooking.ErrRestaurantClosed):
			h.logger.Warn("POST /bookings - Restaurant closed: restaurant_id=%d, date=%s", req.RestaurantID, req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createBooking.ErrSlotNotInSchedule):
			h.logger.Warn("POST /bookings - Slot not in schedule: restaurant_id=%d, time=%s",
				req.RestaurantID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotInSchedule)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: restaurant_id=%d, date=%s", req.RestaurantID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: restaurant_id=%d, date=%s", req.RestaurantID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, restaurant_id=%d, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, restaurant_id=%d, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, restaurant_id=%d",
		result.BookingID, userID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
