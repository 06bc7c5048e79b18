package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата выходит за окно бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRestaurantInactive возвращается, когда ресторан деактивирован
	ErrRestaurantInactive = errors.New("restaurant is inactive")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанную дату
	ErrRestaurantClosed = errors.New("restaurant is closed on this date")

	// ErrAvailabilityNotConfigured возвращается, когда у ресторана нет
	// настроенной доступности и бронирования не принимаются
	ErrAvailabilityNotConfigured = errors.New("restaurant does not accept reservations")

	// ErrSlotNotInSchedule возвращается, когда время не входит в расписание дня
	ErrSlotNotInSchedule = errors.New("requested time is not a bookable slot")

	// ErrSlotNotAvailable возвращается, когда слот не вмещает компанию
	ErrSlotNotAvailable = errors.New("slot is not available for this party size")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
