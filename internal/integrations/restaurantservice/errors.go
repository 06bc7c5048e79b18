package restaurantservice

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден в каталоге
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRestaurantInactive возвращается, когда ресторан деактивирован
	ErrRestaurantInactive = errors.New("restaurant is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("restaurantservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("restaurantservice client: invalid response")
)
