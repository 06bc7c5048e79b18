package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64     // ID пользователя, создающего бронирование
	RestaurantID int64     // ID ресторана
	Date         time.Time // Дата бронирования (без времени)
	StartTime    string    // Время слота в том виде, как его прислал клиент
	PartySize    int       // Количество гостей
	GuestName    string    // Имя гостя для брони
	GuestPhone   *string   // Телефон гостя (опционально)
	Notes        *string   // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID    int64
	RestaurantID int64
	Date         time.Time
	StartTime    types.TimeString
	PartySize    int
	Status       string
	CreatedAt    time.Time
}
