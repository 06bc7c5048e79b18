package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID       int64     // ID пользователя (для логирования, не влияет на результат)
	RestaurantID int64     // ID ресторана
	Date         time.Time // Дата для получения слотов (без времени)
	PartySize    int       // Количество гостей
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time // Дата, на которую запрашивались слоты
	RestaurantID int64     // ID ресторана
	PartySize    int       // Количество гостей из запроса
	Slots        []Slot    // Список доступных слотов, упорядоченный по времени
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "18:30")
	Available int              // Свободная вместимость (гости или столы)
	Capacity  int              // Полная вместимость слота
}
