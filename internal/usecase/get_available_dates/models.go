package get_available_dates

import "time"

// Request модель запроса на получение доступных дат
type Request struct {
	RestaurantID int64 // ID ресторана
}

// Response модель ответа со списком дат скользящего окна,
// в которые у ресторана есть открытое расписание
type Response struct {
	RestaurantID int64
	Dates        []time.Time // Упорядочены по возрастанию
}
