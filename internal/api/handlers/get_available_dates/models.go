package get_available_dates

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	RestaurantID int64    `json:"restaurantId"`
	Dates        []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &AvailableDatesResponse{
		RestaurantID: resp.RestaurantID,
		Dates:        dates,
	}
}
