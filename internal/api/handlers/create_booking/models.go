package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "18:30" или "6:30 PM"
	PartySize    int     `json:"partySize"`
	GuestName    string  `json:"guestName"`
	GuestPhone   *string `json:"guestPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	PartySize    int    `json:"partySize"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Время слота передаётся как есть - нормализацию выполняет use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RestaurantID: r.RestaurantID,
		Date:         date,
		StartTime:    r.StartTime,
		PartySize:    r.PartySize,
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.BookingID,
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		PartySize:    resp.PartySize,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
