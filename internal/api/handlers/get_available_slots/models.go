package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	RestaurantID int64           `json:"restaurantId"`
	PartySize    int             `json:"partySize"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	Capacity  int    `json:"capacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Capacity:  slot.Capacity,
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		RestaurantID: resp.RestaurantID,
		PartySize:    resp.PartySize,
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(restaurantID int64, dateStr, partySizeStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		RestaurantID: restaurantID,
		Date:         date,
		PartySize:    partySize,
	}, nil
}
