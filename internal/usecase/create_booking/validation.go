package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса и нормализует время
// слота к каноническому виду "HH:MM"
func validateRequest(req *Request) (types.TimeString, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RestaurantID <= 0 {
		return "", fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return "", fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestName) == "" {
		return "", fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return "", fmt.Errorf("%w: guestName exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return startTime, nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, advanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// slotInTemplate проверяет, что нормализованное время входит в слоты
// шаблона дня (сравнение по минутам, не по строкам)
func slotInTemplate(startTime types.TimeString, template domain.DayTemplate) bool {
	want, err := startTime.Minutes()
	if err != nil {
		return false
	}
	for _, slot := range template.Slots {
		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		if minutes == want {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
