package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для перечисления дат, доступных для бронирования
//
// Проходит скользящее окно от сегодняшнего дня и отбирает даты, на
// которые у ресторана есть открытый и корректный шаблон дня. Используется
// клиентом для предварительного отсева дат перед запросом слотов.
type UseCase struct {
	availabilityRepo   AvailabilityRepository
	timeProvider       TimeProvider
	advanceBookingDays int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, advanceBookingDays int, logger Logger) *UseCase {
	if advanceBookingDays <= 0 {
		advanceBookingDays = domain.DefaultAdvanceBookingDays
	}
	return &UseCase{
		availabilityRepo:   availabilityRepo,
		timeProvider:       &RealTimeProvider{},
		advanceBookingDays: advanceBookingDays,
		logger:             logger,
	}
}

// Execute выполняет use case перечисления доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	availability, err := uc.availabilityRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableDates: no availability configured for restaurant=%d", req.RestaurantID)
			return &Response{RestaurantID: req.RestaurantID, Dates: []time.Time{}}, nil
		}
		uc.logger.Error("GetAvailableDates: failed to get availability for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowMinutes := now.Hour()*60 + now.Minute()

	dates := make([]time.Time, 0, uc.advanceBookingDays)
	for offset := 0; offset <= uc.advanceBookingDays; offset++ {
		date := today.AddDate(0, 0, offset)

		template := availability.ResolveDayTemplate(date)
		if !template.IsOpen {
			continue
		}
		if err := template.Validate(availability.ManagementMode); err != nil {
			continue
		}

		// Сегодняшняя дата попадает в окно, только если остался хотя бы
		// один слот в будущем
		if offset == 0 && !hasSlotAfter(template.Slots, nowMinutes) {
			continue
		}

		dates = append(dates, date)
	}

	uc.logger.Info("GetAvailableDates: %d bookable dates in a %d-day window for restaurant=%d",
		len(dates), uc.advanceBookingDays, req.RestaurantID)

	return &Response{RestaurantID: req.RestaurantID, Dates: dates}, nil
}

// hasSlotAfter проверяет, есть ли в списке корректный слот строго позже
// указанной минуты дня
func hasSlotAfter(slots []types.TimeString, cutoff int) bool {
	for _, slot := range slots {
		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		if minutes > cutoff {
			return true
		}
	}
	return false
}
