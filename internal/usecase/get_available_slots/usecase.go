package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
)

// UseCase use case для получения доступных слотов ресторана
//
// Движок доступности является чистой функцией: конфигурация ресторана и
// бронирования читаются из внешних хранилищ, внутреннего состояния нет.
// Консистентность снимка гарантирует слой записи бронирований
// (сериализуемая транзакция), а не этот usecase.
type UseCase struct {
	bookingRepo             BookingRepository
	availabilityRepo        AvailabilityRepository
	timeProvider            TimeProvider
	advanceBookingDays      int
	minBookingNoticeMinutes int
	logger                  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	advanceBookingDays int,
	minBookingNoticeMinutes int,
	logger Logger,
) *UseCase {
	if advanceBookingDays <= 0 {
		advanceBookingDays = domain.DefaultAdvanceBookingDays
	}
	return &UseCase{
		bookingRepo:             bookingRepo,
		availabilityRepo:        availabilityRepo,
		timeProvider:            &RealTimeProvider{},
		advanceBookingDays:      advanceBookingDays,
		minBookingNoticeMinutes: minBookingNoticeMinutes,
		logger:                  logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, restaurant=%d, date=%s, partySize=%d",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		Date:         req.Date,
		RestaurantID: req.RestaurantID,
		PartySize:    req.PartySize,
		Slots:        []Slot{},
	}

	// 4. Получаем запись доступности ресторана
	// Отсутствие записи - не ошибка: доступность просто не настроена
	availability, err := uc.availabilityRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetAvailableSlots: no availability configured for restaurant=%d", req.RestaurantID)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 5. Разрешаем шаблон дня: особая дата заменяет недельное расписание целиком
	template := availability.ResolveDayTemplate(req.Date)
	if !template.IsOpen {
		uc.logger.Info("GetAvailableSlots: restaurant=%d is closed on %s",
			req.RestaurantID, req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// Шаблон, который объявлен открытым, но не может обслужить ни одного
	// бронирования, отдаётся как "нет слотов", а не как ошибка запроса
	if err := template.Validate(availability.ManagementMode); err != nil {
		uc.logger.Warn("GetAvailableSlots: malformed day template for restaurant=%d on %s: %v",
			req.RestaurantID, req.Date.Format(domain.DateFormat), err)
		return emptyResponse, nil
	}

	// 6. Упорядочиваем слоты и отбрасываем прошедшие (для сегодняшней даты)
	slots, malformedSlots := prepareSlots(template.Slots, req.Date, now, uc.minBookingNoticeMinutes)
	if malformedSlots > 0 {
		uc.logger.Warn("GetAvailableSlots: excluded %d malformed slot(s) for restaurant=%d on %s",
			malformedSlots, req.RestaurantID, req.Date.Format(domain.DateFormat))
	}
	if len(slots) == 0 {
		return emptyResponse, nil
	}

	// 7. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetActiveByRestaurantAndDate(ctx, req.RestaurantID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность выбранной стратегией и фильтруем по размеру компании
	allocator := domain.AllocatorFor(availability, template)
	results := allocator.ComputeAvailability(slots, bookings, req.PartySize, availability.TurningTime())

	responseSlots := make([]Slot, 0, len(results))
	for _, result := range results {
		if !allocator.Qualifies(result, req.PartySize) {
			continue
		}
		responseSlots = append(responseSlots, Slot{
			Time:      result.Time,
			Available: result.Available,
			Capacity:  result.Capacity,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots qualify for restaurant=%d, date=%s, partySize=%d",
		len(responseSlots), len(results), req.RestaurantID, req.Date.Format(domain.DateFormat), req.PartySize)

	return &Response{
		Date:         req.Date,
		RestaurantID: req.RestaurantID,
		PartySize:    req.PartySize,
		Slots:        responseSlots,
	}, nil
}
