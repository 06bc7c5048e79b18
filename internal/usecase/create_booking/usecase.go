package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	restaurantClient "github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для создания бронирования
//
// Расчёт остаточной вместимости слота и вставка новой брони выполняются
// в одной сериализуемой транзакции: два конкурентных запроса, вместе
// переполняющие слот, не могут зафиксироваться оба. Движок доступности
// сам по себе изоляции не даёт - это контракт пишущего слоя.
type UseCase struct {
	bookingRepo             BookingRepository
	availabilityRepo        AvailabilityRepository
	restaurantClient        RestaurantServiceClient
	txManager               TransactionManager
	timeProvider            TimeProvider
	advanceBookingDays      int
	minBookingNoticeMinutes int
	logger                  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	restaurantClient RestaurantServiceClient,
	txManager TransactionManager,
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
		restaurantClient:        restaurantClient,
		txManager:               txManager,
		timeProvider:            &RealTimeProvider{},
		advanceBookingDays:      advanceBookingDays,
		minBookingNoticeMinutes: minBookingNoticeMinutes,
		logger:                  logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, restaurant=%d, date=%s, time=%s, partySize=%d",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных, включая нормализацию времени слота
	startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и валидируем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что ресторан существует и активен
	if _, err := uc.restaurantClient.GetActiveRestaurant(ctx, req.RestaurantID); err != nil {
		switch {
		case errors.Is(err, restaurantClient.ErrRestaurantNotFound):
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		case errors.Is(err, restaurantClient.ErrRestaurantInactive):
			uc.logger.Warn("CreateBooking: restaurant id=%d is inactive", req.RestaurantID)
			return nil, ErrRestaurantInactive
		default:
			uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
			return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
		}
	}

	var created *domain.Booking

	// 4. Проверка вместимости и вставка - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем запись доступности
		availability, err := uc.availabilityRepo.GetByRestaurantID(txCtx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return ErrAvailabilityNotConfigured
			}
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 4.2. Разрешаем шаблон дня
		template := availability.ResolveDayTemplate(req.Date)
		if !template.IsOpen {
			return ErrRestaurantClosed
		}
		if err := template.Validate(availability.ManagementMode); err != nil {
			uc.logger.Warn("CreateBooking: malformed day template for restaurant=%d on %s: %v",
				req.RestaurantID, req.Date.Format(domain.DateFormat), err)
			return ErrRestaurantClosed
		}

		// 4.3. Запрошенное время должно совпадать со слотом расписания
		if !slotInTemplate(startTime, template) {
			return ErrSlotNotInSchedule
		}

		// 4.4. Для сегодняшней даты слот должен быть в будущем
		if isSameDay(req.Date, now) {
			cutoff := now.Hour()*60 + now.Minute() + uc.minBookingNoticeMinutes
			minutes, err := startTime.Minutes()
			if err != nil || minutes <= cutoff {
				return ErrSlotNotInSchedule
			}
		}

		// 4.5. Пересчитываем остаточную вместимость слота внутри транзакции
		bookings, err := uc.bookingRepo.GetActiveByRestaurantAndDate(txCtx, req.RestaurantID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		allocator := domain.AllocatorFor(availability, template)
		results := allocator.ComputeAvailability(
			[]types.TimeString{startTime}, bookings, req.PartySize, availability.TurningTime())
		if len(results) != 1 || !allocator.Qualifies(results[0], req.PartySize) {
			return ErrSlotNotAvailable
		}

		// 4.6. Создаем бронирование
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.UserID,
			RestaurantID: req.RestaurantID,
			BookingDate:  req.Date,
			StartTime:    startTime,
			PartySize:    req.PartySize,
			Status:       domain.StatusPending,
			GuestName:    req.GuestName,
			GuestPhone:   req.GuestPhone,
			Notes:        req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrSlotNotInSchedule) ||
			errors.Is(err, ErrRestaurantClosed) || errors.Is(err, ErrAvailabilityNotConfigured) {
			uc.logger.Warn("CreateBooking: rejected for restaurant=%d, date=%s, time=%s: %v",
				req.RestaurantID, req.Date.Format(domain.DateFormat), startTime, err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for restaurant=%d, date=%s, time=%s",
		created.ID, req.RestaurantID, req.Date.Format(domain.DateFormat), startTime)

	return &Response{
		BookingID:    created.ID,
		RestaurantID: created.RestaurantID,
		Date:         created.BookingDate,
		StartTime:    created.StartTime,
		PartySize:    created.PartySize,
		Status:       string(created.Status),
		CreatedAt:    created.CreatedAt,
	}, nil
}
