package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	restaurantClient "github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
)

// Service сервис для работы с конфигурацией доступности ресторанов
type Service struct {
	availabilityRepo AvailabilityRepository
	restaurantClient RestaurantServiceClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	restaurantClient RestaurantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		restaurantClient: restaurantClient,
		logger:           logger,
	}
}

// GetByRestaurant получает конфигурацию доступности ресторана
// Публичный метод - доступен всем
func (s *Service) GetByRestaurant(ctx context.Context, restaurantID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetByRestaurant: fetching availability for restaurant=%d", restaurantID)

	availability, err := s.availabilityRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("GetByRestaurant: availability for restaurant=%d not found", restaurantID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetByRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetByRestaurant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRestaurant: successfully fetched availability for restaurant=%d", restaurantID)
	return models.FromDomainAvailability(availability), nil
}

// Update заменяет конфигурацию доступности ресторана целиком
// Доступно только владельцу ресторана
func (s *Service) Update(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: updating availability for restaurant=%d by user=%d", req.RestaurantID, req.UserID)

	// 1. Валидируем конфигурацию
	if err := s.validateAvailability(req); err != nil {
		s.logger.Warn("Update: validation failed for restaurant=%d: %v", req.RestaurantID, err)
		return nil, err
	}

	// 2. Проверяем права доступа (только владелец ресторана)
	if err := s.checkOwnerAccess(ctx, req.RestaurantID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Сохраняем конфигурацию
	updated, err := s.availabilityRepo.Upsert(ctx, req.ToDomainAvailability())
	if err != nil {
		s.logger.Error("Update: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated availability for restaurant=%d", req.RestaurantID)
	return models.FromDomainAvailability(updated), nil
}

// Delete удаляет конфигурацию доступности ресторана
// Доступно только владельцу ресторана
func (s *Service) Delete(ctx context.Context, restaurantID int64, userID int64) error {
	s.logger.Info("Delete: deleting availability for restaurant=%d by user=%d", restaurantID, userID)

	// Проверяем права доступа (только владелец ресторана)
	if err := s.checkOwnerAccess(ctx, restaurantID, userID); err != nil {
		return err
	}

	if err := s.availabilityRepo.Delete(ctx, restaurantID); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability for restaurant=%d not found", restaurantID)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for restaurant=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability for restaurant=%d", restaurantID)
	return nil
}

// Вспомогательные методы

// checkOwnerAccess проверяет, что пользователь является владельцем ресторана
func (s *Service) checkOwnerAccess(ctx context.Context, restaurantID int64, userID int64) error {
	restaurant, err := s.restaurantClient.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantClient.ErrRestaurantNotFound) {
			s.logger.Warn("checkOwnerAccess: restaurant id=%d not found", restaurantID)
			return ErrRestaurantNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get restaurant id=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: checkOwnerAccess - restaurant service error: %v", ErrInternal, err)
	}

	if restaurant.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of restaurant=%d", userID, restaurantID)
		return ErrAccessDenied
	}

	return nil
}

// validateAvailability валидирует конфигурацию доступности перед сохранением
// Конфигурация, которая прошла валидацию, гарантированно читается движком
// расчёта слотов без ошибок разбора
func (s *Service) validateAvailability(req *models.UpdateAvailabilityRequest) error {
	// Проверяем режим управления вместимостью
	mode := domain.ManagementMode(req.ManagementMode)
	if !mode.IsValid() {
		return fmt.Errorf("%w: managementMode must be %q or %q",
			ErrInvalidInput, domain.ModeGuestCount, domain.ModeTable)
	}

	// Проверяем время оборота стола (0 = использовать значение по умолчанию)
	if req.TableTurningTimeMinutes != 0 &&
		(req.TableTurningTimeMinutes < domain.MinTableTurningTimeMinutes ||
			req.TableTurningTimeMinutes > domain.MaxTableTurningTimeMinutes) {
		return fmt.Errorf("%w: tableTurningTimeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinTableTurningTimeMinutes, domain.MaxTableTurningTimeMinutes)
	}

	// В табличном режиме нужен хотя бы один активный стол
	if mode == domain.ModeTable && !hasActiveTable(req.Tables) {
		return fmt.Errorf("%w: table mode requires at least one active table", ErrInvalidInput)
	}
	if len(req.Tables) > domain.MaxTablesPerRestaurant {
		return fmt.Errorf("%w: at most %d tables are allowed", ErrInvalidInput, domain.MaxTablesPerRestaurant)
	}
	for _, table := range req.Tables {
		if table.Capacity <= 0 {
			return fmt.Errorf("%w: table %d has non-positive capacity", ErrInvalidInput, table.ID)
		}
	}

	// Проверяем недельное расписание
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if err := validateDayTemplate(req.Schedule.ForWeekday(day), mode); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, day, err)
		}
	}

	// Проверяем специальные даты
	for date, tmpl := range req.SpecialDates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: special date %q is not a valid date", ErrInvalidInput, date)
		}
		if err := validateDayTemplate(tmpl, mode); err != nil {
			return fmt.Errorf("%w: special date %s: %v", ErrInvalidInput, date, err)
		}
	}

	return nil
}

// validateDayTemplate проверяет корректность шаблона дня:
// открытый день должен содержать разбираемые слоты и положительную вместимость
func validateDayTemplate(tmpl domain.DayTemplate, mode domain.ManagementMode) error {
	if err := tmpl.Validate(mode); err != nil {
		return err
	}
	if !tmpl.IsOpen {
		return nil
	}
	if len(tmpl.Slots) > domain.MaxSlotsPerDay {
		return fmt.Errorf("at most %d slots per day are allowed", domain.MaxSlotsPerDay)
	}
	if tmpl.CapacityPerSlot > domain.MaxCapacityPerSlot {
		return fmt.Errorf("capacityPerSlot must not exceed %d", domain.MaxCapacityPerSlot)
	}
	for _, slot := range tmpl.Slots {
		if _, err := slot.Minutes(); err != nil {
			return fmt.Errorf("slot %q: %v", slot, err)
		}
	}
	return nil
}

// hasActiveTable возвращает true, если среди столов есть хотя бы один активный
func hasActiveTable(tables []domain.Table) bool {
	for _, table := range tables {
		if table.IsActive {
			return true
		}
	}
	return false
}
