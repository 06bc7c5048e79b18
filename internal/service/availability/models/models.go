package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// UpdateAvailabilityRequest запрос на замену конфигурации доступности ресторана
// Конфигурация заменяется целиком - частичное обновление не поддерживается
type UpdateAvailabilityRequest struct {
	UserID                  int64                         `json:"userId"`
	RestaurantID            int64                         `json:"restaurantId"`
	ManagementMode          string                        `json:"managementMode"`
	Schedule                domain.WeeklySchedule         `json:"schedule"`
	SpecialDates            map[string]domain.DayTemplate `json:"specialDates,omitempty"`
	TableTurningTimeMinutes int                           `json:"tableTurningTimeMinutes"`
	Tables                  []domain.Table                `json:"tables,omitempty"`
}

// ToDomainAvailability конвертирует request в domain модель
func (r *UpdateAvailabilityRequest) ToDomainAvailability() *domain.RestaurantAvailability {
	return &domain.RestaurantAvailability{
		RestaurantID:            r.RestaurantID,
		ManagementMode:          domain.ManagementMode(r.ManagementMode),
		Schedule:                r.Schedule,
		SpecialDates:            r.SpecialDates,
		TableTurningTimeMinutes: r.TableTurningTimeMinutes,
		Tables:                  r.Tables,
	}
}

// Response модели

// AvailabilityResponse ответ с конфигурацией доступности ресторана
type AvailabilityResponse struct {
	RestaurantID            int64                         `json:"restaurantId"`
	ManagementMode          string                        `json:"managementMode"`
	Schedule                domain.WeeklySchedule         `json:"schedule"`
	SpecialDates            map[string]domain.DayTemplate `json:"specialDates,omitempty"`
	TableTurningTimeMinutes int                           `json:"tableTurningTimeMinutes"`
	Tables                  []domain.Table                `json:"tables,omitempty"`
	CreatedAt               time.Time                     `json:"createdAt"`
	UpdatedAt               time.Time                     `json:"updatedAt"`
}

// FromDomainAvailability конвертирует domain модель в response
func FromDomainAvailability(availability *domain.RestaurantAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		RestaurantID:            availability.RestaurantID,
		ManagementMode:          string(availability.ManagementMode),
		Schedule:                availability.Schedule,
		SpecialDates:            availability.SpecialDates,
		TableTurningTimeMinutes: availability.TableTurningTimeMinutes,
		Tables:                  availability.Tables,
		CreatedAt:               availability.CreatedAt,
		UpdatedAt:               availability.UpdatedAt,
	}
}
