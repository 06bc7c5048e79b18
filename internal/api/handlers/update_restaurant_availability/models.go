package update_restaurant_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
)

// UpdateAvailabilityRequest HTTP request model
// Конфигурация заменяется целиком
type UpdateAvailabilityRequest struct {
	ManagementMode          string                        `json:"managementMode"`
	Schedule                domain.WeeklySchedule         `json:"schedule"`
	SpecialDates            map[string]domain.DayTemplate `json:"specialDates,omitempty"`
	TableTurningTimeMinutes int                           `json:"tableTurningTimeMinutes"`
	Tables                  []domain.Table                `json:"tables,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(restaurantID, userID int64) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		UserID:                  userID,
		RestaurantID:            restaurantID,
		ManagementMode:          r.ManagementMode,
		Schedule:                r.Schedule,
		SpecialDates:            r.SpecialDates,
		TableTurningTimeMinutes: r.TableTurningTimeMinutes,
		Tables:                  r.Tables,
	}
}
