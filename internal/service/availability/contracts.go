package availability

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
)

// AvailabilityRepository интерфейс репозитория конфигурации доступности
type AvailabilityRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantAvailability, error)
	Upsert(ctx context.Context, availability *domain.RestaurantAvailability) (*domain.RestaurantAvailability, error)
	Delete(ctx context.Context, restaurantID int64) error
}

// RestaurantServiceClient интерфейс клиента каталога ресторанов
type RestaurantServiceClient interface {
	GetRestaurant(ctx context.Context, restaurantID int64) (*restaurantservice.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
