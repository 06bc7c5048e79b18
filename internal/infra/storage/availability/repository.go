package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий записей доступности ресторанов
// Расписание, особые даты и инвентарь столов хранятся в JSONB колонках:
// запись читается целиком одним запросом на каждый расчёт доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRestaurantID получает запись доступности ресторана
// Возвращает ErrAvailabilityNotFound, если запись не настроена
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"management_mode",
		"weekly_schedule",
		"special_dates",
		"table_turning_time_minutes",
		"tables",
		"created_at",
		"updated_at",
	).
		From("restaurant_availability").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	var availability domain.RestaurantAvailability
	var scheduleRaw, specialDatesRaw, tablesRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&availability.RestaurantID,
		&availability.ManagementMode,
		&scheduleRaw,
		&specialDatesRaw,
		&availability.TableTurningTimeMinutes,
		&tablesRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - scan availability: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(scheduleRaw, &availability.Schedule); err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - weekly_schedule: %v", ErrUnmarshal, err)
	}
	if len(specialDatesRaw) > 0 {
		if err := json.Unmarshal(specialDatesRaw, &availability.SpecialDates); err != nil {
			return nil, fmt.Errorf("%w: GetByRestaurantID - special_dates: %v", ErrUnmarshal, err)
		}
	}
	if len(tablesRaw) > 0 {
		if err := json.Unmarshal(tablesRaw, &availability.Tables); err != nil {
			return nil, fmt.Errorf("%w: GetByRestaurantID - tables: %v", ErrUnmarshal, err)
		}
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}

// Upsert создает или заменяет запись доступности ресторана целиком
// Частичного слияния расписаний нет - персонал сохраняет запись полностью
func (r *Repository) Upsert(ctx context.Context, availability *domain.RestaurantAvailability) (*domain.RestaurantAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	scheduleRaw, err := json.Marshal(availability.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - weekly_schedule: %v", ErrMarshal, err)
	}
	specialDatesRaw, err := json.Marshal(availability.SpecialDates)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - special_dates: %v", ErrMarshal, err)
	}
	tablesRaw, err := json.Marshal(availability.Tables)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - tables: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("restaurant_availability").
		Columns(
			"restaurant_id",
			"management_mode",
			"weekly_schedule",
			"special_dates",
			"table_turning_time_minutes",
			"tables",
		).
		Values(
			availability.RestaurantID,
			availability.ManagementMode,
			scheduleRaw,
			specialDatesRaw,
			availability.TableTurningTimeMinutes,
			tablesRaw,
		).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			management_mode = EXCLUDED.management_mode,
			weekly_schedule = EXCLUDED.weekly_schedule,
			special_dates = EXCLUDED.special_dates,
			table_turning_time_minutes = EXCLUDED.table_turning_time_minutes,
			tables = EXCLUDED.tables,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return availability, nil
}

// Delete удаляет запись доступности ресторана
func (r *Repository) Delete(ctx context.Context, restaurantID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurant_availability").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}
