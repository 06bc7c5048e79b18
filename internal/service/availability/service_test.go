package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	restaurantClient "github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeAvailabilityRepo struct {
	stored *domain.RestaurantAvailability
	err    error
}

func (f *fakeAvailabilityRepo) GetByRestaurantID(_ context.Context, _ int64) (*domain.RestaurantAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stored == nil {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return f.stored, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, availability *domain.RestaurantAvailability) (*domain.RestaurantAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stored = availability
	return availability, nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, _ int64) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		return availabilityRepo.ErrAvailabilityNotFound
	}
	f.stored = nil
	return nil
}

type fakeRestaurantClient struct {
	restaurant *restaurantClient.Restaurant
	err        error
}

func (f *fakeRestaurantClient) GetRestaurant(_ context.Context, _ int64) (*restaurantClient.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.restaurant, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ownedRestaurant(ownerID int64) *restaurantClient.Restaurant {
	return &restaurantClient.Restaurant{ID: 10, Name: "Trattoria", OwnerID: ownerID, IsActive: true}
}

func validUpdateRequest() *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		UserID:                  500,
		RestaurantID:            10,
		ManagementMode:          "guest_count",
		TableTurningTimeMinutes: 90,
		Schedule: domain.WeeklySchedule{
			Monday: domain.DayTemplate{
				IsOpen:          true,
				Slots:           []types.TimeString{"18:00", "18:30", "19:00"},
				CapacityPerSlot: 20,
			},
		},
	}
}

func TestGetByRestaurant_ReturnsConfig(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: &domain.RestaurantAvailability{
		RestaurantID:            10,
		ManagementMode:          domain.ModeGuestCount,
		TableTurningTimeMinutes: 60,
	}}
	svc := NewService(repo, &fakeRestaurantClient{}, nopLogger{})

	resp, err := svc.GetByRestaurant(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.RestaurantID)
	assert.Equal(t, "guest_count", resp.ManagementMode)
}

func TestGetByRestaurant_NotFound(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{}, nopLogger{})

	_, err := svc.GetByRestaurant(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestUpdate_OwnerReplacesConfig(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)
	assert.Equal(t, 90, resp.TableTurningTimeMinutes)
	require.NotNil(t, repo.stored)
	assert.Equal(t, domain.ModeGuestCount, repo.stored.ManagementMode)
}

func TestUpdate_NonOwnerDenied(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(999)}, nopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_UnknownRestaurant(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{err: restaurantClient.ErrRestaurantNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest())
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestUpdate_RejectsInvalidMode(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.ManagementMode = "per_seat"

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RejectsUnparseableSlot(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.Schedule.Monday.Slots = []types.TimeString{"18:00", "25:99"}

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RejectsOpenDayWithoutSlots(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.Schedule.Tuesday = domain.DayTemplate{IsOpen: true, CapacityPerSlot: 10}

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RejectsTurningTimeOutOfBounds(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.TableTurningTimeMinutes = 5

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_ZeroTurningTimeMeansDefault(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.TableTurningTimeMinutes = 0

	_, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTableTurningTimeMinutes, repo.stored.TurningTime())
}

func TestUpdate_TableModeRequiresActiveTable(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.ManagementMode = "table"
	req.Tables = []domain.Table{{ID: 1, Capacity: 4, IsActive: false}}

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.Tables[0].IsActive = true
	_, err = svc.Update(context.Background(), req)
	require.NoError(t, err)
}

func TestUpdate_RejectsInvalidSpecialDateKey(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	req := validUpdateRequest()
	req.SpecialDates = map[string]domain.DayTemplate{
		"31-12-2025": {IsOpen: false},
	}

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_OwnerOnly(t *testing.T) {
	repo := &fakeAvailabilityRepo{stored: &domain.RestaurantAvailability{RestaurantID: 10}}
	svc := NewService(repo, &fakeRestaurantClient{restaurant: ownedRestaurant(500)}, nopLogger{})

	err := svc.Delete(context.Background(), 10, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 10, 500)
	require.NoError(t, err)
	assert.Nil(t, repo.stored)
}
