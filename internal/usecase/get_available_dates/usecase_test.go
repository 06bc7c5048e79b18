package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeAvailabilityRepo struct {
	availability *domain.RestaurantAvailability
	err          error
}

func (f *fakeAvailabilityRepo) GetByRestaurantID(_ context.Context, _ int64) (*domain.RestaurantAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.availability, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_WindowContainsOnlyOpenDates(t *testing.T) {
	availability := &domain.RestaurantAvailability{
		RestaurantID:   1,
		ManagementMode: domain.ModeGuestCount,
		Schedule: domain.WeeklySchedule{
			// Open Fridays and Saturdays only.
			Friday:   domain.DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:00"}, CapacityPerSlot: 10},
			Saturday: domain.DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:00"}, CapacityPerSlot: 10},
		},
		SpecialDates: map[string]domain.DayTemplate{
			// One normally closed Monday opened for an event.
			"2025-06-09": {IsOpen: true, Slots: []types.TimeString{"12:00"}, CapacityPerSlot: 6},
			// One normally open Saturday closed for a holiday.
			"2025-06-07": {IsOpen: false},
		},
	}

	uc := NewUseCase(&fakeAvailabilityRepo{availability: availability}, 7, nopLogger{})
	// 2025-06-02 is a Monday; querying in the morning.
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1})
	require.NoError(t, err)

	var got []string
	for _, date := range resp.Dates {
		got = append(got, date.Format(domain.DateFormat))
	}
	// Friday 06-06 open, Saturday 06-07 closed by override, Monday 06-09
	// opened by override.
	assert.Equal(t, []string{"2025-06-06", "2025-06-09"}, got)
}

func TestExecute_TodayOnlyCountsWithRemainingSlots(t *testing.T) {
	availability := &domain.RestaurantAvailability{
		RestaurantID:   1,
		ManagementMode: domain.ModeGuestCount,
		Schedule: domain.WeeklySchedule{
			Monday: domain.DayTemplate{IsOpen: true, Slots: []types.TimeString{"12:00", "13:00"}, CapacityPerSlot: 10},
		},
	}

	uc := NewUseCase(&fakeAvailabilityRepo{availability: availability}, 0, nopLogger{})
	// Monday evening: both slots already passed.
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1})
	require.NoError(t, err)

	for _, date := range resp.Dates {
		assert.NotEqual(t, "2025-06-02", date.Format(domain.DateFormat))
	}
}

func TestExecute_MissingRecordMeansNoDates(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound}, 14, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_InvalidRestaurantID(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, 14, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
