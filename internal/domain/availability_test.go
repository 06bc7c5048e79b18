package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func mondayTemplate() DayTemplate {
	return DayTemplate{
		IsOpen:          true,
		Slots:           []types.TimeString{"18:00", "18:30", "19:00"},
		CapacityPerSlot: 10,
	}
}

func TestResolveDayTemplate_WeeklyFallback(t *testing.T) {
	availability := &RestaurantAvailability{
		Schedule: WeeklySchedule{Monday: mondayTemplate()},
	}

	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tmpl := availability.ResolveDayTemplate(monday)
	assert.True(t, tmpl.IsOpen)
	assert.Len(t, tmpl.Slots, 3)

	// Tuesday has no template configured, so it resolves closed.
	tuesday := monday.AddDate(0, 0, 1)
	tmpl = availability.ResolveDayTemplate(tuesday)
	assert.False(t, tmpl.IsOpen)
}

func TestResolveDayTemplate_SpecialDateOverridesOpenWeekday(t *testing.T) {
	// 2025-06-07 is a Saturday, normally open.
	availability := &RestaurantAvailability{
		Schedule: WeeklySchedule{Saturday: mondayTemplate()},
		SpecialDates: map[string]DayTemplate{
			"2025-06-07": {IsOpen: false},
		},
	}

	tmpl := availability.ResolveDayTemplate(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC))
	assert.False(t, tmpl.IsOpen, "explicit closed override must win over the open weekly template")

	// The following Saturday still uses the weekly template.
	tmpl = availability.ResolveDayTemplate(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))
	assert.True(t, tmpl.IsOpen)
}

func TestResolveDayTemplate_SpecialDateReplacesTemplateWholesale(t *testing.T) {
	availability := &RestaurantAvailability{
		Schedule: WeeklySchedule{Friday: mondayTemplate()},
		SpecialDates: map[string]DayTemplate{
			"2025-06-06": {IsOpen: true, Slots: []types.TimeString{"12:00"}, CapacityPerSlot: 4},
		},
	}

	tmpl := availability.ResolveDayTemplate(time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC))
	require.True(t, tmpl.IsOpen)
	assert.Equal(t, []types.TimeString{"12:00"}, tmpl.Slots)
	assert.Equal(t, 4, tmpl.CapacityPerSlot)
}

func TestDayTemplate_Validate(t *testing.T) {
	assert.NoError(t, DayTemplate{IsOpen: false}.Validate(ModeGuestCount))
	assert.NoError(t, mondayTemplate().Validate(ModeGuestCount))

	err := DayTemplate{IsOpen: true, CapacityPerSlot: 10}.Validate(ModeGuestCount)
	assert.ErrorIs(t, err, ErrMalformedSchedule)

	err = DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:00"}, CapacityPerSlot: 0}.Validate(ModeGuestCount)
	assert.ErrorIs(t, err, ErrMalformedSchedule)

	// Table mode does not use the pooled capacity.
	err = DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:00"}}.Validate(ModeTable)
	assert.NoError(t, err)
}

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Monday, WeekdayFromTime(time.Monday))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Sunday))
	assert.Equal(t, "Wednesday", WeekdayFromTime(time.Wednesday).String())
}

func TestTurningTimeDefault(t *testing.T) {
	assert.Equal(t, DefaultTableTurningTimeMinutes, (&RestaurantAvailability{}).TurningTime())
	assert.Equal(t, 90, (&RestaurantAvailability{TableTurningTimeMinutes: 90}).TurningTime())
}

func TestBookingIsActive(t *testing.T) {
	active := []BookingStatus{StatusPending, StatusConfirmed, StatusSeated}
	for _, status := range active {
		assert.True(t, (&Booking{Status: status}).IsActive(), "status %s", status)
	}

	inactive := []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}
	for _, status := range inactive {
		assert.False(t, (&Booking{Status: status}).IsActive(), "status %s", status)
	}
}
