package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func activeBooking(startTime types.TimeString, partySize int) *Booking {
	return &Booking{StartTime: startTime, PartySize: partySize, Status: StatusConfirmed}
}

func TestGuestCountAllocator_NoBookings(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 10}
	slots := []types.TimeString{"18:00", "18:30", "19:00"}

	results := allocator.ComputeAvailability(slots, nil, 4, 60)

	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, slots[i], result.Time)
		assert.Equal(t, 10, result.Available)
		assert.Equal(t, 10, result.Capacity)
		assert.True(t, allocator.Qualifies(result, 4))
	}
}

func TestGuestCountAllocator_TurningTimeWindow(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 10}
	slots := []types.TimeString{"18:00", "18:30", "19:00"}
	bookings := []*Booking{activeBooking("18:00", 6)}

	results := allocator.ComputeAvailability(slots, bookings, 4, 60)

	require.Len(t, results, 3)
	assert.Equal(t, 4, results[0].Available)  // 18:00 inside [18:00, 19:00)
	assert.Equal(t, 4, results[1].Available)  // 18:30 inside [18:00, 19:00)
	assert.Equal(t, 10, results[2].Available) // 19:00 outside the window
}

func TestGuestCountAllocator_IgnoresInactiveBookings(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 8}
	bookings := []*Booking{
		{StartTime: "18:00", PartySize: 4, Status: StatusCancelled},
		{StartTime: "18:00", PartySize: 3, Status: StatusCompleted},
		{StartTime: "18:00", PartySize: 2, Status: StatusNoShow},
		{StartTime: "18:00", PartySize: 5, Status: StatusSeated},
	}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, bookings, 2, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Available)
}

func TestGuestCountAllocator_SkipsMalformedBooking(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 10}
	bookings := []*Booking{
		activeBooking("6:xx PM", 6),
		activeBooking("18:00", 2),
	}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, bookings, 4, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Available)
}

func TestGuestCountAllocator_SkipsMalformedSlot(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 10}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00", "bogus", "19:00"}, nil, 2, 60)

	require.Len(t, results, 2)
	assert.Equal(t, types.TimeString("18:00"), results[0].Time)
	assert.Equal(t, types.TimeString("19:00"), results[1].Time)
}

func TestGuestCountAllocator_AvailableNeverNegative(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 4}
	bookings := []*Booking{activeBooking("18:00", 6)}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, bookings, 2, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Available)
	assert.False(t, allocator.Qualifies(results[0], 2))
}

func TestGuestCountAllocator_Idempotent(t *testing.T) {
	allocator := &GuestCountAllocator{CapacityPerSlot: 10}
	slots := []types.TimeString{"18:00", "18:30"}
	bookings := []*Booking{activeBooking("18:00", 3)}

	first := allocator.ComputeAvailability(slots, bookings, 2, 60)
	second := allocator.ComputeAvailability(slots, bookings, 2, 60)

	assert.Equal(t, first, second)
}

func TestTableAllocator_UnassignedBookingConsumesTable(t *testing.T) {
	allocator := &TableAllocator{Tables: []Table{
		{ID: 1, Capacity: 2, IsActive: true},
		{ID: 2, Capacity: 4, IsActive: true},
		{ID: 3, Capacity: 4, IsActive: true},
	}}
	bookings := []*Booking{activeBooking("18:00", 3)} // unassigned, blocks 18:00-19:30

	results := allocator.ComputeAvailability([]types.TimeString{"18:30"}, bookings, 4, 90)

	require.Len(t, results, 1)
	// Qualifying tables (capacity >= 4) = 2, the unassigned booking fits one of them.
	assert.Equal(t, 2, results[0].Capacity)
	assert.Equal(t, 1, results[0].Available)
	assert.True(t, allocator.Qualifies(results[0], 4))
}

func TestTableAllocator_AssignedBookingAlwaysCounts(t *testing.T) {
	allocator := &TableAllocator{Tables: []Table{
		{ID: 1, Capacity: 6, IsActive: true},
		{ID: 2, Capacity: 6, IsActive: true},
	}}
	booking := activeBooking("18:00", 2)
	booking.TableID = ptr.Ptr(int64(1))

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, []*Booking{booking}, 5, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Available)
}

func TestTableAllocator_OversizedUnassignedBookingDoesNotCount(t *testing.T) {
	allocator := &TableAllocator{Tables: []Table{
		{ID: 1, Capacity: 4, IsActive: true},
	}}
	// Party of 10 cannot be seated by any qualifying table, so it does not
	// consume one under the count-based estimate.
	bookings := []*Booking{activeBooking("18:00", 10)}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, bookings, 4, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Available)
}

func TestTableAllocator_InactiveAndSmallTablesExcluded(t *testing.T) {
	allocator := &TableAllocator{Tables: []Table{
		{ID: 1, Capacity: 8, IsActive: false},
		{ID: 2, Capacity: 2, IsActive: true},
		{ID: 3, Capacity: 6, IsActive: true},
	}}

	results := allocator.ComputeAvailability([]types.TimeString{"18:00"}, nil, 4, 60)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Capacity)
	assert.Equal(t, 1, results[0].Available)
}

func TestTableAllocator_PartySizeMonotonicity(t *testing.T) {
	allocator := &TableAllocator{Tables: []Table{
		{ID: 1, Capacity: 2, IsActive: true},
		{ID: 2, Capacity: 4, IsActive: true},
		{ID: 3, Capacity: 6, IsActive: true},
	}}
	bookings := []*Booking{activeBooking("18:00", 2)}
	slots := []types.TimeString{"18:00"}

	previous := -1
	for partySize := 1; partySize <= 8; partySize++ {
		results := allocator.ComputeAvailability(slots, bookings, partySize, 60)
		require.Len(t, results, 1)
		if previous >= 0 {
			assert.LessOrEqual(t, results[0].Available, previous,
				"available must not grow when partySize increases to %d", partySize)
		}
		previous = results[0].Available
	}
}

func TestAllocatorFor(t *testing.T) {
	template := DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:00"}, CapacityPerSlot: 12}

	guest := AllocatorFor(&RestaurantAvailability{ManagementMode: ModeGuestCount}, template)
	require.IsType(t, &GuestCountAllocator{}, guest)
	assert.Equal(t, 12, guest.(*GuestCountAllocator).CapacityPerSlot)

	table := AllocatorFor(&RestaurantAvailability{
		ManagementMode: ModeTable,
		Tables:         []Table{{ID: 1, Capacity: 4, IsActive: true}},
	}, template)
	require.IsType(t, &TableAllocator{}, table)

	// Unknown mode falls back to the pooled strategy.
	fallback := AllocatorFor(&RestaurantAvailability{ManagementMode: "mystery"}, template)
	assert.IsType(t, &GuestCountAllocator{}, fallback)
}
