package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// CapacityAllocator computes per-slot remaining capacity for one query.
// The two implementations correspond to the two restaurant management
// modes and are selected at runtime via AllocatorFor.
//
// Both strategies skip bookings that are not active and isolate
// malformed time values: a single bad record excludes itself, never the
// whole report.
type CapacityAllocator interface {
	// ComputeAvailability returns one SlotResult per well-formed slot,
	// in the order the slots were given.
	ComputeAvailability(slots []types.TimeString, bookings []*Booking, partySize, turningTimeMinutes int) []SlotResult

	// Qualifies reports whether a computed slot can actually seat the
	// requested party.
	Qualifies(result SlotResult, partySize int) bool
}

// AllocatorFor returns the allocator matching the restaurant's
// management mode. Unknown modes fall back to guest-count, the more
// conservative pooled strategy.
func AllocatorFor(availability *RestaurantAvailability, template DayTemplate) CapacityAllocator {
	if availability.ManagementMode == ModeTable {
		return &TableAllocator{Tables: availability.Tables}
	}
	return &GuestCountAllocator{CapacityPerSlot: template.CapacityPerSlot}
}

// GuestCountAllocator tracks a single pooled seat count per slot.
type GuestCountAllocator struct {
	CapacityPerSlot int
}

// ComputeAvailability subtracts the party sizes of all blocking active
// bookings from the pooled per-slot capacity.
func (a *GuestCountAllocator) ComputeAvailability(
	slots []types.TimeString,
	bookings []*Booking,
	partySize, turningTimeMinutes int,
) []SlotResult {
	results := make([]SlotResult, 0, len(slots))

	for _, slot := range slots {
		if _, err := slot.Minutes(); err != nil {
			// Malformed slot entry in the schedule, excluded from the report.
			continue
		}

		seated := 0
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			blocked, err := Blocks(slot, booking.StartTime, turningTimeMinutes)
			if err != nil {
				// Malformed booking time, the booking is excluded.
				continue
			}
			if blocked {
				seated += booking.PartySize
			}
		}

		available := a.CapacityPerSlot - seated
		if available < 0 {
			available = 0
		}

		results = append(results, SlotResult{
			Time:      slot,
			Available: available,
			Capacity:  a.CapacityPerSlot,
		})
	}

	return results
}

// Qualifies requires enough pooled seats for the whole party.
func (a *GuestCountAllocator) Qualifies(result SlotResult, partySize int) bool {
	return result.Available >= partySize
}

// TableAllocator tracks a discrete inventory of tables, each with its
// own capacity.
//
// Contention is estimated by counting blocking bookings against the
// number of qualifying tables, not by assigning bookings to specific
// tables. This is an approximation, not an exact bipartite matching:
// at moderate booking volumes it matches observed behavior, at high
// volumes it can over- or under-report by the assignment slack.
type TableAllocator struct {
	Tables []Table
}

// ComputeAvailability counts how many tables of sufficient capacity
// remain free per slot.
func (a *TableAllocator) ComputeAvailability(
	slots []types.TimeString,
	bookings []*Booking,
	partySize, turningTimeMinutes int,
) []SlotResult {
	totalTables := 0
	maxQualifyingCapacity := 0
	for _, table := range a.Tables {
		if !table.IsActive || table.Capacity < partySize {
			continue
		}
		totalTables++
		if table.Capacity > maxQualifyingCapacity {
			maxQualifyingCapacity = table.Capacity
		}
	}

	results := make([]SlotResult, 0, len(slots))

	for _, slot := range slots {
		if _, err := slot.Minutes(); err != nil {
			continue
		}

		tablesNeeded := 0
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			blocked, err := Blocks(slot, booking.StartTime, turningTimeMinutes)
			if err != nil || !blocked {
				continue
			}
			// A booking consumes a qualifying table when it is pinned to
			// one, or when its own party could be seated by some table in
			// the qualifying subset.
			if booking.TableID != nil || booking.PartySize <= maxQualifyingCapacity {
				tablesNeeded++
			}
		}

		available := totalTables - tablesNeeded
		if available < 0 {
			available = 0
		}

		results = append(results, SlotResult{
			Time:      slot,
			Available: available,
			Capacity:  totalTables,
		})
	}

	return results
}

// Qualifies requires at least one free table of sufficient capacity.
func (a *TableAllocator) Qualifies(result SlotResult, partySize int) bool {
	return result.Available > 0
}
