package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ErrMalformedSchedule is returned for a day template that claims to be
// open but cannot produce a single bookable slot.
var ErrMalformedSchedule = errors.New("domain: malformed day template")

// ManagementMode selects the capacity allocation strategy of a restaurant
type ManagementMode string

const (
	// ModeGuestCount tracks capacity as a single pooled seat count per slot
	ModeGuestCount ManagementMode = "guest_count"
	// ModeTable tracks capacity as a discrete inventory of tables
	ModeTable ManagementMode = "table"
)

// IsValid returns true for a known management mode
func (m ManagementMode) IsValid() bool {
	return m == ModeGuestCount || m == ModeTable
}

// Weekday is the engine's own day-of-week type, always derived from
// time.Weekday. Free-form day-name strings never index a schedule, so a
// typo-keyed template cannot silently resolve to "closed".
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayFromTime converts a time.Weekday into the engine's Weekday
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// String returns the canonical English day name
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// Table is one unit of discrete seating inventory (table mode only)
type Table struct {
	ID       int64  `json:"id"`
	Label    string `json:"label,omitempty"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"isActive"`
}

// DayTemplate describes a single day's bookable schedule
type DayTemplate struct {
	IsOpen          bool               `json:"isOpen"`
	Slots           []types.TimeString `json:"slots"`
	CapacityPerSlot int                `json:"capacityPerSlot"`
}

// Validate reports whether an open template can actually serve bookings.
// A template that is open with no slots, or with a non-positive pooled
// capacity in guest-count mode, is malformed and must surface as
// "no slots available" rather than a crash.
func (t DayTemplate) Validate(mode ManagementMode) error {
	if !t.IsOpen {
		return nil
	}
	if len(t.Slots) == 0 {
		return fmt.Errorf("%w: open day with empty slot list", ErrMalformedSchedule)
	}
	if mode == ModeGuestCount && t.CapacityPerSlot <= 0 {
		return fmt.Errorf("%w: capacityPerSlot=%d", ErrMalformedSchedule, t.CapacityPerSlot)
	}
	return nil
}

// WeeklySchedule holds one day template per canonical weekday
type WeeklySchedule struct {
	Monday    DayTemplate `json:"monday"`
	Tuesday   DayTemplate `json:"tuesday"`
	Wednesday DayTemplate `json:"wednesday"`
	Thursday  DayTemplate `json:"thursday"`
	Friday    DayTemplate `json:"friday"`
	Saturday  DayTemplate `json:"saturday"`
	Sunday    DayTemplate `json:"sunday"`
}

// ForWeekday returns the day template configured for the given weekday
func (s WeeklySchedule) ForWeekday(w Weekday) DayTemplate {
	switch w {
	case Monday:
		return s.Monday
	case Tuesday:
		return s.Tuesday
	case Wednesday:
		return s.Wednesday
	case Thursday:
		return s.Thursday
	case Friday:
		return s.Friday
	case Saturday:
		return s.Saturday
	case Sunday:
		return s.Sunday
	default:
		return DayTemplate{IsOpen: false}
	}
}

// RestaurantAvailability is the reservation configuration of one
// restaurant. It is created and edited by restaurant staff and only
// ever read by the availability engine.
type RestaurantAvailability struct {
	RestaurantID            int64
	ManagementMode          ManagementMode
	Schedule                WeeklySchedule
	SpecialDates            map[string]DayTemplate // keyed by ISO date (YYYY-MM-DD)
	TableTurningTimeMinutes int
	Tables                  []Table

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TurningTime returns the configured table turning time, falling back
// to the default for unset or non-positive values.
func (a *RestaurantAvailability) TurningTime() int {
	if a.TableTurningTimeMinutes <= 0 {
		return DefaultTableTurningTimeMinutes
	}
	return a.TableTurningTimeMinutes
}

// ResolveDayTemplate resolves the effective day template for a date.
// A special-date override always wins verbatim over the weekly schedule,
// including an explicit closed override for a normally open weekday.
// There is no partial merge between special and weekly templates.
func (a *RestaurantAvailability) ResolveDayTemplate(date time.Time) DayTemplate {
	if tmpl, ok := a.SpecialDates[date.Format(DateFormat)]; ok {
		return tmpl
	}
	return a.Schedule.ForWeekday(WeekdayFromTime(date.Weekday()))
}

// SlotResult is the per-slot availability report produced by an
// allocator. Computed fresh per query, never persisted.
type SlotResult struct {
	Time      types.TimeString
	Available int
	Capacity  int
}
