package domain

// Default configuration values
const (
	DefaultTableTurningTimeMinutes = 60
	DefaultAdvanceBookingDays      = 30
	DefaultMinBookingNoticeMinutes = 0
)

// Business validation constants
const (
	MinTableTurningTimeMinutes  = 15
	MaxTableTurningTimeMinutes  = 480 // 8 hours
	MinPartySize                = 1
	MaxPartySize                = 50
	MinCapacityPerSlot          = 1
	MaxCapacityPerSlot          = 1000
	MaxTablesPerRestaurant      = 200
	MaxSlotsPerDay              = 96
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxGuestNameLength          = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов бронирований, занимающих вместимость
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
}
