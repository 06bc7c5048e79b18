package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Blocks reports whether a booking starting at bookingStart occupies the
// slot starting at slotTime, given the restaurant's turning time.
//
// A booking at minute B with turning time T occupies the half-open
// interval [B, B+T): a slot starting exactly at B is blocked, a slot
// starting exactly at B+T is not.
//
// Malformed times produce an error so the caller can exclude that single
// booking or slot instead of treating it as midnight.
func Blocks(slotTime, bookingStart types.TimeString, turningTimeMinutes int) (bool, error) {
	s, err := slotTime.Minutes()
	if err != nil {
		return false, err
	}
	b, err := bookingStart.Minutes()
	if err != nil {
		return false, err
	}
	return b <= s && s < b+turningTimeMinutes, nil
}
