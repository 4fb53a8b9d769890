// Package availability derives which calendar days are closed for a room
// and tracks an in-progress check-in/check-out selection against them.
package availability

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
)

// BlockedSet holds the occupied day keys for one room.
type BlockedSet map[daterange.DayKey]struct{}

func (s BlockedSet) Contains(day daterange.DayKey) bool {
	_, ok := s[day]
	return ok
}

// BlockedDates unions the occupied nights of every booking for the room.
// The checkout day of each booking is not blocked; a back-to-back stay may
// check in the day another checks out. Recomputed on demand from the full
// booking list, never maintained incrementally.
func BlockedDates(roomNumber string, bookings []booking.Booking) BlockedSet {
	blocked := make(BlockedSet)
	for _, b := range bookings {
		if b.RoomNumber != roomNumber {
			continue
		}
		for _, day := range b.Range.Days() {
			blocked[day] = struct{}{}
		}
	}
	return blocked
}
