package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub/internal/domain/daterange"
)

var (
	ErrBookingNotFound  = errors.New("booking: not found")
	ErrRoomUnavailable  = errors.New("booking: room unavailable")
	ErrGuestNameMissing = errors.New("booking: guest name required")
)

// Booking is one confirmed stay. The ID is assigned at creation and never
// reused. Range follows the half-open [checkIn, checkOut) convention:
// the checkout day itself is not an occupied night. TotalPrice is fixed at
// creation (nights x price per night) and never recomputed.
type Booking struct {
	ID         string
	GuestName  string
	Phone      string
	Email      string
	NationalID string
	RoomNumber string
	Range      daterange.DateRange
	TotalPrice float64
	CreatedAt  time.Time
}

// Repository is the booking store port. List returns a snapshot the caller
// may inspect freely; mutations go through the explicit write methods.
type Repository interface {
	ByID(ctx context.Context, id string) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListByRoom(ctx context.Context, roomNumber string) ([]Booking, error)
	Insert(ctx context.Context, b Booking) error
	Update(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id string) error
}

// WouldOverlap is the authoritative double-booking predicate: it reports
// whether [start, end) intersects any existing booking's stay interval for
// the same room. It must be re-run against the live collection at commit
// time; blocked-date sets rendered earlier may be stale.
func WouldOverlap(roomNumber string, start, end daterange.DayKey, existing []Booking) bool {
	candidate := daterange.DateRange{CheckIn: start, CheckOut: end}
	for _, b := range existing {
		if b.RoomNumber != roomNumber {
			continue
		}
		if candidate.Overlaps(b.Range) {
			return true
		}
	}
	return false
}

// ValidateCandidate checks a proposed stay against the given bookings.
// The range check runs before the overlap check, so an inverted range is
// reported as ErrInvalidRange even if the room is also busy.
func ValidateCandidate(roomNumber string, start, end daterange.DayKey, existing []Booking) error {
	if _, err := daterange.New(start, end); err != nil {
		return err
	}
	if WouldOverlap(roomNumber, start, end, existing) {
		return fmt.Errorf("%w: room %s is already booked for the selected dates", ErrRoomUnavailable, roomNumber)
	}
	return nil
}
