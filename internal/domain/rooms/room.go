package rooms

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound    = errors.New("rooms: room not found")
	ErrRoomExists      = errors.New("rooms: room number already in use")
	ErrInvalidRoom     = errors.New("rooms: invalid room")
	ErrRoomHasBookings = errors.New("rooms: room has active bookings and cannot be deleted")
)

// Bed describes one bed configuration entry, e.g. {Type: "Double", Count: 2}.
type Bed struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Room is a bookable hotel room. Number is the stable identity guests see
// ("101", "305"); only Number and PricePerNight participate in booking
// logic, the rest is catalog display data.
type Room struct {
	Number        string   `json:"id"`
	Name          string   `json:"name"`
	Images        []string `json:"images"`
	PricePerNight float64  `json:"pricePerNight"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	Beds          []Bed    `json:"beds"`
	Amenities     []string `json:"amenities"`
}

func (r Room) Validate() error {
	if r.Number == "" {
		return fmt.Errorf("%w: room number required", ErrInvalidRoom)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: room name required", ErrInvalidRoom)
	}
	if r.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrInvalidRoom)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidRoom)
	}
	return nil
}

// Repository is the room catalog port.
type Repository interface {
	ByNumber(ctx context.Context, number string) (Room, error)
	List(ctx context.Context) ([]Room, error)
	Insert(ctx context.Context, room Room) error
	Update(ctx context.Context, room Room) error
	Delete(ctx context.Context, number string) error
}
