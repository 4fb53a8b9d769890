// Package memory holds the default in-memory repositories. State lives for
// the lifetime of the process and is re-seeded on every start, which is the
// intended behavior for the demo deployment.
package memory

import (
	"context"
	"sort"
	"sync"

	domainbooking "stayhub/internal/domain/booking"
	domainrooms "stayhub/internal/domain/rooms"
)

// RoomRepository is an in-memory room catalog.
type RoomRepository struct {
	mu    sync.RWMutex
	items map[string]domainrooms.Room
}

// NewRoomRepository builds an empty catalog.
func NewRoomRepository() *RoomRepository {
	return &RoomRepository{items: make(map[string]domainrooms.Room)}
}

// ByNumber returns a room or ErrRoomNotFound.
func (r *RoomRepository) ByNumber(ctx context.Context, number string) (domainrooms.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.items[number]
	if !ok {
		return domainrooms.Room{}, domainrooms.ErrRoomNotFound
	}
	return room, nil
}

// List returns all rooms ordered by room number.
func (r *RoomRepository) List(ctx context.Context) ([]domainrooms.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainrooms.Room, 0, len(r.items))
	for _, room := range r.items {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// Insert adds a room, rejecting duplicate numbers.
func (r *RoomRepository) Insert(ctx context.Context, room domainrooms.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[room.Number]; ok {
		return domainrooms.ErrRoomExists
	}
	r.items[room.Number] = room
	return nil
}

// Update replaces an existing room entry.
func (r *RoomRepository) Update(ctx context.Context, room domainrooms.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[room.Number]; !ok {
		return domainrooms.ErrRoomNotFound
	}
	r.items[room.Number] = room
	return nil
}

// Delete removes a room entry.
func (r *RoomRepository) Delete(ctx context.Context, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[number]; !ok {
		return domainrooms.ErrRoomNotFound
	}
	delete(r.items, number)
	return nil
}

// BookingRepository stores bookings in memory.
type BookingRepository struct {
	mu    sync.RWMutex
	items map[string]domainbooking.Booking
}

// NewBookingRepository builds an empty booking repo.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[string]domainbooking.Booking)}
}

// ByID fetches a booking.
func (r *BookingRepository) ByID(ctx context.Context, id string) (domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return domainbooking.Booking{}, domainbooking.ErrBookingNotFound
	}
	return b, nil
}

// List returns a snapshot of all bookings ordered by check-in day.
func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domainbooking.Booking, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, b)
	}
	sortBookings(out)
	return out, nil
}

// ListByRoom returns the bookings for one room ordered by check-in day.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomNumber string) ([]domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domainbooking.Booking
	for _, b := range r.items {
		if b.RoomNumber == roomNumber {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

// Insert stores a new booking.
func (r *BookingRepository) Insert(ctx context.Context, b domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b
	return nil
}

// Update replaces an existing booking.
func (r *BookingRepository) Update(ctx context.Context, b domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.ID]; !ok {
		return domainbooking.ErrBookingNotFound
	}
	r.items[b.ID] = b
	return nil
}

// Delete removes a booking.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainbooking.ErrBookingNotFound
	}
	delete(r.items, id)
	return nil
}

func sortBookings(items []domainbooking.Booking) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Range.CheckIn != items[j].Range.CheckIn {
			return items[i].Range.CheckIn < items[j].Range.CheckIn
		}
		return items[i].ID < items[j].ID
	})
}
