// Package bookings carries the booking lifecycle: creation with the
// authoritative overlap re-check, guest lookup, contact edits, and deletion.
package bookings

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain/availability"
	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
	domainrooms "stayhub/internal/domain/rooms"
)

// EventPublisher receives booking lifecycle notifications after the store
// mutation succeeds. Publishing is best effort; failures are logged, not
// surfaced to the guest.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b domainbooking.Booking) error
	BookingDeleted(ctx context.Context, b domainbooking.Booking) error
}

// Service coordinates booking operations over the injected stores. It holds
// no booking state itself, so independent instances (and tests) can run
// against separate repositories.
type Service struct {
	log      *slog.Logger
	bookings domainbooking.Repository
	rooms    domainrooms.Repository
	events   EventPublisher
	now      func() time.Time

	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

func NewService(log *slog.Logger, bookings domainbooking.Repository, rooms domainrooms.Repository, events EventPublisher) *Service {
	return &Service{
		log:       log,
		bookings:  bookings,
		rooms:     rooms,
		events:    events,
		now:       time.Now,
		roomLocks: make(map[string]*sync.Mutex),
	}
}

// CreateInput is a candidate booking request. Dates arrive as raw strings
// and are parsed exactly once, here, at the input boundary.
type CreateInput struct {
	GuestName  string
	Phone      string
	Email      string
	NationalID string
	RoomNumber string
	CheckIn    string
	CheckOut   string
}

// Create validates the candidate against the live booking collection and
// inserts it, or rejects it leaving the collection untouched. Commits for
// the same room are serialized, so two overlapping candidates cannot both
// pass the overlap re-check.
func (s *Service) Create(ctx context.Context, input CreateInput) (domainbooking.Booking, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return domainbooking.Booking{}, domainbooking.ErrGuestNameMissing
	}

	checkIn, err := daterange.ParseDayKey(input.CheckIn)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	checkOut, err := daterange.ParseDayKey(input.CheckOut)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	stay, err := daterange.New(checkIn, checkOut)
	if err != nil {
		return domainbooking.Booking{}, err
	}

	room, err := s.rooms.ByNumber(ctx, input.RoomNumber)
	if err != nil {
		return domainbooking.Booking{}, err
	}

	lock := s.lockForRoom(room.Number)
	lock.Lock()
	defer lock.Unlock()

	// Defense in depth: the blocked set the caller saw may be stale, so
	// the overlap predicate runs again here against current state.
	existing, err := s.bookings.List(ctx)
	if err != nil {
		return domainbooking.Booking{}, fmt.Errorf("list bookings: %w", err)
	}
	if err := domainbooking.ValidateCandidate(room.Number, stay.CheckIn, stay.CheckOut, existing); err != nil {
		return domainbooking.Booking{}, err
	}

	b := domainbooking.Booking{
		ID:         uuid.NewString(),
		GuestName:  strings.TrimSpace(input.GuestName),
		Phone:      strings.TrimSpace(input.Phone),
		Email:      strings.TrimSpace(input.Email),
		NationalID: strings.TrimSpace(input.NationalID),
		RoomNumber: room.Number,
		Range:      stay,
		TotalPrice: float64(stay.Nights()) * room.PricePerNight,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.bookings.Insert(ctx, b); err != nil {
		return domainbooking.Booking{}, fmt.Errorf("insert booking: %w", err)
	}

	s.publish(ctx, "booking created", func(p EventPublisher) error { return p.BookingCreated(ctx, b) })
	s.log.Info("booking created", "booking_id", b.ID, "room", b.RoomNumber, "check_in", b.Range.CheckIn, "check_out", b.Range.CheckOut)
	return b, nil
}

// ByID returns one booking.
func (s *Service) ByID(ctx context.Context, id string) (domainbooking.Booking, error) {
	return s.bookings.ByID(ctx, id)
}

// List returns every booking ordered by check-in day.
func (s *Service) List(ctx context.Context) ([]domainbooking.Booking, error) {
	return s.bookings.List(ctx)
}

// Find locates a guest's booking by name and phone, the way the front desk
// looks one up: name is matched case-insensitively, both fields trimmed.
func (s *Service) Find(ctx context.Context, guestName, phone string) (domainbooking.Booking, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	name := strings.ToLower(strings.TrimSpace(guestName))
	phone = strings.TrimSpace(phone)
	for _, b := range all {
		if strings.ToLower(strings.TrimSpace(b.GuestName)) == name && strings.TrimSpace(b.Phone) == phone {
			return b, nil
		}
	}
	return domainbooking.Booking{}, domainbooking.ErrBookingNotFound
}

// UpdateDetailsInput carries guest contact edits. Nil fields stay unchanged.
// Dates are deliberately not editable here: detail edits never re-open the
// overlap question.
type UpdateDetailsInput struct {
	GuestName  *string
	Phone      *string
	Email      *string
	NationalID *string
}

// UpdateDetails applies contact edits in place.
func (s *Service) UpdateDetails(ctx context.Context, id string, input UpdateDetailsInput) (domainbooking.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		return domainbooking.Booking{}, err
	}
	if input.GuestName != nil {
		if strings.TrimSpace(*input.GuestName) == "" {
			return domainbooking.Booking{}, domainbooking.ErrGuestNameMissing
		}
		b.GuestName = strings.TrimSpace(*input.GuestName)
	}
	if input.Phone != nil {
		b.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		b.Email = strings.TrimSpace(*input.Email)
	}
	if input.NationalID != nil {
		b.NationalID = strings.TrimSpace(*input.NationalID)
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return domainbooking.Booking{}, err
	}
	return b, nil
}

// Delete removes a booking unconditionally. Nothing references a booking,
// so there is no cascade.
func (s *Service) Delete(ctx context.Context, id string) error {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "booking deleted", func(p EventPublisher) error { return p.BookingDeleted(ctx, b) })
	s.log.Info("booking deleted", "booking_id", id, "room", b.RoomNumber)
	return nil
}

// RoomAvailability is what the booking calendar needs for one room: the
// occupied day keys to grey out, plus the stay intervals they came from.
type RoomAvailability struct {
	BlockedDates []daterange.DayKey
	BookedRanges []daterange.DateRange
}

// RoomAvailability derives the room's availability view on demand from its
// current bookings. BlockedDates is sorted ascending; BookedRanges follows
// the repository's check-in ordering.
func (s *Service) RoomAvailability(ctx context.Context, roomNumber string) (RoomAvailability, error) {
	existing, err := s.bookings.ListByRoom(ctx, roomNumber)
	if err != nil {
		return RoomAvailability{}, err
	}
	blocked := availability.BlockedDates(roomNumber, existing)
	days := make([]daterange.DayKey, 0, len(blocked))
	for day := range blocked {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	ranges := make([]daterange.DateRange, 0, len(existing))
	for _, b := range existing {
		ranges = append(ranges, b.Range)
	}
	return RoomAvailability{BlockedDates: days, BookedRanges: ranges}, nil
}

// BlockedDates returns just the sorted occupied day keys for a room.
func (s *Service) BlockedDates(ctx context.Context, roomNumber string) ([]daterange.DayKey, error) {
	view, err := s.RoomAvailability(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	return view.BlockedDates, nil
}

func (s *Service) lockForRoom(roomNumber string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.roomLocks[roomNumber]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomNumber] = lock
	}
	return lock
}

func (s *Service) publish(ctx context.Context, what string, fn func(EventPublisher) error) {
	if s.events == nil {
		return
	}
	if err := fn(s.events); err != nil {
		s.log.Warn("event publish failed", "event", what, "error", err)
	}
}
