// Package rooms is the admin-facing room catalog service.
package rooms

import (
	"context"
	"log/slog"

	domainbooking "stayhub/internal/domain/booking"
	domainrooms "stayhub/internal/domain/rooms"
)

type Service struct {
	log      *slog.Logger
	rooms    domainrooms.Repository
	bookings domainbooking.Repository
}

func NewService(log *slog.Logger, rooms domainrooms.Repository, bookings domainbooking.Repository) *Service {
	return &Service{log: log, rooms: rooms, bookings: bookings}
}

func (s *Service) List(ctx context.Context) ([]domainrooms.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ByNumber(ctx context.Context, number string) (domainrooms.Room, error) {
	return s.rooms.ByNumber(ctx, number)
}

func (s *Service) Create(ctx context.Context, room domainrooms.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}
	if err := s.rooms.Insert(ctx, room); err != nil {
		return err
	}
	s.log.Info("room created", "room", room.Number)
	return nil
}

func (s *Service) Update(ctx context.Context, room domainrooms.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return err
	}
	s.log.Info("room updated", "room", room.Number)
	return nil
}

// Delete removes a room unless bookings still reference it. Existing
// bookings keep a room alive even after their stay has passed; the demo
// never expires them.
func (s *Service) Delete(ctx context.Context, number string) error {
	if _, err := s.rooms.ByNumber(ctx, number); err != nil {
		return err
	}
	booked, err := s.bookings.ListByRoom(ctx, number)
	if err != nil {
		return err
	}
	if len(booked) > 0 {
		return domainrooms.ErrRoomHasBookings
	}
	if err := s.rooms.Delete(ctx, number); err != nil {
		return err
	}
	s.log.Info("room deleted", "room", number)
	return nil
}
