// Package dashboard aggregates the admin overview figures.
package dashboard

import (
	"context"
	"time"

	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
	domainrooms "stayhub/internal/domain/rooms"
)

// Stats is the admin dashboard snapshot for one day.
type Stats struct {
	TotalBookings int
	TotalRevenue  float64
	OccupancyRate float64
	CheckIns      []domainbooking.Booking
	CheckOuts     []domainbooking.Booking
}

type Service struct {
	bookings domainbooking.Repository
	rooms    domainrooms.Repository
	now      func() time.Time
}

func NewService(bookings domainbooking.Repository, rooms domainrooms.Repository) *Service {
	return &Service{bookings: bookings, rooms: rooms, now: time.Now}
}

// Snapshot computes the dashboard figures from current state. Revenue is
// the sum of stored totals; occupancy counts rooms whose stay interval
// contains today.
func (s *Service) Snapshot(ctx context.Context) (Stats, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	roomList, err := s.rooms.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	today := daterange.DayKeyFromTime(s.now())
	stats := Stats{TotalBookings: len(all)}
	occupied := make(map[string]struct{})
	for _, b := range all {
		stats.TotalRevenue += b.TotalPrice
		if b.Range.Contains(today) {
			occupied[b.RoomNumber] = struct{}{}
		}
		if b.Range.CheckIn == today {
			stats.CheckIns = append(stats.CheckIns, b)
		}
		if b.Range.CheckOut == today {
			stats.CheckOuts = append(stats.CheckOuts, b)
		}
	}
	if len(roomList) > 0 {
		stats.OccupancyRate = float64(len(occupied)) / float64(len(roomList))
	}
	return stats, nil
}
