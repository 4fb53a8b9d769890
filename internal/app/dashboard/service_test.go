package dashboard

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/infra/storage/memory"
)

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	roomRepo := memory.NewRoomRepository()
	bookingRepo := memory.NewBookingRepository()
	if err := memory.Seed(ctx, roomRepo, bookingRepo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewService(bookingRepo, roomRepo)
	// Pin the clock inside both seeded August stays: 305 holds
	// [08-10, 08-15), 412 holds [08-12, 08-18).
	svc.now = func() time.Time { return time.Date(2024, 8, 12, 14, 0, 0, 0, time.UTC) }

	stats, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if stats.TotalBookings != 3 {
		t.Errorf("want 3 bookings, got %d", stats.TotalBookings)
	}
	if stats.TotalRevenue != 2250+4500+2250 {
		t.Errorf("want revenue 9000, got %v", stats.TotalRevenue)
	}
	// 2 of 4 rooms occupied on 2024-08-12.
	if stats.OccupancyRate != 0.5 {
		t.Errorf("want occupancy 0.5, got %v", stats.OccupancyRate)
	}
	if len(stats.CheckIns) != 1 || stats.CheckIns[0].RoomNumber != "412" {
		t.Errorf("want one check-in for room 412, got %+v", stats.CheckIns)
	}
	if len(stats.CheckOuts) != 0 {
		t.Errorf("no check-outs expected on 2024-08-12, got %+v", stats.CheckOuts)
	}
}

func TestSnapshotCheckOutDay(t *testing.T) {
	ctx := context.Background()
	roomRepo := memory.NewRoomRepository()
	bookingRepo := memory.NewBookingRepository()
	if err := memory.Seed(ctx, roomRepo, bookingRepo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewService(bookingRepo, roomRepo)
	svc.now = func() time.Time { return time.Date(2024, 8, 15, 9, 0, 0, 0, time.UTC) }

	stats, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(stats.CheckOuts) != 1 || stats.CheckOuts[0].RoomNumber != "305" {
		t.Errorf("want one check-out for room 305, got %+v", stats.CheckOuts)
	}
	// Checkout day is not an occupied night for 305, but 412 is mid-stay:
	// 1 of 4 rooms.
	if stats.OccupancyRate != 0.25 {
		t.Errorf("want occupancy 0.25, got %v", stats.OccupancyRate)
	}
}
