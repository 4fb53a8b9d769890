package memory

import (
	"context"
	"fmt"
	"time"

	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
	domainrooms "stayhub/internal/domain/rooms"
)

// Seed loads the demo catalog and bookings into the given repositories.
// The service starts from this fixture set on every boot.
func Seed(ctx context.Context, roomRepo *RoomRepository, bookingRepo *BookingRepository) error {
	for _, room := range seedRooms() {
		if err := roomRepo.Insert(ctx, room); err != nil {
			return fmt.Errorf("seed room %s: %w", room.Number, err)
		}
	}
	for _, b := range seedBookings() {
		if err := bookingRepo.Insert(ctx, b); err != nil {
			return fmt.Errorf("seed booking %s: %w", b.ID, err)
		}
	}
	return nil
}

func seedRooms() []domainrooms.Room {
	return []domainrooms.Room{
		{
			Number: "101",
			Name:   "Standard Single",
			Images: []string{
				"https://placehold.co/800x600/a3c9e8/ffffff?text=Cozy+Single+Bed",
				"https://placehold.co/800x600/b3d9f8/ffffff?text=Modern+Bathroom",
				"https://placehold.co/800x600/c3e9ff/ffffff?text=Work+Desk+View",
			},
			PricePerNight: 150,
			Description:   "A cozy and compact room perfect for solo travelers. Features a comfortable single bed, a work desk, and an en-suite bathroom with a shower.",
			Capacity:      1,
			Beds:          []domainrooms.Bed{{Type: "Single", Count: 1}},
			Amenities:     []string{"Free WiFi", "Air Conditioning", "Flat-screen TV"},
		},
		{
			Number: "205",
			Name:   "Deluxe Double",
			Images: []string{
				"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?q=80&w=800&auto=format&fit=crop",
			},
			PricePerNight: 250,
			Description:   "Spacious and elegantly furnished, this room offers two double beds, making it ideal for families or friends. Enjoy city views and a modern bathroom.",
			Capacity:      4,
			Beds:          []domainrooms.Bed{{Type: "Double", Count: 2}},
			Amenities:     []string{"Free WiFi", "Air Conditioning", "Flat-screen TV", "Mini-bar"},
		},
		{
			Number: "305",
			Name:   "Luxury Suite",
			Images: []string{
				"https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1560185893-a55de8537e49?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1598605272254-16f0c0ecdfa5?q=80&w=800&auto=format&fit=crop",
			},
			PricePerNight: 450,
			Description:   "Experience ultimate comfort in our Luxury Suite. Featuring a separate living area, a king-sized bed, and a spa-like bathroom with a soaking tub.",
			Capacity:      2,
			Beds:          []domainrooms.Bed{{Type: "King", Count: 1}},
			Amenities:     []string{"Free WiFi", "Air Conditioning", "Flat-screen TV", "Mini-bar", "Room Service"},
		},
		{
			Number: "412",
			Name:   "Penthouse View",
			Images: []string{
				"https://images.unsplash.com/photo-1618773928121-c32242e63f39?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1594563703937-fdc640497dcd?q=80&w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1609766857041-ed402ea8069a?q=80&w=800&auto=format&fit=crop",
			},
			PricePerNight: 750,
			Description:   "The pinnacle of luxury. Our Penthouse offers breathtaking panoramic city views from a private terrace, a spacious living room, and a master bedroom with a plush king bed.",
			Capacity:      3,
			Beds:          []domainrooms.Bed{{Type: "King", Count: 1}, {Type: "Sofa Bed", Count: 1}},
			Amenities:     []string{"Free WiFi", "Air Conditioning", "Flat-screen TV", "Mini-bar", "Room Service", "Private Terrace"},
		},
	}
}

func seedBookings() []domainbooking.Booking {
	now := time.Now().UTC()
	return []domainbooking.Booking{
		{
			ID:         "1",
			GuestName:  "Alice Johnson",
			Phone:      "1112223333",
			Email:      "alice@example.com",
			NationalID: "AB123456",
			RoomNumber: "305",
			Range:      daterange.DateRange{CheckIn: "2024-08-10", CheckOut: "2024-08-15"},
			TotalPrice: 2250,
			CreatedAt:  now,
		},
		{
			ID:         "2",
			GuestName:  "Bob Williams",
			Phone:      "4445556666",
			Email:      "bob@example.com",
			NationalID: "CD789012",
			RoomNumber: "412",
			Range:      daterange.DateRange{CheckIn: "2024-08-12", CheckOut: "2024-08-18"},
			TotalPrice: 4500,
			CreatedAt:  now,
		},
		{
			ID:         "3",
			GuestName:  "Charlie Brown",
			Phone:      "7778889999",
			Email:      "charlie@example.com",
			NationalID: "EF345678",
			RoomNumber: "305",
			Range:      daterange.DateRange{CheckIn: "2024-09-20", CheckOut: "2024-09-25"},
			TotalPrice: 2250,
			CreatedAt:  now,
		},
	}
}
