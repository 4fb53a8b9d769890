package booking

import (
	"errors"
	"strings"
	"testing"

	"stayhub/internal/domain/daterange"
)

func existing() []Booking {
	return []Booking{
		{ID: "1", RoomNumber: "305", Range: daterange.DateRange{CheckIn: "2024-08-10", CheckOut: "2024-08-15"}},
		{ID: "2", RoomNumber: "412", Range: daterange.DateRange{CheckIn: "2024-08-12", CheckOut: "2024-08-18"}},
	}
}

func TestWouldOverlap(t *testing.T) {
	cases := []struct {
		name       string
		room       string
		start, end daterange.DayKey
		want       bool
	}{
		{"adjacent before is free", "305", "2024-08-05", "2024-08-10", false},
		{"adjacent after is free", "305", "2024-08-15", "2024-08-20", false},
		{"overlap rejected", "305", "2024-08-12", "2024-08-14", true},
		{"straddling rejected", "305", "2024-08-08", "2024-08-11", true},
		{"other room unaffected", "101", "2024-08-12", "2024-08-14", false},
		{"same range other room", "305", "2024-08-12", "2024-08-18", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WouldOverlap(tc.room, tc.start, tc.end, existing()); got != tc.want {
				t.Fatalf("WouldOverlap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateCandidateInvalidRangeFirst(t *testing.T) {
	// An inverted range over busy dates reports the range error, not the
	// overlap.
	err := ValidateCandidate("305", "2024-08-14", "2024-08-12", existing())
	if !errors.Is(err, daterange.ErrInvalidRange) {
		t.Fatalf("want ErrInvalidRange, got %v", err)
	}
}

func TestValidateCandidateUnavailable(t *testing.T) {
	err := ValidateCandidate("305", "2024-08-12", "2024-08-14", existing())
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("want ErrRoomUnavailable, got %v", err)
	}
	// The message must name the room.
	if got := err.Error(); !strings.Contains(got, "305") {
		t.Fatalf("error %q should mention room 305", got)
	}
}

func TestValidateCandidateOK(t *testing.T) {
	if err := ValidateCandidate("305", "2024-08-15", "2024-08-20", existing()); err != nil {
		t.Fatalf("back-to-back stay should validate, got %v", err)
	}
}

func TestValidateCandidateIdempotent(t *testing.T) {
	first := ValidateCandidate("305", "2024-08-12", "2024-08-14", existing())
	second := ValidateCandidate("305", "2024-08-12", "2024-08-14", existing())
	if (first == nil) != (second == nil) {
		t.Fatalf("validation is not idempotent: %v vs %v", first, second)
	}
	if !errors.Is(second, ErrRoomUnavailable) {
		t.Fatalf("want ErrRoomUnavailable on repeat, got %v", second)
	}
}
