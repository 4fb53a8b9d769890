package daterange

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate  = errors.New("daterange: not a valid calendar date")
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
)

const dayLayout = "2006-01-02"

// DayKey identifies one calendar day as "YYYY-MM-DD", anchored to the
// proleptic Gregorian calendar rather than any local midnight. Because the
// format is fixed-width ISO, lexicographic order equals chronological order,
// so keys compare directly with < and >.
type DayKey string

// ParseDayKey is the single place raw date input becomes a DayKey. Anything
// that does not parse as a calendar date fails with ErrInvalidDate.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DayKey(t.Format(dayLayout)), nil
}

// DayKeyFromTime converts an instant to the calendar day it falls on in UTC.
func DayKeyFromTime(t time.Time) DayKey {
	return DayKey(t.UTC().Format(dayLayout))
}

// Time returns midnight UTC of the day. Only valid on keys produced by
// ParseDayKey or DayKeyFromTime.
func (k DayKey) Time() time.Time {
	t, _ := time.Parse(dayLayout, string(k))
	return t
}

// Next returns the following calendar day.
func (k DayKey) Next() DayKey {
	return DayKey(k.Time().AddDate(0, 0, 1).Format(dayLayout))
}

func (k DayKey) Before(other DayKey) bool { return k < other }

func (k DayKey) IsZero() bool { return k == "" }

// Nights counts days from start to end. Negative when end precedes start;
// callers decide what counts as valid.
func Nights(start, end DayKey) int {
	return int(end.Time().Sub(start.Time()).Hours() / 24)
}

// Days enumerates every day in [start, end), ascending. Empty when
// end <= start.
func Days(start, end DayKey) []DayKey {
	if end <= start {
		return nil
	}
	days := make([]DayKey, 0, Nights(start, end))
	for d := start; d < end; d = d.Next() {
		days = append(days, d)
	}
	return days
}

// DateRange represents a half-open stay interval [CheckIn, CheckOut):
// the guest occupies the room for the nights of CheckIn through the day
// before CheckOut.
type DateRange struct {
	CheckIn  DayKey
	CheckOut DayKey
}

func New(checkIn, checkOut DayKey) (DateRange, error) {
	dr := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckIn.IsZero() || dr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if dr.CheckOut <= dr.CheckIn {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Nights() int {
	return Nights(dr.CheckIn, dr.CheckOut)
}

func (dr DateRange) Days() []DayKey {
	return Days(dr.CheckIn, dr.CheckOut)
}

// Overlaps reports whether two half-open intervals intersect. Ranges that
// merely touch (one checkout equals the other checkin) are adjacent, not
// overlapping.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn < other.CheckOut && other.CheckIn < dr.CheckOut
}

// Contains reports whether the day is one of the occupied nights.
func (dr DateRange) Contains(day DayKey) bool {
	return day >= dr.CheckIn && day < dr.CheckOut
}
