package availability

import "stayhub/internal/domain/daterange"

// Selection tracks an in-progress date-range pick: first click anchors the
// range, second click completes it. The zero value means nothing selected.
type Selection struct {
	Anchor daterange.DayKey
	End    daterange.DayKey
}

func (s Selection) Complete() bool {
	return !s.Anchor.IsZero() && !s.End.IsZero()
}

// Range converts a completed selection to a stay interval. The selected end
// day is the checkout day itself, so the guest's last occupied night is the
// day before it.
func (s Selection) Range() (daterange.DateRange, bool) {
	if !s.Complete() {
		return daterange.DateRange{}, false
	}
	return daterange.DateRange{CheckIn: s.Anchor, CheckOut: s.End}, true
}

// Click applies one day pick and returns the resulting selection.
//
// Clicks on past or blocked days are ignored. A click with no anchor, or
// after a completed range, starts a new range. A click before the anchor
// re-anchors to the earlier day rather than swapping endpoints. A click
// that would complete a range crossing a blocked day also re-anchors to
// the clicked day: the user may not span a night someone else holds, and
// restarting beats silently truncating.
func (s Selection) Click(day daterange.DayKey, blocked BlockedSet, today daterange.DayKey) Selection {
	if day < today || blocked.Contains(day) {
		return s
	}

	if s.Anchor.IsZero() || s.Complete() {
		return Selection{Anchor: day}
	}

	if day < s.Anchor {
		return Selection{Anchor: day}
	}

	for d := s.Anchor; d <= day; d = d.Next() {
		if blocked.Contains(d) {
			return Selection{Anchor: day}
		}
	}

	return Selection{Anchor: s.Anchor, End: day}
}
