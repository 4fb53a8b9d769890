package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	appbookings "stayhub/internal/app/bookings"
)

type AvailabilityHandler struct {
	Bookings *appbookings.Service
}

type bookedRange struct {
	CheckIn  string `json:"checkInDate"`
	CheckOut string `json:"checkOutDate"`
}

// BlockedDates returns the occupied day keys for a room, the set the
// booking calendar greys out, along with the stay intervals behind them.
// Callers re-fetch whenever they need a fresh view; the engine does not
// push updates.
func (h AvailabilityHandler) BlockedDates(c *gin.Context) {
	roomNumber := c.Param("number")
	view, err := h.Bookings.RoomAvailability(c.Request.Context(), roomNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	ranges := make([]bookedRange, 0, len(view.BookedRanges))
	for _, r := range view.BookedRanges {
		ranges = append(ranges, bookedRange{CheckIn: string(r.CheckIn), CheckOut: string(r.CheckOut)})
	}
	c.JSON(http.StatusOK, gin.H{
		"roomNumber":   roomNumber,
		"blockedDates": view.BlockedDates,
		"bookedRanges": ranges,
	})
}

var _ AvailabilityHTTP = AvailabilityHandler{}
