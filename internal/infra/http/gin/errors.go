package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	domainbooking "stayhub/internal/domain/booking"
	"stayhub/internal/domain/daterange"
	domainrooms "stayhub/internal/domain/rooms"
)

// writeError maps domain rejections to HTTP statuses. Expected conditions
// arrive as sentinel errors; anything unrecognized is a 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, daterange.ErrInvalidDate):
		status = http.StatusBadRequest
	case errors.Is(err, daterange.ErrInvalidRange):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainbooking.ErrGuestNameMissing):
		status = http.StatusBadRequest
	case errors.Is(err, domainbooking.ErrRoomUnavailable):
		status = http.StatusConflict
	case errors.Is(err, domainbooking.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainrooms.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainrooms.ErrRoomExists):
		status = http.StatusConflict
	case errors.Is(err, domainrooms.ErrRoomHasBookings):
		status = http.StatusConflict
	case errors.Is(err, domainrooms.ErrInvalidRoom):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
