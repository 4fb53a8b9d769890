package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	appbookings "stayhub/internal/app/bookings"
	domainbooking "stayhub/internal/domain/booking"
)

type BookingHandler struct {
	Bookings *appbookings.Service
}

// bookingResponse mirrors the shape the demo UI consumes.
type bookingResponse struct {
	ID         string  `json:"id"`
	GuestName  string  `json:"guestName"`
	Phone      string  `json:"customerPhoneNumber"`
	Email      string  `json:"customerEmail"`
	NationalID string  `json:"customerId"`
	RoomNumber string  `json:"roomNumber"`
	CheckIn    string  `json:"checkInDate"`
	CheckOut   string  `json:"checkOutDate"`
	TotalPrice float64 `json:"totalPrice"`
}

func mapBooking(b domainbooking.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		GuestName:  b.GuestName,
		Phone:      b.Phone,
		Email:      b.Email,
		NationalID: b.NationalID,
		RoomNumber: b.RoomNumber,
		CheckIn:    string(b.Range.CheckIn),
		CheckOut:   string(b.Range.CheckOut),
		TotalPrice: b.TotalPrice,
	}
}

// Contact fields are checked here at the form boundary; the booking engine
// itself treats them as opaque.
type createBookingRequest struct {
	GuestName  string `json:"guestName" binding:"required"`
	Phone      string `json:"customerPhoneNumber" binding:"required,len=10,numeric"`
	Email      string `json:"customerEmail" binding:"required,email"`
	NationalID string `json:"customerId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	CheckIn    string `json:"checkInDate" binding:"required"`
	CheckOut   string `json:"checkOutDate" binding:"required"`
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), appbookings.CreateInput{
		GuestName:  req.GuestName,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.NationalID,
		RoomNumber: req.RoomNumber,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapBooking(b))
}

func (h BookingHandler) Get(c *gin.Context) {
	b, err := h.Bookings.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBooking(b))
}

type findBookingRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	Phone     string `json:"customerPhoneNumber" binding:"required"`
}

func (h BookingHandler) Find(c *gin.Context) {
	var req findBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Bookings.Find(c.Request.Context(), req.GuestName, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBooking(b))
}

type updateBookingRequest struct {
	GuestName  *string `json:"guestName"`
	Phone      *string `json:"customerPhoneNumber"`
	Email      *string `json:"customerEmail" binding:"omitempty,email"`
	NationalID *string `json:"customerId"`
}

func (h BookingHandler) UpdateDetails(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Bookings.UpdateDetails(c.Request.Context(), c.Param("id"), appbookings.UpdateDetailsInput{
		GuestName:  req.GuestName,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.NationalID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapBooking(b))
}

func (h BookingHandler) List(c *gin.Context) {
	all, err := h.Bookings.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]bookingResponse, 0, len(all))
	for _, b := range all {
		out = append(out, mapBooking(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h BookingHandler) Delete(c *gin.Context) {
	if err := h.Bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ BookingHTTP = BookingHandler{}
