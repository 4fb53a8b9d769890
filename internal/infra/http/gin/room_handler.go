package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	approoms "stayhub/internal/app/rooms"
	domainrooms "stayhub/internal/domain/rooms"
)

type RoomHandler struct {
	Rooms *approoms.Service
}

type roomRequest struct {
	Number        string            `json:"id"`
	Name          string            `json:"name" binding:"required"`
	Images        []string          `json:"images"`
	PricePerNight float64           `json:"pricePerNight" binding:"required,gt=0"`
	Description   string            `json:"description"`
	Capacity      int               `json:"capacity" binding:"required,gt=0"`
	Beds          []domainrooms.Bed `json:"beds"`
	Amenities     []string          `json:"amenities"`
}

func (r roomRequest) toEntity() domainrooms.Room {
	return domainrooms.Room{
		Number:        r.Number,
		Name:          r.Name,
		Images:        r.Images,
		PricePerNight: r.PricePerNight,
		Description:   r.Description,
		Capacity:      r.Capacity,
		Beds:          r.Beds,
		Amenities:     r.Amenities,
	}
}

func (h RoomHandler) List(c *gin.Context) {
	rooms, err := h.Rooms.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h RoomHandler) Get(c *gin.Context) {
	room, err := h.Rooms.ByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h RoomHandler) Create(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Rooms.Create(c.Request.Context(), req.toEntity()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req.toEntity())
}

func (h RoomHandler) Update(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := req.toEntity()
	room.Number = c.Param("number")
	if err := h.Rooms.Update(c.Request.Context(), room); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h RoomHandler) Delete(c *gin.Context) {
	if err := h.Rooms.Delete(c.Request.Context(), c.Param("number")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ RoomHTTP = RoomHandler{}
