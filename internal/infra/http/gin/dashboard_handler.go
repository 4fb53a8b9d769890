package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	appdashboard "stayhub/internal/app/dashboard"
)

type DashboardHandler struct {
	Dashboard *appdashboard.Service
}

type dashboardResponse struct {
	TotalBookings int               `json:"totalBookings"`
	TotalRevenue  float64           `json:"totalRevenue"`
	OccupancyRate float64           `json:"occupancyRate"`
	CheckIns      []bookingResponse `json:"todaysCheckIns"`
	CheckOuts     []bookingResponse `json:"todaysCheckOuts"`
}

func (h DashboardHandler) Snapshot(c *gin.Context) {
	stats, err := h.Dashboard.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := dashboardResponse{
		TotalBookings: stats.TotalBookings,
		TotalRevenue:  stats.TotalRevenue,
		OccupancyRate: stats.OccupancyRate,
		CheckIns:      make([]bookingResponse, 0, len(stats.CheckIns)),
		CheckOuts:     make([]bookingResponse, 0, len(stats.CheckOuts)),
	}
	for _, b := range stats.CheckIns {
		resp.CheckIns = append(resp.CheckIns, mapBooking(b))
	}
	for _, b := range stats.CheckOuts {
		resp.CheckOuts = append(resp.CheckOuts, mapBooking(b))
	}
	c.JSON(http.StatusOK, resp)
}

var _ DashboardHTTP = DashboardHandler{}
