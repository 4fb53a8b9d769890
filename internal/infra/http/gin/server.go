package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayhub/internal/infra/config"
	"stayhub/internal/infra/obs"
)

type BookingHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Find(c *gin.Context)
	UpdateDetails(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

type RoomHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type AvailabilityHTTP interface {
	BlockedDates(c *gin.Context)
}

type DashboardHTTP interface {
	Snapshot(c *gin.Context)
}

type Handlers struct {
	Booking      BookingHTTP
	Room         RoomHTTP
	Availability AvailabilityHTTP
	Dashboard    DashboardHTTP
	AdminAuth    gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	api.GET("/rooms", h.Room.List)
	api.GET("/rooms/:number", h.Room.Get)
	api.GET("/rooms/:number/availability", h.Availability.BlockedDates)

	api.POST("/bookings", h.Booking.Create)
	api.POST("/bookings/find", h.Booking.Find)
	api.GET("/bookings/:id", h.Booking.Get)
	api.PATCH("/bookings/:id", h.Booking.UpdateDetails)

	admin := api.Group("/admin")
	if h.AdminAuth != nil {
		admin.Use(h.AdminAuth)
	}
	admin.GET("/dashboard", h.Dashboard.Snapshot)
	admin.GET("/bookings", h.Booking.List)
	admin.DELETE("/bookings/:id", h.Booking.Delete)
	admin.POST("/rooms", h.Room.Create)
	admin.PUT("/rooms/:number", h.Room.Update)
	admin.DELETE("/rooms/:number", h.Room.Delete)

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
