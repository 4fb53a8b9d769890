package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appbookings "stayhub/internal/app/bookings"
	appdashboard "stayhub/internal/app/dashboard"
	approoms "stayhub/internal/app/rooms"
	domainbooking "stayhub/internal/domain/booking"
	domainrooms "stayhub/internal/domain/rooms"
	"stayhub/internal/infra/broker/kafka"
	"stayhub/internal/infra/config"
	"stayhub/internal/infra/db/mongo"
	ginserver "stayhub/internal/infra/http/gin"
	"stayhub/internal/infra/obs"
	"stayhub/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("configuration failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	roomRepo, bookingRepo, ready, cleanup, err := buildStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	var events appbookings.EventPublisher
	if cfg.EventsEnabled() {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		events = kafka.NewBookingEvents(producer, cfg.KafkaTopic)
		logger.Info("booking events enabled", "topic", cfg.KafkaTopic)
	}

	bookingSvc := appbookings.NewService(logger, bookingRepo, roomRepo, events)
	roomSvc := approoms.NewService(logger, roomRepo, bookingRepo)
	dashboardSvc := appdashboard.NewService(bookingRepo, roomRepo)

	handlers := ginserver.Handlers{
		Booking:      ginserver.BookingHandler{Bookings: bookingSvc},
		Room:         ginserver.RoomHandler{Rooms: roomSvc},
		Availability: ginserver.AvailabilityHandler{Bookings: bookingSvc},
		Dashboard:    ginserver.DashboardHandler{Dashboard: dashboardSvc},
		AdminAuth:    ginserver.AdminTokenAuth(cfg.AdminToken),
	}
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "store", cfg.StoreMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildStores wires the configured backing store. The memory store is
// re-seeded with the demo fixtures on every start; Mongo keeps whatever it
// already holds.
func buildStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (domainrooms.Repository, domainbooking.Repository, func() error, func(), error) {
	switch cfg.StoreMode {
	case config.StoreMongo:
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		ready := func() error { return client.Ping(context.Background()) }
		return mongo.NewRoomRepository(client.DB), mongo.NewBookingRepository(client.DB), ready, cleanup, nil
	default:
		roomRepo := memory.NewRoomRepository()
		bookingRepo := memory.NewBookingRepository()
		if err := memory.Seed(ctx, roomRepo, bookingRepo); err != nil {
			return nil, nil, nil, nil, err
		}
		logger.Info("memory store seeded with demo fixtures")
		return roomRepo, bookingRepo, func() error { return nil }, func() {}, nil
	}
}
