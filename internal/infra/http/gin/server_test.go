package ginserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appbookings "stayhub/internal/app/bookings"
	appdashboard "stayhub/internal/app/dashboard"
	approoms "stayhub/internal/app/rooms"
	"stayhub/internal/infra/config"
	"stayhub/internal/infra/obs"
	"stayhub/internal/infra/storage/memory"
)

func newTestServer(t *testing.T, adminToken string) http.Handler {
	t.Helper()
	roomRepo := memory.NewRoomRepository()
	bookingRepo := memory.NewBookingRepository()
	if err := memory.Seed(context.Background(), roomRepo, bookingRepo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	logger := slog.New(slog.DiscardHandler)
	bookingSvc := appbookings.NewService(logger, bookingRepo, roomRepo, nil)

	cfg := config.Config{Env: "test", HTTPAddr: ":0", AdminToken: adminToken}
	srv := NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, Handlers{
		Booking:      BookingHandler{Bookings: bookingSvc},
		Room:         RoomHandler{Rooms: approoms.NewService(logger, roomRepo, bookingRepo)},
		Availability: AvailabilityHandler{Bookings: bookingSvc},
		Dashboard:    DashboardHandler{Dashboard: appdashboard.NewService(bookingRepo, roomRepo)},
		AdminAuth:    AdminTokenAuth(adminToken),
	})
	return srv.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateBookingConflict(t *testing.T) {
	h := newTestServer(t, "")

	// Room 305 is taken [2024-08-10, 2024-08-15).
	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings", `{
		"guestName": "Dana Smith",
		"customerPhoneNumber": "0001112222",
		"customerEmail": "dana@example.com",
		"customerId": "GH901234",
		"roomNumber": "305",
		"checkInDate": "2024-08-12",
		"checkOutDate": "2024-08-14"
	}`, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "305") {
		t.Fatalf("conflict message should name the room: %s", w.Body.String())
	}
}

func TestCreateBookingSucceeds(t *testing.T) {
	h := newTestServer(t, "")

	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings", `{
		"guestName": "Dana Smith",
		"customerPhoneNumber": "0001112222",
		"customerEmail": "dana@example.com",
		"customerId": "GH901234",
		"roomNumber": "205",
		"checkInDate": "2024-08-12",
		"checkOutDate": "2024-08-14"
	}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID         string  `json:"id"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("response must carry the new booking id")
	}
	if resp.TotalPrice != 500 {
		t.Fatalf("want 500 (2 nights x 250), got %v", resp.TotalPrice)
	}
}

func TestCreateBookingRejectsBadContactFields(t *testing.T) {
	h := newTestServer(t, "")

	// 9-digit phone fails the form-boundary validation.
	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings", `{
		"guestName": "Dana Smith",
		"customerPhoneNumber": "000111222",
		"customerEmail": "dana@example.com",
		"customerId": "GH901234",
		"roomNumber": "205",
		"checkInDate": "2024-08-12",
		"checkOutDate": "2024-08-14"
	}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingInvalidRange(t *testing.T) {
	h := newTestServer(t, "")

	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings", `{
		"guestName": "Dana Smith",
		"customerPhoneNumber": "0001112222",
		"customerEmail": "dana@example.com",
		"customerId": "GH901234",
		"roomNumber": "205",
		"checkInDate": "2024-08-14",
		"checkOutDate": "2024-08-12"
	}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBlockedDatesEndpoint(t *testing.T) {
	h := newTestServer(t, "")

	w := doJSON(t, h, http.MethodGet, "/api/v1/rooms/305/availability", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		RoomNumber   string   `json:"roomNumber"`
		BlockedDates []string `json:"blockedDates"`
		BookedRanges []struct {
			CheckIn  string `json:"checkInDate"`
			CheckOut string `json:"checkOutDate"`
		} `json:"bookedRanges"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.BlockedDates) != 10 {
		t.Fatalf("want 10 blocked days for room 305, got %d", len(resp.BlockedDates))
	}
	for _, d := range resp.BlockedDates {
		if d == "2024-08-15" {
			t.Fatal("checkout day must not be blocked")
		}
	}
	if len(resp.BookedRanges) != 2 {
		t.Fatalf("want the 2 stays behind the blocked days, got %+v", resp.BookedRanges)
	}
	if resp.BookedRanges[0].CheckIn != "2024-08-10" || resp.BookedRanges[0].CheckOut != "2024-08-15" {
		t.Fatalf("unexpected first range: %+v", resp.BookedRanges[0])
	}
}

func TestFindBookingEndpoint(t *testing.T) {
	h := newTestServer(t, "")

	w := doJSON(t, h, http.MethodPost, "/api/v1/bookings/find", `{
		"guestName": "alice johnson",
		"customerPhoneNumber": "1112223333"
	}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/v1/bookings/find", `{
		"guestName": "alice johnson",
		"customerPhoneNumber": "0000000000"
	}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	h := newTestServer(t, "hunter2")

	w := doJSON(t, h, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 without token, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/admin/dashboard", "", map[string]string{"X-Admin-Token": "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 with token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteBookedRoomConflict(t *testing.T) {
	h := newTestServer(t, "")

	w := doJSON(t, h, http.MethodDelete, "/api/v1/admin/rooms/305", "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409 for booked room, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodDelete, "/api/v1/admin/rooms/101", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204 for unbooked room, got %d: %s", w.Code, w.Body.String())
	}
}
