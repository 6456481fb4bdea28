package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"venuebook/gateway"
	"venuebook/models"
	"venuebook/services/booking"
)

type fakeBookingService struct {
	games        []models.Game
	gamesErr     error
	availability models.AvailabilityResult
	availErr     error
	outcome      *models.BookingOutcome
	confirmErr   error
}

func (f *fakeBookingService) GetGames(ctx context.Context, params map[string]string) ([]models.Game, error) {
	return f.games, f.gamesErr
}

func (f *fakeBookingService) GetAvailability(ctx context.Context, gameID int, date string) (models.AvailabilityResult, error) {
	return f.availability, f.availErr
}

func (f *fakeBookingService) ConfirmBooking(ctx context.Context, attempt models.BookingAttempt) (*models.BookingOutcome, error) {
	return f.outcome, f.confirmErr
}

func testRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.GET("/api/availability", h.GetAvailability)
	r.POST("/api/bookings", h.ConfirmBooking)
	r.GET("/api/games", h.GetGames)
	return r
}

func TestGetAvailabilityHandler(t *testing.T) {
	t.Run("returns the reconciled result", func(t *testing.T) {
		svc := &fakeBookingService{
			availability: models.AvailabilityResult{
				Timeslots:      []models.Timeslot{{StartTime: "18:00", EndTime: "19:00", Available: true, SlotID: 501}},
				TotalSlots:     1,
				AvailableSlots: 1,
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability?gameId=7&date=2026-03-01", nil)
		testRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body models.AvailabilityResult
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.AvailableSlots != 1 || body.Timeslots[0].SlotID != 501 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("non-integer gameId is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability?gameId=vault&date=2026-03-01", nil)
		testRouter(&fakeBookingService{}).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		svc := &fakeBookingService{availErr: booking.NewValidationError("date must be in YYYY-MM-DD format")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability?gameId=7&date=bad", nil)
		testRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestConfirmBookingHandler(t *testing.T) {
	payload := `{"gameId":7,"date":"2026-03-01","start_time":"18:00","end_time":"19:00","partySize":4,"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","knownSlotId":501}`

	t.Run("returns the outcome on success", func(t *testing.T) {
		svc := &fakeBookingService{
			outcome: &models.BookingOutcome{
				Strategy:         models.ConfirmedViaDirectSlot,
				SlotID:           777,
				ConfirmationCode: "VB-000777",
				UsedFallback:     true,
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		testRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body models.BookingOutcome
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !body.UsedFallback || body.ConfirmationCode != "VB-000777" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("exhausted strategies map to 502 without leaking the provider body", func(t *testing.T) {
		svc := &fakeBookingService{
			confirmErr: &gateway.UpstreamError{Operation: "create-slot", Status: 503, Body: `{"trace":"internal-stack"}`},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		testRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "internal-stack") {
			t.Fatalf("provider error body leaked to the user: %s", w.Body.String())
		}
	})

	t.Run("missing configuration maps to 500", func(t *testing.T) {
		svc := &fakeBookingService{confirmErr: gateway.NewConfigurationError("provider API key is not configured")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		testRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"gameId":`))
		req.Header.Set("Content-Type", "application/json")
		testRouter(&fakeBookingService{}).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetGamesHandler(t *testing.T) {
	svc := &fakeBookingService{
		games: []models.Game{{ID: 7, Name: "The Vault", LocationID: 3}},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	testRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Games []models.Game `json:"games"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Games) != 1 || body.Games[0].ID != 7 {
		t.Fatalf("unexpected body %+v", body)
	}
}
