package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", zap.NewNop()), srv
}

func TestClient_Auth(t *testing.T) {
	t.Parallel()

	t.Run("sends api key and json headers", func(t *testing.T) {
		var gotKey, gotAccept, gotReqID string
		c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-Api-Key")
			gotAccept = r.Header.Get("Accept")
			gotReqID = r.Header.Get("X-Request-Id")
			w.Write([]byte(`[]`))
		})

		if _, err := c.ListGames(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotKey != "test-key" {
			t.Fatalf("expected api key header, got %q", gotKey)
		}
		if gotAccept != "application/json" {
			t.Fatalf("expected json accept header, got %q", gotAccept)
		}
		if gotReqID == "" {
			t.Fatal("expected a request id header")
		}
	})

	t.Run("missing api key is a configuration error before any call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := New(srv.URL, "", zap.NewNop())
		_, err := c.ListGames(context.Background())
		var configErr *ConfigurationError
		if !errors.As(err, &configErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if called {
			t.Fatal("expected no HTTP call without credentials")
		}
	})
}

func TestClient_ErrorNormalization(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx becomes an upstream error with status and body", func(t *testing.T) {
		c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"account not provisioned"}`))
		})

		_, err := c.CreateTransaction(context.Background(), TransactionInput{SlotID: 1})
		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if upstream.Status != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", upstream.Status)
		}
		if !strings.Contains(upstream.Body, "account not provisioned") {
			t.Fatalf("expected captured body, got %q", upstream.Body)
		}
	})

	t.Run("deadline overrun becomes a timeout error", func(t *testing.T) {
		c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`[]`))
		})
		c.WithTimeout(20 * time.Millisecond)

		_, err := c.ListGames(context.Background())
		var timeout *TimeoutError
		if !errors.As(err, &timeout) {
			t.Fatalf("expected TimeoutError, got %v", err)
		}
	})
}

func TestClient_EnvelopeNormalization(t *testing.T) {
	t.Parallel()

	t.Run("slot list accepts wrapped and bare shapes", func(t *testing.T) {
		bodies := map[string]string{
			"wrapped": `{"slots":[{"id":501,"start_time":"18:00","status":"available"}]}`,
			"bare":    `[{"id":501,"start_time":"18:00","status":"available"}]`,
		}
		for name, body := range bodies {
			body := body
			t.Run(name, func(t *testing.T) {
				c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Query().Get("game_id") != "7" {
						t.Errorf("expected game_id filter, got %q", r.URL.RawQuery)
					}
					w.Write([]byte(body))
				})

				slots, err := c.ListSlotRecords(context.Background(), 7, "2026-03-01", "2026-03-01")
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if len(slots) != 1 || slots[0].ID != 501 {
					t.Fatalf("expected one slot with id 501, got %+v", slots)
				}
			})
		}
	})

	t.Run("game detail accepts wrapped and bare shapes", func(t *testing.T) {
		bodies := map[string]string{
			"wrapped": `{"game":{"id":7,"name":"The Vault","location_id":3},"pricing":{"amount":35,"type":"per_person"}}`,
			"bare":    `{"id":7,"name":"The Vault","location_id":3,"pricing":{"amount":35,"type":"per_person"}}`,
		}
		for name, body := range bodies {
			body := body
			t.Run(name, func(t *testing.T) {
				c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Query().Get("expand") != "pricing" {
						t.Errorf("expected pricing expansion, got %q", r.URL.RawQuery)
					}
					w.Write([]byte(body))
				})

				game, pricing, err := c.GetGame(context.Background(), 7, true)
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if game.ID != 7 || game.LocationID != 3 {
					t.Fatalf("expected game 7 at location 3, got %+v", game)
				}
				if pricing == nil || pricing.Amount != 35 {
					t.Fatalf("expected pricing block, got %+v", pricing)
				}
			})
		}
	})

	t.Run("created slot accepts wrapped shape", func(t *testing.T) {
		c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"slot":{"id":777,"slot_text":"Ada Lovelace | ada@example.com"}}`))
		})

		slot, err := c.CreateSlotRecord(context.Background(), CreateSlotInput{GameID: 7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if slot.ID != 777 {
			t.Fatalf("expected slot id 777, got %+v", slot)
		}
	})
}
