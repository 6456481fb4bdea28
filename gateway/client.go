// Package gateway is the low-level client for the third-party reservation
// provider. It owns authentication, per-call timeouts, and normalization of
// the provider's inconsistent response envelopes and failure modes. It
// knows nothing about caching or booking rules.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"venuebook/models"
)

// DefaultTimeout bounds every provider call. The provider's slower
// endpoints are known to take several seconds under load.
const DefaultTimeout = 12 * time.Second

// Client is the authenticated provider client. One instance is shared by
// the availability engine and the booking orchestrator.
type Client struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// New returns a client for the given provider account. The API key is
// checked lazily on first call rather than here, so a misconfigured
// process can still boot and serve cached data.
func New(baseURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		hc:      &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  logger,
	}
}

// WithTimeout overrides the per-call deadline. Used by tests.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// Ping checks provider reachability using the cheapest read endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/games", map[string]string{"limit": "1"}, nil)
	return err
}

// ListGames fetches the provider's bookable items.
func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	body, err := c.do(ctx, http.MethodGet, "/games", nil, nil)
	if err != nil {
		return nil, err
	}
	var res gameListResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &UpstreamError{Operation: "list-games", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Games, nil
}

// GetGame fetches one item, optionally with the rich pricing block. The
// pricing expansion fails on accounts without the feature, so callers are
// expected to retry without it.
func (c *Client) GetGame(ctx context.Context, gameID int, withPricing bool) (models.Game, *models.GamePricing, error) {
	path := fmt.Sprintf("/games/%d", gameID)
	var query map[string]string
	if withPricing {
		query = map[string]string{"expand": "pricing"}
	}
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return models.Game{}, nil, err
	}
	var res gameDetailResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return models.Game{}, nil, &UpstreamError{Operation: "game-detail", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Game, res.Pricing, nil
}

// ListSlotRecords fetches every calendar entry for a game between two
// dates, inclusive. The provider returns duplicates and stale test rows;
// filtering is the caller's problem.
func (c *Client) ListSlotRecords(ctx context.Context, gameID int, from, to string) ([]models.SlotRecord, error) {
	query := map[string]string{
		"game_id":   strconv.Itoa(gameID),
		"date_from": from,
		"date_to":   to,
	}
	body, err := c.do(ctx, http.MethodGet, "/slots", query, nil)
	if err != nil {
		return nil, err
	}
	var res slotListResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &UpstreamError{Operation: "list-slots", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Slots, nil
}

// CreateSlotRecord writes a standalone slot record.
func (c *Client) CreateSlotRecord(ctx context.Context, in CreateSlotInput) (models.SlotRecord, error) {
	body, err := c.do(ctx, http.MethodPost, "/slots", nil, in)
	if err != nil {
		return models.SlotRecord{}, err
	}
	var res slotResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return models.SlotRecord{}, &UpstreamError{Operation: "create-slot", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Slot, nil
}

// UpdateSlotRecord patches an existing slot record.
func (c *Client) UpdateSlotRecord(ctx context.Context, slotID int, in UpdateSlotInput) (models.SlotRecord, error) {
	path := fmt.Sprintf("/slots/%d", slotID)
	body, err := c.do(ctx, http.MethodPatch, path, nil, in)
	if err != nil {
		return models.SlotRecord{}, err
	}
	var res slotResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return models.SlotRecord{}, &UpstreamError{Operation: "update-slot", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Slot, nil
}

// CreateTransaction invokes the provider's atomic
// booking+customer+invoice endpoint. Known to fail intermittently on some
// account configurations, which is why the orchestrator carries a
// fallback.
func (c *Client) CreateTransaction(ctx context.Context, in TransactionInput) (TransactionResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/transactions", nil, in)
	if err != nil {
		return TransactionResult{}, err
	}
	var res transactionResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return TransactionResult{}, &UpstreamError{Operation: "create-transaction", Status: http.StatusOK, Body: truncate(body)}
	}
	return res.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, payload any) ([]byte, error) {
	if c.apiKey == "" {
		return nil, NewConfigurationError("provider API key is not configured")
	}

	op := method + " " + path
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		jb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("gateway: failed to encode request body for %s: %w", op, err)
		}
		reqBody = bytes.NewReader(jb)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("gateway: failed to build request for %s: %w", op, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if query != nil {
		q := req.URL.Query()
		for k, v := range query {
			q.Add(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.logger.Warn("provider call timed out", zap.String("operation", op))
			return nil, &TimeoutError{Operation: op}
		}
		return nil, fmt.Errorf("gateway: %s: %w", op, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: failed to read response for %s: %w", op, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Warn("provider call failed",
			zap.String("operation", op),
			zap.Int("status", res.StatusCode))
		return nil, &UpstreamError{Operation: op, Status: res.StatusCode, Body: truncate(b)}
	}
	return b, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// truncate bounds captured response bodies so diagnostics never balloon a
// log line.
func truncate(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
