package t212

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tomasper/t212flux/internal/model"
)

// APICallError reports a failed call to the Trading212 API. It wraps the
// underlying transport error when one occurred; for non-2xx responses the
// status code and body are logged, not surfaced as structured data.
type APICallError struct {
	StatusCode int // 0 when the request never produced a response
	Cause      error
}

func (e *APICallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("trading212 api call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("trading212 api call failed: %v", e.Cause)
}

func (e *APICallError) Unwrap() error { return e.Cause }

// GetOpenPositions performs one authenticated GET against the configured
// URL and returns the validated, normalized open positions.
func (c *Client) GetOpenPositions(ctx context.Context) ([]model.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	// Trading212 expects the raw key, not a Bearer scheme.
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("trading212 request failed", "error", err)
		return nil, &APICallError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("trading212 response read failed", "error", err)
		return nil, &APICallError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("trading212 api call failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, &APICallError{StatusCode: resp.StatusCode}
	}

	var raw []APIPosition
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal positions: %w", err)
	}

	c.logger.Info("trading212 api call successful", "positions", len(raw))

	return ToPositions(raw)
}
