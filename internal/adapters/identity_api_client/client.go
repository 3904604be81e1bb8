// Package identity_api_client talks to the external identity service that
// issues the short-lived bearer tokens every authenticated gateway call
// carries. Tokens are fetched fresh per call; nothing is cached or
// refreshed here.
package identity_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/core/port"
)

type Client struct {
	baseURL    string
	sessionID  string
	sessionKey string
	httpClient *http.Client
}

func NewClient(baseURL, sessionID, sessionKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		sessionID:  sessionID,
		sessionKey: sessionKey,
		httpClient: &http.Client{},
	}
}

// DTO for the token endpoint response.
type tokenResponse struct {
	JWT string `json:"jwt"`
}

// Token mints a session token for the configured session.
func (c *Client) Token(ctx context.Context) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "IdentityApiClient",
		"method":    "Token",
	})

	url := fmt.Sprintf("%s/v1/sessions/%s/tokens", c.baseURL, c.sessionID)
	clientLogger.Debug("Requesting session token", port.Fields{"url": url})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Authorization", "Bearer "+c.sessionKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to identity service", err, nil)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("identity service returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received error response from identity service", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		clientLogger.Error("Failed to decode response from identity service", err, nil)
		return "", err
	}
	if payload.JWT == "" {
		return "", fmt.Errorf("identity service returned an empty token")
	}

	return payload.JWT, nil
}
