package gateway_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"caribcart-client/internal/contextkeys"
	"caribcart-client/internal/contracts"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/core/port"
)

// APIError carries the gateway's error payload for a non-success status.
// Message is what the server put into its `{message}` body, or a generic
// fallback when the body was not decodable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// doRequest is the internal helper for performing requests.
func (c *Client) doRequest(ctx context.Context, method, url, token, contentType string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// errorFromResponse turns a non-2xx response into an APIError, extracting
// the server's message when the body carries one.
func errorFromResponse(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	var msg messageResponse
	if err := json.Unmarshal(bodyBytes, &msg); err == nil && msg.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("gateway returned status %d", resp.StatusCode),
	}
}

// listingsEnvelope tolerates both response shapes of the public read: a
// wrapped `{"listings": [...]}` object and a bare array.
type listingsEnvelope struct {
	Listings []listingResponse
}

func (e *listingsEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Listings []listingResponse `json:"listings"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		e.Listings = wrapped.Listings
		return nil
	}

	var bare []listingResponse
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	e.Listings = bare
	return nil
}

func (c *Client) FetchPublicListings(ctx context.Context) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "GatewayApiClient",
		"method":    "FetchPublicListings",
	})

	url := fmt.Sprintf("%s/api/listing/public", c.baseURL)
	clientLogger.Debug("Sending request to gateway", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, "", "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to gateway", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errorFromResponse(resp)
		clientLogger.Error("Received error response from gateway", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var envelope listingsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		clientLogger.Error("Failed to decode response from gateway", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"listings_count": len(envelope.Listings)})

	return mapListings(envelope.Listings), nil
}

func (c *Client) FetchUserListings(ctx context.Context, token string) ([]domain.Listing, domain.Balance, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "GatewayApiClient",
		"method":    "FetchUserListings",
	})

	url := fmt.Sprintf("%s/api/listing/user", c.baseURL)
	clientLogger.Debug("Sending request to gateway", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, token, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to gateway", err, nil)
		return nil, domain.Balance{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errorFromResponse(resp)
		clientLogger.Error("Received error response from gateway", err, port.Fields{"status_code": resp.StatusCode})
		return nil, domain.Balance{}, err
	}

	var payload userListingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		clientLogger.Error("Failed to decode response from gateway", err, nil)
		return nil, domain.Balance{}, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"listings_count": len(payload.Listings)})

	balance := domain.Balance{
		Earnings:  payload.Balance.Earnings,
		Withdrawn: payload.Balance.Withdrawn,
		Available: payload.Balance.Available,
	}
	return mapListings(payload.Listings), balance, nil
}

func (c *Client) CreateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error) {
	// On create no image is stored yet, so the `images` key stays out of the
	// JSON entirely; every image travels as an upload part.
	return c.saveListing(ctx, http.MethodPost, "CreateListing", token, sub, false)
}

func (c *Client) UpdateListing(ctx context.Context, token string, sub domain.ListingSubmission) (string, error) {
	// On update the JSON carries the stored image URLs so the gateway keeps
	// them; only newly added images travel as upload parts.
	return c.saveListing(ctx, http.MethodPut, "UpdateListing", token, sub, true)
}

func (c *Client) saveListing(ctx context.Context, method, name, token string, sub domain.ListingSubmission, includeImages bool) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "GatewayApiClient",
		"method":    name,
	})

	details, err := json.Marshal(mapSubmission(sub, includeImages))
	if err != nil {
		return "", fmt.Errorf("failed to encode account details: %w", err)
	}

	// The payload is checked against the wire contract before anything is
	// sent; a schema failure never reaches the network.
	if err := contracts.Validate(contracts.ListingSubmission, details); err != nil {
		clientLogger.Error("Listing payload failed contract validation", err, nil)
		return "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("accountDetails", string(details)); err != nil {
		return "", fmt.Errorf("failed to write account details part: %w", err)
	}
	for _, img := range sub.PendingImages {
		part, err := writer.CreateFormFile("images", img.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return "", fmt.Errorf("failed to write image part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/listing", c.baseURL)
	clientLogger.Debug("Sending request to gateway", port.Fields{
		"url":            url,
		"pending_images": len(sub.PendingImages),
	})

	resp, err := c.doRequest(ctx, method, url, token, writer.FormDataContentType(), &buf)
	if err != nil {
		clientLogger.Error("Failed to perform request to gateway", err, nil)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errorFromResponse(resp)
		clientLogger.Error("Received error response from gateway", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		clientLogger.Error("Failed to decode response from gateway", err, nil)
		return "", err
	}

	clientLogger.Info("Listing saved", port.Fields{"message": msg.Message})
	return msg.Message, nil
}

func (c *Client) SubmitCredentials(ctx context.Context, token, listingID string, credential []domain.FormField) (string, error) {
	body := credentialRequest{Credential: credential, ListingID: listingID}
	return c.postJSON(ctx, "SubmitCredentials", "/api/listing/add-credential", contracts.CredentialSubmission, token, body)
}

func (c *Client) Withdraw(ctx context.Context, token string, account []domain.FormField, amount int) (string, error) {
	body := withdrawalRequest{Account: account, Amount: amount}
	return c.postJSON(ctx, "Withdraw", "/api/listing/withdraw", contracts.WithdrawalRequest, token, body)
}

func (c *Client) postJSON(ctx context.Context, name, path, schema, token string, body interface{}) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "GatewayApiClient",
		"method":    name,
	})

	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request body: %w", err)
	}

	if err := contracts.Validate(schema, encoded); err != nil {
		clientLogger.Error("Payload failed contract validation", err, nil)
		return "", err
	}

	url := c.baseURL + path
	clientLogger.Debug("Sending request to gateway", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, token, "application/json", bytes.NewReader(encoded))
	if err != nil {
		clientLogger.Error("Failed to perform request to gateway", err, nil)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errorFromResponse(resp)
		clientLogger.Error("Received error response from gateway", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		clientLogger.Error("Failed to decode response from gateway", err, nil)
		return "", err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"message": msg.Message})
	return msg.Message, nil
}
