// Package client provides HTTP implementations of the journey and upload
// service interfaces, matching what the browser front end does over fetch.
// Wiring a session.Store with these clients against a running server gives
// the full round trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/models/response_models"
	"urbanscribe/pkg/utils"
)

// DefaultTimeout bounds each outbound request.
const DefaultTimeout = 15 * time.Second

type JourneyClient struct {
	baseURL string
	http    *http.Client
}

func NewJourneyClient(baseURL string, timeout time.Duration) *JourneyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &JourneyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GenerateJourney posts the query+location pair and decodes the Journey.
// Non-2xx responses surface as a short diagnostic string; the payload is not
// validated beyond decoding.
func (c *JourneyClient) GenerateJourney(ctx context.Context, query string, location request_models.Location) (*response_models.Journey, error) {
	body, err := json.Marshal(request_models.GenerateJourneyRequest{
		Query:    query,
		Location: &location,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", utils.ErrJourneyFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-journey", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrJourneyFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrJourneyFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", utils.ErrJourneyFailed, errorMessage(resp))
	}

	var journey response_models.Journey
	if err := json.NewDecoder(resp.Body).Decode(&journey); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", utils.ErrJourneyFailed, err)
	}
	return &journey, nil
}

// Ping checks the server is reachable and returns its configured message.
func (c *JourneyClient) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ping: unexpected status %d", resp.StatusCode)
	}
	var ping response_models.PingResponse
	if err := json.NewDecoder(resp.Body).Decode(&ping); err != nil {
		return "", fmt.Errorf("ping: decode response: %w", err)
	}
	return ping.Message, nil
}

// errorMessage pulls the message field out of an error body, falling back to
// the HTTP status line.
func errorMessage(resp *http.Response) string {
	var apiErr utils.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return resp.Status
}
