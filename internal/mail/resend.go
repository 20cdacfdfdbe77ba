package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// ResendService sends transactional email through the Resend HTTP API
type ResendService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendService creates a new Resend service
func NewResendService(apiKey string) *ResendService {
	return &ResendService{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewResendServiceWithBaseURL creates a Resend service pointed at a custom
// endpoint (used by tests)
func NewResendServiceWithBaseURL(apiKey, baseURL string) *ResendService {
	s := NewResendService(apiKey)
	s.baseURL = baseURL
	return s
}

// Send delivers one email. A non-2xx provider response is an error.
func (s *ResendService) Send(ctx context.Context, msg Message) error {
	if s.apiKey == "" {
		return fmt.Errorf("resend API key not configured")
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	url := s.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}
