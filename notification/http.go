// file: notification/http.go

package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrGatewayRejected = errors.New("sms gateway rejected message")

// HTTPTransport posts messages as JSON to an SMS gateway endpoint.
type HTTPTransport struct {
	url    string
	token  string
	client *http.Client
}

// NewHTTPTransport creates a transport for the gateway at url. token, when set, is sent
// as a bearer token.
func NewHTTPTransport(url, token string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode sms message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", msg.ID)
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrGatewayRejected, resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
