package wablas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rozanhaisyam/wablas-api-bolt/config"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
	"github.com/sirupsen/logrus"
)

// ErrMalformedQRResponse marks a well-formed HTTP response whose QR payload
// is missing the qr or token field. The gateway is not trusted to honor its
// own schema.
var ErrMalformedQRResponse = errors.New("invalid QR code response format")

// APIError is a non-2xx answer from the gateway.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Body)
}

// Client calls the Wablas REST API. The base URL and bearer credential are
// read from the store on every call, so a re-login redirects all new
// requests immediately.
type Client struct {
	store  *config.GatewayStore
	client *http.Client

	// overridable in tests
	baseURL func() string
}

// NewClient creates a gateway client bound to the configuration store.
func NewClient(store *config.GatewayStore) *Client {
	return &Client{
		store:   store,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: store.BaseURL,
	}
}

// SendMessage submits one outbound message and returns the gateway's ack
// body as-is.
func (c *Client) SendMessage(ctx context.Context, payload gateway.SendMessagePayload) (json.RawMessage, error) {
	var ack json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/send-message", payload, &ack); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return ack, nil
}

// DeviceInfo fetches the current device connection snapshot.
func (c *Client) DeviceInfo(ctx context.Context) (*gateway.DeviceInfo, error) {
	var info gateway.DeviceInfo
	if err := c.do(ctx, http.MethodGet, "/device/info", nil, &info); err != nil {
		return nil, fmt.Errorf("failed to get device info: %w", err)
	}
	return &info, nil
}

// RequestQR asks the gateway for a fresh QR linking payload and validates
// its shape before returning it.
func (c *Client) RequestQR(ctx context.Context) (*gateway.QRCodeResponse, error) {
	var resp gateway.QRCodeResponse
	if err := c.do(ctx, http.MethodGet, "/device/scan", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to request QR code: %w", err)
	}
	if resp.Data.QR == "" || resp.Data.Token == "" {
		return nil, ErrMalformedQRResponse
	}
	return &resp, nil
}

// QRStatus polls the linking status for a QR token.
func (c *Client) QRStatus(ctx context.Context, token string) (*gateway.QRStatusResponse, error) {
	var status gateway.QRStatusResponse
	path := "/device/scan/status/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, fmt.Errorf("failed to check QR status: %w", err)
	}
	return &status, nil
}

// do performs one round trip against the gateway, attaching the bearer
// credential from the current configuration when a key is set.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cfg := c.store.Current(); cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logrus.Errorf("❌ [Gateway] %s %s failed: %v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Errorf("❌ [Gateway] %s %s rejected", method, path)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return nil
}
