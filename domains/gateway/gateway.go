package gateway

import (
	"context"
	"encoding/json"
)

// SendMessagePayload is the outbound message request, constructed per
// submission and never stored.
type SendMessagePayload struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
	IsGroup bool   `json:"isGroup,omitempty"`
}

// DeviceInfo is a read-only snapshot of the linked device.
type DeviceInfo struct {
	Status string `json:"status"`
	QRCode string `json:"qrCode"`
	Phone  string `json:"phone"`
}

// QRCodeData carries the scannable payload and the opaque session token
// for one QR attempt. Both fields are required; a response missing either
// is rejected before it reaches the linking workflow.
type QRCodeData struct {
	QR    string `json:"qr"`
	Token string `json:"token"`
}

// QRCodeResponse is the gateway's answer to a QR generation request.
type QRCodeResponse struct {
	Status bool       `json:"status"`
	Data   QRCodeData `json:"data"`
}

// QRStatus is the linking status reported by the gateway.
type QRStatus string

const (
	QRStatusPending   QRStatus = "pending"
	QRStatusConnected QRStatus = "connected"
	QRStatusError     QRStatus = "error"
)

// Terminal reports whether no further status change can follow.
func (s QRStatus) Terminal() bool {
	return s == QRStatusConnected || s == QRStatusError
}

// QRStatusResponse is one poll result for a QR token.
type QRStatusResponse struct {
	Status  QRStatus `json:"status"`
	Message string   `json:"message,omitempty"`
}

// IGatewayClient defines the typed operations against the Wablas REST API.
// Each call performs exactly one network round trip.
type IGatewayClient interface {
	SendMessage(ctx context.Context, payload SendMessagePayload) (json.RawMessage, error)
	DeviceInfo(ctx context.Context) (*DeviceInfo, error)
	RequestQR(ctx context.Context) (*QRCodeResponse, error)
	QRStatus(ctx context.Context, token string) (*QRStatusResponse, error)
}
