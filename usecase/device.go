package usecase

import (
	"context"

	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
)

// DeviceService reads the device connection snapshot from the gateway.
// The result is never cached; the dashboard fetches it on each load.
type DeviceService struct {
	gateway gateway.IGatewayClient
}

func NewDeviceService(gw gateway.IGatewayClient) *DeviceService {
	return &DeviceService{gateway: gw}
}

func (s *DeviceService) Info(ctx context.Context) (*gateway.DeviceInfo, error) {
	return s.gateway.DeviceInfo(ctx)
}
