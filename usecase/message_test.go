package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/notification"
	"github.com/rozanhaisyam/wablas-api-bolt/infrastructure/notify"
)

type recordingGateway struct {
	sent    []gateway.SendMessagePayload
	sendErr error
}

func (g *recordingGateway) SendMessage(ctx context.Context, payload gateway.SendMessagePayload) (json.RawMessage, error) {
	g.sent = append(g.sent, payload)
	if g.sendErr != nil {
		return nil, g.sendErr
	}
	return json.RawMessage(`{"status":true}`), nil
}

func (g *recordingGateway) DeviceInfo(ctx context.Context) (*gateway.DeviceInfo, error) {
	return &gateway.DeviceInfo{Status: "connected"}, nil
}

func (g *recordingGateway) RequestQR(ctx context.Context) (*gateway.QRCodeResponse, error) {
	return nil, errors.New("not implemented")
}

func (g *recordingGateway) QRStatus(ctx context.Context, token string) (*gateway.QRStatusResponse, error) {
	return nil, errors.New("not implemented")
}

func TestSendNormalizesPhone(t *testing.T) {
	gw := &recordingGateway{}
	center := notify.NewCenter()
	service := NewMessageService(gw, center)

	ack, err := service.Send(context.Background(), gateway.SendMessagePayload{
		Phone:   "+628111",
		Message: "hi",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(ack) == 0 {
		t.Error("empty ack")
	}

	if len(gw.sent) != 1 {
		t.Fatalf("gateway saw %d sends, want exactly 1", len(gw.sent))
	}
	if gw.sent[0].Phone != "628111" {
		t.Errorf("phone = %q, want leading + stripped", gw.sent[0].Phone)
	}
	if gw.sent[0].IsGroup {
		t.Error("isGroup defaulted to true")
	}

	toasts := center.Drain()
	if len(toasts) != 1 || toasts[0].Type != notification.TypeSuccess {
		t.Errorf("expected one success toast, got %+v", toasts)
	}
}

func TestSendRejectsMissingFields(t *testing.T) {
	cases := map[string]gateway.SendMessagePayload{
		"empty phone":   {Message: "hi"},
		"empty message": {Phone: "628111"},
		"both empty":    {},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &recordingGateway{}
			service := NewMessageService(gw, notify.NewCenter())

			if _, err := service.Send(context.Background(), payload); err == nil {
				t.Fatal("expected validation error")
			}
			if len(gw.sent) != 0 {
				t.Errorf("invalid payload reached the gateway: %+v", gw.sent)
			}
		})
	}
}

func TestSendGatewayFailure(t *testing.T) {
	gw := &recordingGateway{sendErr: errors.New("gateway error (status 500): down")}
	center := notify.NewCenter()
	service := NewMessageService(gw, center)

	if _, err := service.Send(context.Background(), gateway.SendMessagePayload{Phone: "628111", Message: "hi"}); err == nil {
		t.Fatal("expected gateway error to propagate")
	}

	toasts := center.Drain()
	if len(toasts) != 1 || toasts[0].Type != notification.TypeError {
		t.Errorf("expected one error toast, got %+v", toasts)
	}
}
