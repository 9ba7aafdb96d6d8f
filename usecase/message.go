package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/notification"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MessageService submits outbound messages through the gateway.
type MessageService struct {
	gateway gateway.IGatewayClient
	notify  notification.INotificationCenter
}

func NewMessageService(gw gateway.IGatewayClient, notify notification.INotificationCenter) *MessageService {
	return &MessageService{gateway: gw, notify: notify}
}

// Send validates and normalizes the payload, then issues exactly one
// round trip to the gateway.
func (s *MessageService) Send(ctx context.Context, payload gateway.SendMessagePayload) (json.RawMessage, error) {
	if err := utils.ValidateStruct(payload); err != nil {
		return nil, fmt.Errorf("invalid message request: %w", err)
	}

	payload.Phone = utils.FormatPhoneNumber(payload.Phone)

	ack, err := s.gateway.SendMessage(ctx, payload)
	if err != nil {
		s.notify.Push(notification.TypeError, "Failed to send message")
		return nil, err
	}

	s.notify.Push(notification.TypeSuccess, "Message sent successfully")
	logrus.Infof("📨 [Message] sent to %s", payload.Phone)
	return ack, nil
}
