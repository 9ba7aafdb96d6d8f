package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/notification"
	"github.com/sirupsen/logrus"
)

// Center is an in-memory one-shot notification buffer. Workflows push
// toasts into it; the UI drains them exactly once.
type Center struct {
	mu      sync.Mutex
	pending []notification.Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Push records a notification for the next drain.
func (c *Center) Push(notifType string, message string) {
	notif := notification.Notification{
		ID:        uuid.NewString(),
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.pending = append(c.pending, notif)
	c.mu.Unlock()

	logrus.Debugf("🔔 [Notify] %s: %s", notifType, message)
}

// Drain returns all pending notifications and removes them from the
// center, so each one is delivered at most once.
func (c *Center) Drain() []notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := c.pending
	c.pending = nil
	return drained
}
