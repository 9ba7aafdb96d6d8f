package notification

import (
	"time"
)

// Notification represents a one-shot toast surfaced to the user. It is
// delivered at most once: draining removes it from the center.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // info, error, success
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	TypeInfo    = "info"
	TypeError   = "error"
	TypeSuccess = "success"
)

// INotificationCenter collects one-shot notifications for the UI.
type INotificationCenter interface {
	Push(notifType string, message string)
	Drain() []Notification
}
