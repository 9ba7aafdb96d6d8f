package link

import (
	"context"
	"errors"
)

// State is the QR-link workflow state for the current attempt.
type State string

const (
	StateIdle       State = "idle"       // no attempt, or last generate failed
	StateGenerating State = "generating" // QR request in flight
	StatePending    State = "pending"    // QR obtained, awaiting device scan
	StateConnected  State = "connected"  // terminal: device linked
	StateFailed     State = "failed"     // terminal: gateway reported an error
)

// Terminal reports whether the state ends the attempt for its token.
func (s State) Terminal() bool {
	return s == StateConnected || s == StateFailed
}

// ErrLinkInProgress is returned when a generate is requested while an
// attempt is already generating or pending.
var ErrLinkInProgress = errors.New("a linking attempt is already in progress")

// ErrNoActiveLink is returned when an operation needs a QR token but no
// attempt is active.
var ErrNoActiveLink = errors.New("no active linking attempt")

// Snapshot is the observable workflow state rendered by the UI.
type Snapshot struct {
	State   State  `json:"state"`
	QR      string `json:"qr,omitempty"`
	Token   string `json:"token,omitempty"`
	ScanURL string `json:"scan_url,omitempty"`
	Message string `json:"message,omitempty"`
}

// ILinkUsecase drives the QR-link workflow.
type ILinkUsecase interface {
	Generate(ctx context.Context) (Snapshot, error)
	Snapshot() Snapshot
	Reset()
}
