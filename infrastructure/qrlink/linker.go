package qrlink

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rozanhaisyam/wablas-api-bolt/config"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/gateway"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/link"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/notification"
	"github.com/sirupsen/logrus"
)

// Linker drives the QR-link workflow: it requests a QR code on demand,
// polls the gateway for the scan result, and stops on a terminal status.
// Exactly one attempt is tracked at a time; a new generate supersedes the
// previous token via a generation counter, so a late poll result for an
// old token can never regress the current state.
type Linker struct {
	gateway  gateway.IGatewayClient
	store    *config.GatewayStore
	notify   notification.INotificationCenter
	interval time.Duration
	timeout  time.Duration

	mu         sync.Mutex
	state      link.State
	qr         string
	token      string
	message    string
	generation uint64
	cancel     context.CancelFunc
}

// NewLinker creates a linker. Zero interval and timeout fall back to the
// 3-second poll cadence and a 5-minute attempt bound.
func NewLinker(gw gateway.IGatewayClient, store *config.GatewayStore, notify notification.INotificationCenter, interval, timeout time.Duration) *Linker {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Linker{
		gateway:  gw,
		store:    store,
		notify:   notify,
		interval: interval,
		timeout:  timeout,
		state:    link.StateIdle,
	}
}

// Generate starts a new linking attempt. It is rejected while a QR request
// is in flight or a previous attempt is still awaiting a scan.
func (l *Linker) Generate(ctx context.Context) (link.Snapshot, error) {
	l.mu.Lock()
	if l.state == link.StateGenerating || l.state == link.StatePending {
		snap := l.snapshotLocked()
		l.mu.Unlock()
		return snap, link.ErrLinkInProgress
	}

	l.generation++
	gen := l.generation
	l.cancelLocked()
	l.state = link.StateGenerating
	l.qr, l.token, l.message = "", "", ""
	l.mu.Unlock()

	resp, err := l.gateway.RequestQR(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		// superseded by a reset while the request was in flight
		return l.snapshotLocked(), nil
	}

	if err != nil {
		l.state = link.StateIdle
		l.message = err.Error()
		l.notify.Push(notification.TypeError, err.Error())
		logrus.Errorf("❌ [Link] QR generation failed: %v", err)
		return l.snapshotLocked(), err
	}

	l.state = link.StatePending
	l.qr = resp.Data.QR
	l.token = resp.Data.Token
	l.notify.Push(notification.TypeSuccess, "QR Code generated successfully")
	logrus.Infof("🔗 [Link] QR code obtained, awaiting scan (token %s)", resp.Data.Token)

	pollCtx, cancel := context.WithTimeout(context.Background(), l.timeout)
	l.cancel = cancel
	go l.poll(pollCtx, gen, resp.Data.Token)

	return l.snapshotLocked(), nil
}

// Snapshot returns the observable workflow state.
func (l *Linker) Snapshot() link.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Reset discards the current attempt and stops its poller. Used on logout.
func (l *Linker) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.cancelLocked()
	l.state = link.StateIdle
	l.qr, l.token, l.message = "", "", ""
}

func (l *Linker) snapshotLocked() link.Snapshot {
	snap := link.Snapshot{
		State:   l.state,
		QR:      l.qr,
		Token:   l.token,
		Message: l.message,
	}
	if l.token != "" {
		snap.ScanURL = l.store.ScanURL(l.token)
	}
	return snap
}

func (l *Linker) cancelLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// poll checks the QR status for one attempt until a terminal result. The
// timer is re-armed only after the previous poll completes, so polls for a
// token are strictly sequential and responses cannot reorder.
func (l *Linker) poll(ctx context.Context, gen uint64, token string) {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				l.expire(gen)
			}
			return
		case <-timer.C:
		}

		status, err := l.gateway.QRStatus(ctx, token)
		if err != nil {
			if ctx.Err() != nil {
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					l.expire(gen)
				}
				return
			}
			// transient poll failure keeps the attempt alive
			logrus.Warnf("⚠️  [Link] status poll failed: %v", err)
			timer.Reset(l.interval)
			continue
		}

		if !l.apply(gen, status) {
			return
		}
		timer.Reset(l.interval)
	}
}

// apply folds one poll result into the workflow. It reports whether polling
// should continue. Results from a superseded generation, or arriving after
// a terminal state, are dropped.
func (l *Linker) apply(gen uint64, status *gateway.QRStatusResponse) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation || l.state != link.StatePending {
		return false
	}

	switch status.Status {
	case gateway.QRStatusConnected:
		l.state = link.StateConnected
		l.message = status.Message
		l.cancelLocked()
		l.notify.Push(notification.TypeSuccess, "WhatsApp connected successfully!")
		logrus.Info("✅ [Link] device connected")
		return false
	case gateway.QRStatusError:
		msg := status.Message
		if msg == "" {
			msg = "Failed to connect WhatsApp"
		}
		l.state = link.StateFailed
		l.message = msg
		l.cancelLocked()
		l.notify.Push(notification.TypeError, msg)
		logrus.Errorf("❌ [Link] linking failed: %s", msg)
		return false
	default:
		// pending, or a status we do not recognize: keep waiting
		return true
	}
}

// expire marks a still-pending attempt as failed after the attempt bound.
func (l *Linker) expire(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation || l.state != link.StatePending {
		return
	}

	l.state = link.StateFailed
	l.message = "Linking attempt timed out"
	l.cancelLocked()
	l.notify.Push(notification.TypeError, l.message)
	logrus.Warn("⚠️  [Link] linking attempt timed out")
}
