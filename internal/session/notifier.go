package session

import (
	"log/slog"
	"sync"
	"time"
)

// NotificationKind distinguishes alert toasts from action feedback.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient user-facing message. It is presented, never
// stored.
type Notification struct {
	Title   string
	Message string
	Kind    NotificationKind
}

// Display is the UI collaborator that owns the single visible
// notification slot.
type Display interface {
	Show(n Notification)
	Clear()
}

// DefaultDismissAfter is how long a notification stays visible.
const DefaultDismissAfter = 5 * time.Second

// Notifier serializes notification requests onto the single display
// slot. The newest request pre-empts whatever is visible and re-arms the
// auto-dismiss timer from the time of that call; queue depth never
// exceeds one.
type Notifier struct {
	display Display
	after   time.Duration
	logger  *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewNotifier creates a notifier over display. A non-positive dismiss
// duration falls back to DefaultDismissAfter.
func NewNotifier(display Display, after time.Duration, logger *slog.Logger) *Notifier {
	if after <= 0 {
		after = DefaultDismissAfter
	}
	return &Notifier{
		display: display,
		after:   after,
		logger:  logger,
	}
}

// Present shows n immediately, replacing any visible notification, and
// schedules auto-dismiss relative to this call.
func (n *Notifier) Present(notif Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.display.Show(notif)
	n.logger.Debug("notification presented",
		"title", notif.Title,
		"kind", notif.Kind,
	)

	n.timer = time.AfterFunc(n.after, n.dismiss)
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.display.Clear()
	n.timer = nil
}

// Close cancels any pending auto-dismiss. Used on session teardown so no
// timer fires against a torn-down display.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
