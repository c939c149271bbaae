// Package session implements the dashboard-session engine: the
// seen-event tracker, the single-slot notification channel and the poll
// scheduler that ties them to the backend client.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Options tune a dashboard session. Zero values pick the defaults.
type Options struct {
	PollInterval   time.Duration
	DismissAfter   time.Duration
	SeenCapacity   int
	DetectionLimit int
	Registry       prometheus.Registerer
}

// Session owns all per-session state: the seen set, the notification
// slot and the scheduler. Construct one at startup, Run it, Close it on
// teardown. Nothing here is ambient or global, so tests get fresh
// instances for free.
type Session struct {
	Tracker  *Tracker
	Notifier *Notifier
	Poller   *Poller
}

// New assembles a session over the given collaborators.
func New(fetcher Fetcher, display Display, view View, logger *slog.Logger, opts Options) *Session {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	tracker := NewTracker(opts.SeenCapacity)
	notifier := NewNotifier(display, opts.DismissAfter, logger)
	metrics := NewMetrics(reg)
	poller := NewPoller(fetcher, tracker, notifier, view, logger, metrics, opts.PollInterval, opts.DetectionLimit)

	return &Session{
		Tracker:  tracker,
		Notifier: notifier,
		Poller:   poller,
	}
}

// Run blocks driving the poll loop until ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	s.Poller.Run(ctx)
}

// Close cancels pending timers so none fire against a torn-down display.
func (s *Session) Close() {
	s.Notifier.Close()
}
