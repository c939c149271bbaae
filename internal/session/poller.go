package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// alertTitle is the fixed title used for every event notification.
const alertTitle = "Nueva alerta"

// DefaultPollInterval is the fixed re-arm interval between cycles.
const DefaultPollInterval = 30 * time.Second

// Fetcher is the slice of the backend client the poll loop needs.
type Fetcher interface {
	Events(ctx context.Context, limit int) ([]domain.Event, error)
	Detections(ctx context.Context, limit int) ([]domain.Detection, error)
	Stats(ctx context.Context) (*domain.StatsSnapshot, error)
}

// View is the rendering collaborator. Refreshes are unconditional
// re-renders, not diffed; when cycles overlap, the last response to
// resolve wins.
type View interface {
	RenderStats(stats *domain.StatsSnapshot)
	RenderDetections(detections []domain.Detection)
	RenderEvents(events []domain.Event)
}

// Poller drives the fixed-interval fetch-and-diff cycle. Every step is
// best-effort: a failed fetch is logged and skipped without touching the
// schedule or the other steps.
type Poller struct {
	fetcher  Fetcher
	tracker  *Tracker
	notifier *Notifier
	view     View
	logger   *slog.Logger
	metrics  *Metrics
	interval time.Duration
	limit    int
}

// NewPoller wires the poll loop. A non-positive interval falls back to
// DefaultPollInterval; limit bounds the detection refresh fetch.
func NewPoller(fetcher Fetcher, tracker *Tracker, notifier *Notifier, view View, logger *slog.Logger, metrics *Metrics, interval time.Duration, limit int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetcher:  fetcher,
		tracker:  tracker,
		notifier: notifier,
		view:     view,
		logger:   logger,
		metrics:  metrics,
		interval: interval,
		limit:    limit,
	}
}

// Run performs an immediate cycle, then re-arms every interval until ctx
// is cancelled. Ticks launch their cycle without mutual exclusion: a
// slow fetch stalls its own cycle's rendering, never the schedule. The
// tracker's idempotent MarkSeen keeps overlapping cycles from
// re-notifying.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("poll scheduler started", "interval", p.interval)

	p.Cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poll scheduler stopped")
			return
		case <-ticker.C:
			go p.Cycle(ctx)
		}
	}
}

// Cycle executes one fetch/diff/render pass: event diffing completes,
// including all MarkSeen calls, before the stats and detection refreshes
// are issued.
func (p *Poller) Cycle(ctx context.Context) {
	p.metrics.Cycles.Inc()

	events, err := p.fetcher.Events(ctx, 0)
	if err != nil {
		p.metrics.FetchErrors.WithLabelValues("eventos").Inc()
		p.logger.Warn("event fetch failed", "error", err)
	} else {
		p.notifyNew(events)
		p.view.RenderEvents(events)
	}

	stats, err := p.fetcher.Stats(ctx)
	if err != nil {
		p.metrics.FetchErrors.WithLabelValues("stats").Inc()
		p.logger.Warn("stats fetch failed", "error", err)
	} else {
		p.view.RenderStats(stats)
	}

	detections, err := p.fetcher.Detections(ctx, p.limit)
	if err != nil {
		p.metrics.FetchErrors.WithLabelValues("detecciones").Inc()
		p.logger.Warn("detection fetch failed", "error", err)
	} else {
		p.view.RenderDetections(detections)
	}
}

// notifyNew surfaces every not-yet-seen event in the order returned and
// marks it seen. Ids returned again in later cycles are never
// re-notified.
func (p *Poller) notifyNew(events []domain.Event) {
	for _, e := range events {
		if !p.tracker.IsNew(e.ID) {
			continue
		}

		p.notifier.Present(Notification{
			Title:   alertTitle,
			Message: fmt.Sprintf("%s: %s", e.Type, e.Description),
			Kind:    NotificationError,
		})
		p.tracker.MarkSeen(e.ID)
		p.metrics.Notifications.Inc()

		p.logger.Info("new event surfaced",
			"event_id", e.ID,
			"type", e.Type,
			"severity", e.Severity,
		)
	}
}
