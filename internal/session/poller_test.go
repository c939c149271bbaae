package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// scriptedFetcher returns one canned event list per cycle, in order.
type scriptedFetcher struct {
	mu         sync.Mutex
	eventLists [][]domain.Event
	call       int
	eventsErr  error
	statsErr   error
	detErr     error
}

func (f *scriptedFetcher) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.call >= len(f.eventLists) {
		return nil, nil
	}
	events := f.eventLists[f.call]
	f.call++
	return events, nil
}

func (f *scriptedFetcher) Stats(ctx context.Context) (*domain.StatsSnapshot, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &domain.StatsSnapshot{PendingEvents: 1}, nil
}

func (f *scriptedFetcher) Detections(ctx context.Context, limit int) ([]domain.Detection, error) {
	if f.detErr != nil {
		return nil, f.detErr
	}
	return []domain.Detection{}, nil
}

// countingView records which refreshes landed.
type countingView struct {
	mu         sync.Mutex
	stats      int
	detections int
	events     int
}

func (v *countingView) RenderStats(*domain.StatsSnapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats++
}

func (v *countingView) RenderDetections([]domain.Detection) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detections++
}

func (v *countingView) RenderEvents([]domain.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events++
}

func newTestSession(fetcher Fetcher, display Display, view View) *Session {
	return New(fetcher, display, view, discardLogger(), Options{
		PollInterval: time.Hour, // cycles driven manually in tests
		DismissAfter: time.Hour,
		Registry:     prometheus.NewRegistry(),
	})
}

func event(id int64) domain.Event {
	return domain.Event{
		ID:          id,
		Type:        "persona_desconocida",
		Severity:    domain.SeverityHigh,
		Description: "Persona desconocida detectada",
	}
}

func TestPoller_NotifiesOnlyUnseenEvents(t *testing.T) {
	fetcher := &scriptedFetcher{
		eventLists: [][]domain.Event{
			{event(1)},
			{event(1), event(2)}, // superset of cycle 1
		},
	}
	display := &fakeDisplay{}
	view := &countingView{}
	s := newTestSession(fetcher, display, view)
	defer s.Close()

	s.Poller.Cycle(context.Background())
	require.Equal(t, 1, display.showCount(), "exactly one notification after cycle 1")

	s.Poller.Cycle(context.Background())
	require.Equal(t, 2, display.showCount(), "only the new event notifies in cycle 2")

	assert.Equal(t, 2, s.Tracker.Count())
	assert.False(t, s.Tracker.IsNew(1))
	assert.False(t, s.Tracker.IsNew(2))
}

func TestPoller_DuplicateIdsAcrossCyclesNotifyOnce(t *testing.T) {
	fetcher := &scriptedFetcher{
		eventLists: [][]domain.Event{
			{event(5), event(6)},
			{event(6), event(5)}, // pagination duplicate, reordered
			{event(5), event(6), event(7)},
		},
	}
	display := &fakeDisplay{}
	s := newTestSession(fetcher, display, &countingView{})
	defer s.Close()

	for i := 0; i < 3; i++ {
		s.Poller.Cycle(context.Background())
	}

	// 3 distinct ids across all cycles => 3 notifications total.
	assert.Equal(t, 3, display.showCount())
	assert.Equal(t, 3, s.Tracker.Count())
}

func TestPoller_NotificationContent(t *testing.T) {
	fetcher := &scriptedFetcher{eventLists: [][]domain.Event{{event(9)}}}
	display := &fakeDisplay{}
	s := newTestSession(fetcher, display, &countingView{})
	defer s.Close()

	s.Poller.Cycle(context.Background())

	require.Len(t, display.shows, 1)
	n := display.shows[0]
	assert.Equal(t, "Nueva alerta", n.Title)
	assert.Equal(t, "persona_desconocida: Persona desconocida detectada", n.Message)
	assert.Equal(t, NotificationError, n.Kind)
}

func TestPoller_EventFetchFailureDoesNotBlockRefresh(t *testing.T) {
	fetcher := &scriptedFetcher{eventsErr: errors.New("backend unreachable")}
	display := &fakeDisplay{}
	view := &countingView{}
	s := newTestSession(fetcher, display, view)
	defer s.Close()

	s.Poller.Cycle(context.Background())

	assert.Equal(t, 0, display.showCount(), "background failures are not user-notified")
	assert.Equal(t, 0, view.events)
	assert.Equal(t, 1, view.stats, "stats refresh runs despite event failure")
	assert.Equal(t, 1, view.detections, "detection refresh runs despite event failure")
}

func TestPoller_BackgroundRefreshFailuresAreSilent(t *testing.T) {
	fetcher := &scriptedFetcher{
		eventLists: [][]domain.Event{{event(1)}},
		statsErr:   errors.New("stats down"),
		detErr:     errors.New("detections down"),
	}
	display := &fakeDisplay{}
	view := &countingView{}
	s := newTestSession(fetcher, display, view)
	defer s.Close()

	s.Poller.Cycle(context.Background())

	assert.Equal(t, 1, display.showCount(), "event notification still surfaces")
	assert.Equal(t, 1, view.events)
	assert.Equal(t, 0, view.stats)
	assert.Equal(t, 0, view.detections)
}

func TestPoller_RunImmediatePassThenStops(t *testing.T) {
	fetcher := &scriptedFetcher{eventLists: [][]domain.Event{{event(1)}}}
	display := &fakeDisplay{}
	view := &countingView{}
	s := newTestSession(fetcher, display, view)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		view.mu.Lock()
		defer view.mu.Unlock()
		return view.stats >= 1
	}, time.Second, 10*time.Millisecond, "startup performs an immediate pass")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
