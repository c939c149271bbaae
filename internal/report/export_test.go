package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type stubFetcher struct {
	events    []domain.Event
	eventsErr error
}

func (f *stubFetcher) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	return f.events, f.eventsErr
}

func (f *stubFetcher) Detections(ctx context.Context, limit int) ([]domain.Detection, error) {
	return []domain.Detection{{ID: 1, FirstName: "Ana"}}, nil
}

func (f *stubFetcher) People(ctx context.Context) ([]domain.Person, error) {
	return []domain.Person{{ID: 1, FirstName: "Ana"}}, nil
}

func (f *stubFetcher) Stats(ctx context.Context) (*domain.StatsSnapshot, error) {
	return &domain.StatsSnapshot{RegisteredPeople: 1}, nil
}

type memorySink struct {
	saved map[string][]byte
	err   error
}

func (s *memorySink) Save(name string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[name] = data
	return nil
}

func newTestExporter(fetcher Fetcher, sink Sink) *Exporter {
	e := NewExporter(fetcher, sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.now = func() time.Time { return reportTime }
	return e
}

func TestExporter_ExportAll(t *testing.T) {
	fetcher := &stubFetcher{events: []domain.Event{{ID: 1, Type: "intrusion"}}}
	sink := &memorySink{}
	e := newTestExporter(fetcher, sink)

	require.NoError(t, e.ExportAll(context.Background(), 50))

	for _, name := range []string{
		FilePeopleCSV, FileDetectionsCSV, FileEventsCSV,
		FileDetectionsReport, FileEventsReport, FileStatsReport,
	} {
		assert.Contains(t, sink.saved, name)
		assert.NotEmpty(t, sink.saved[name])
	}
}

func TestExporter_FetchFailurePropagates(t *testing.T) {
	fetcher := &stubFetcher{eventsErr: errors.New("backend unreachable")}
	sink := &memorySink{}
	e := newTestExporter(fetcher, sink)

	err := e.ExportEventsCSV(context.Background())
	require.Error(t, err)
	assert.NotContains(t, sink.saved, FileEventsCSV, "nothing saved on failed fetch")
}

func TestExporter_SinkFailurePropagates(t *testing.T) {
	fetcher := &stubFetcher{}
	sink := &memorySink{err: errors.New("disk full")}
	e := newTestExporter(fetcher, sink)

	err := e.ExportStatsReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileStatsReport)
}
