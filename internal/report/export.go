package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// Export artifact names, matching what the original dashboard offers for
// download.
const (
	FilePeopleCSV        = "personas_registradas.csv"
	FileDetectionsCSV    = "detecciones.csv"
	FileEventsCSV        = "eventos.csv"
	FileDetectionsReport = "reporte_detecciones.txt"
	FileEventsReport     = "reporte_eventos.txt"
	FileStatsReport      = "reporte_estadisticas.txt"
)

// Sink delivers a finished artifact (download, save to disk). It is the
// external collaborator on the delivery side.
type Sink interface {
	Save(name string, data []byte) error
}

// Fetcher is the slice of the backend client the exporter needs. Exports
// always work from a fresh fetch, never from cached poll state.
type Fetcher interface {
	Events(ctx context.Context, limit int) ([]domain.Event, error)
	Detections(ctx context.Context, limit int) ([]domain.Detection, error)
	People(ctx context.Context) ([]domain.Person, error)
	Stats(ctx context.Context) (*domain.StatsSnapshot, error)
}

// Exporter fetches current data and hands rendered artifacts to the sink.
type Exporter struct {
	fetcher Fetcher
	sink    Sink
	logger  *slog.Logger
	now     func() time.Time
}

func NewExporter(fetcher Fetcher, sink Sink, logger *slog.Logger) *Exporter {
	return &Exporter{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
		now:     time.Now,
	}
}

// ExportEventsCSV fetches current events and saves eventos.csv.
func (e *Exporter) ExportEventsCSV(ctx context.Context) error {
	events, err := e.fetcher.Events(ctx, 0)
	if err != nil {
		return fmt.Errorf("export %s: %w", FileEventsCSV, err)
	}
	return e.save(FileEventsCSV, EventsCSV(events))
}

// ExportDetectionsCSV fetches the detection history and saves
// detecciones.csv.
func (e *Exporter) ExportDetectionsCSV(ctx context.Context, limit int) error {
	detections, err := e.fetcher.Detections(ctx, limit)
	if err != nil {
		return fmt.Errorf("export %s: %w", FileDetectionsCSV, err)
	}
	return e.save(FileDetectionsCSV, DetectionsCSV(detections))
}

// ExportPeopleCSV fetches registered people and saves
// personas_registradas.csv.
func (e *Exporter) ExportPeopleCSV(ctx context.Context) error {
	people, err := e.fetcher.People(ctx)
	if err != nil {
		return fmt.Errorf("export %s: %w", FilePeopleCSV, err)
	}
	return e.save(FilePeopleCSV, PeopleCSV(people))
}

// ExportDetectionsReport saves reporte_detecciones.txt.
func (e *Exporter) ExportDetectionsReport(ctx context.Context, limit int) error {
	detections, err := e.fetcher.Detections(ctx, limit)
	if err != nil {
		return fmt.Errorf("export %s: %w", FileDetectionsReport, err)
	}
	return e.save(FileDetectionsReport, DetectionsReport(detections, e.now()))
}

// ExportEventsReport saves reporte_eventos.txt.
func (e *Exporter) ExportEventsReport(ctx context.Context) error {
	events, err := e.fetcher.Events(ctx, 0)
	if err != nil {
		return fmt.Errorf("export %s: %w", FileEventsReport, err)
	}
	return e.save(FileEventsReport, EventsReport(events, e.now()))
}

// ExportStatsReport saves reporte_estadisticas.txt.
func (e *Exporter) ExportStatsReport(ctx context.Context) error {
	stats, err := e.fetcher.Stats(ctx)
	if err != nil {
		return fmt.Errorf("export %s: %w", FileStatsReport, err)
	}
	return e.save(FileStatsReport, StatsReport(*stats, e.now()))
}

// ExportAll produces every artifact, stopping at the first failure.
func (e *Exporter) ExportAll(ctx context.Context, detectionLimit int) error {
	steps := []func() error{
		func() error { return e.ExportPeopleCSV(ctx) },
		func() error { return e.ExportDetectionsCSV(ctx, detectionLimit) },
		func() error { return e.ExportEventsCSV(ctx) },
		func() error { return e.ExportDetectionsReport(ctx, detectionLimit) },
		func() error { return e.ExportEventsReport(ctx) },
		func() error { return e.ExportStatsReport(ctx) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) save(name, content string) error {
	if err := e.sink.Save(name, []byte(content)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	e.logger.Info("artifact exported", "file", name, "bytes", len(content))
	return nil
}
