package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saturnino-fabrica-de-software/centinela/internal/client"
	"github.com/saturnino-fabrica-de-software/centinela/internal/config"
	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/report"
	"github.com/saturnino-fabrica-de-software/centinela/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	exportOnly := flag.Bool("export", false, "Export all reports and exit")
	flag.Parse()

	cfg, err := config.LoadDashboard()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	api := client.NewClient(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: 30 * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *exportOnly {
		sink := &dirSink{dir: cfg.ExportDir}
		exporter := report.NewExporter(api, sink, logger)
		if err := exporter.ExportAll(ctx, cfg.FetchLimit); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		logger.Info("exports written", slog.String("dir", cfg.ExportDir))
		return nil
	}

	logger.Info("starting Centinela dashboard session",
		slog.String("api", cfg.APIBaseURL),
		slog.Duration("poll_interval", cfg.PollInterval),
	)

	registry := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics server failed", slog.Any("error", err))
			}
		}()
	}

	sess := session.New(api, &logDisplay{logger: logger}, &logView{logger: logger}, logger, session.Options{
		PollInterval:   cfg.PollInterval,
		DetectionLimit: cfg.FetchLimit,
		Registry:       registry,
	})
	defer sess.Close()

	sess.Run(ctx)

	logger.Info("dashboard session stopped")
	return nil
}

// logDisplay surfaces notifications on the structured log. A graphical
// front end would swap this for a toast widget.
type logDisplay struct {
	logger *slog.Logger
}

func (d *logDisplay) Show(n session.Notification) {
	d.logger.Info("notification",
		slog.String("title", n.Title),
		slog.String("message", n.Message),
		slog.String("kind", string(n.Kind)),
	)
}

func (d *logDisplay) Clear() {
	d.logger.Debug("notification dismissed")
}

// logView records refresh summaries instead of painting panels.
type logView struct {
	logger *slog.Logger
}

func (v *logView) RenderStats(stats *domain.StatsSnapshot) {
	v.logger.Debug("stats refreshed",
		slog.Int("detecciones_hoy", stats.DetectionsToday),
		slog.Int("eventos_pendientes", stats.PendingEvents),
	)
}

func (v *logView) RenderDetections(detections []domain.Detection) {
	v.logger.Debug("detections refreshed", slog.Int("count", len(detections)))
}

func (v *logView) RenderEvents(events []domain.Event) {
	v.logger.Debug("events refreshed", slog.Int("count", len(events)))
}

// dirSink writes artifacts into the export directory.
type dirSink struct {
	dir string
}

func (s *dirSink) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}
