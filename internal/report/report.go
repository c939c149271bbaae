// Package report turns fetched record sets into export artifacts:
// delimited text, domain CSVs and structured plain-text reports. All
// generators are pure; delivery belongs to the Sink collaborator.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

const (
	bannerRule  = "=========================================="
	sectionRule = "------------------------------------------"
	timeLayout  = "2006-01-02 15:04:05"
)

func header(b *strings.Builder, title string, now time.Time) {
	b.WriteString(bannerRule + "\n")
	b.WriteString(centered(title) + "\n")
	b.WriteString(bannerRule + "\n")
	fmt.Fprintf(b, "Generado: %s\n", now.Format(timeLayout))
}

func centered(s string) string {
	pad := (len(bannerRule) - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// DetectionsReport renders the detection history as a plain-text report.
// Deterministic given identical input and timestamp.
func DetectionsReport(detections []domain.Detection, now time.Time) string {
	var b strings.Builder
	header(&b, "REPORTE DE DETECCIONES", now)
	fmt.Fprintf(&b, "Total de detecciones: %d\n", len(detections))
	b.WriteString(sectionRule + "\n")

	for i, d := range detections {
		status := "CONOCIDO"
		if d.IsUnknown {
			status = "DESCONOCIDO"
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, d.FullName())
		fmt.Fprintf(&b, "   Fecha: %s\n", d.Timestamp.Format(timeLayout))
		fmt.Fprintf(&b, "   Camara: %s\n", d.CameraName)
		fmt.Fprintf(&b, "   Estado: %s\n", status)
		fmt.Fprintf(&b, "   Confianza: %.1f%%\n", d.Confidence*100)
	}

	return b.String()
}

// EventsReport renders the event list as a plain-text report.
func EventsReport(events []domain.Event, now time.Time) string {
	var b strings.Builder
	header(&b, "REPORTE DE EVENTOS", now)
	fmt.Fprintf(&b, "Total de eventos: %d\n", len(events))
	b.WriteString(sectionRule + "\n")

	for i, e := range events {
		status := "PENDIENTE"
		if e.Resolved {
			status = "RESUELTO"
		}
		fmt.Fprintf(&b, "\n%d. [%s] %s\n", i+1, strings.ToUpper(string(e.Severity)), e.Type)
		fmt.Fprintf(&b, "   Fecha: %s\n", e.Timestamp.Format(timeLayout))
		fmt.Fprintf(&b, "   Descripcion: %s\n", e.Description)
		fmt.Fprintf(&b, "   Camara: %s\n", e.CameraName)
		fmt.Fprintf(&b, "   Estado: %s\n", status)
	}

	return b.String()
}

// StatsReport renders the aggregate counters as a plain-text report.
func StatsReport(stats domain.StatsSnapshot, now time.Time) string {
	var b strings.Builder
	header(&b, "REPORTE DE ESTADISTICAS", now)
	b.WriteString(sectionRule + "\n")

	fmt.Fprintf(&b, "Personas registradas:  %d\n", stats.RegisteredPeople)
	fmt.Fprintf(&b, "Detecciones hoy:       %d\n", stats.DetectionsToday)
	fmt.Fprintf(&b, "Personas unicas hoy:   %d\n", stats.UniquePeopleToday)
	fmt.Fprintf(&b, "Desconocidos hoy:      %d\n", stats.UnknownsToday)
	fmt.Fprintf(&b, "Eventos pendientes:    %d\n", stats.PendingEvents)
	fmt.Fprintf(&b, "Eventos criticos:      %d\n", stats.CriticalEvents)
	fmt.Fprintf(&b, "Camaras activas:       %d\n", stats.ActiveCameras)

	return b.String()
}
