package domain

import "time"

// StatsSnapshot is a point-in-time aggregate view for the dashboard
// counters. It has no identity or lifecycle of its own.
type StatsSnapshot struct {
	RegisteredPeople  int       `json:"personas_registradas"`
	DetectionsToday   int       `json:"detecciones_hoy"`
	UniquePeopleToday int       `json:"personas_unicas_hoy"`
	UnknownsToday     int       `json:"desconocidos_hoy"`
	PendingEvents     int       `json:"eventos_pendientes"`
	CriticalEvents    int       `json:"eventos_criticos"`
	ActiveCameras     int       `json:"camaras_activas"`
	UpdatedAt         time.Time `json:"ultima_actualizacion"`
}

// ActivityDay aggregates one day's detections for the activity timeline.
type ActivityDay struct {
	Date    string `json:"fecha"`
	Known   int    `json:"conocidos"`
	Unknown int    `json:"desconocidos"`
	Total   int    `json:"total"`
}

// SystemConfig holds the tunable runtime settings stored in the
// configuracion table as key/value pairs.
type SystemConfig struct {
	ConfidenceThreshold float64 `json:"umbral_confianza"`
	AlertsEnabled       bool    `json:"activar_alertas"`
	SaveFrames          bool    `json:"guardar_frames"`
	ImageRetentionDays  int     `json:"dias_retencion_imagenes"`
}
