package domain

import "time"

type Severity string

const (
	SeverityLow      Severity = "baja"
	SeverityMedium   Severity = "media"
	SeverityHigh     Severity = "alta"
	SeverityCritical Severity = "critica"
)

// Valid reports whether the severity is one of the four known levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Event is an alert-worthy occurrence detected by the backend. Events are
// immutable once created except for the resolution fields, which transition
// exactly once via Resolve.
type Event struct {
	ID              int64      `json:"id"`
	Type            string     `json:"tipo"`
	Severity        Severity   `json:"severidad"`
	Description     string     `json:"descripcion"`
	DetectionID     *int64     `json:"deteccion_id,omitempty"`
	CameraID        int64      `json:"camara_id,omitempty"`
	CameraName      string     `json:"camara_nombre"`
	Resolved        bool       `json:"resuelto"`
	ResolutionNotes string     `json:"notas_resolucion,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
	ResolvedAt      *time.Time `json:"fecha_resolucion,omitempty"`
}
