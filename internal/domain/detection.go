package domain

import (
	"strings"
	"time"
)

// Detection is a single recognition match (or non-match) from a camera.
// Read-only snapshot; never mutated after creation.
type Detection struct {
	ID           int64     `json:"id"`
	PersonID     *int64    `json:"persona_id"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	CameraName   string    `json:"camara_nombre"`
	Confidence   float64   `json:"confianza"`
	IsUnknown    bool      `json:"es_desconocido"`
	CaptureImage string    `json:"imagen_captura,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// FullName joins first and last name, tolerating a missing last name.
func (d Detection) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
