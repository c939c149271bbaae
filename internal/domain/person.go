package domain

import (
	"strings"
	"time"
)

type PersonType string

const (
	PersonTypeResident PersonType = "residente"
	PersonTypeEmployee PersonType = "empleado"
	PersonTypeVisitor  PersonType = "visitante"
)

// Person is a registered identity with a stored reference photo.
type Person struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"nombre"`
	LastName       string     `json:"apellido"`
	Type           PersonType `json:"tipo"`
	ReferencePhoto string     `json:"foto_referencia,omitempty"`
	Active         bool       `json:"activo"`
	Notes          string     `json:"notas,omitempty"`
	RegisteredAt   time.Time  `json:"fecha_registro"`
}

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Camera is a registered video source.
type Camera struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Location  string    `json:"ubicacion,omitempty"`
	Type      string    `json:"tipo,omitempty"`
	StreamURL string    `json:"url_stream,omitempty"`
	Active    bool      `json:"activa"`
	CreatedAt time.Time `json:"fecha_registro"`
}
