package report

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

func TestDelimited_Empty(t *testing.T) {
	assert.Equal(t, "", Delimited([]domain.Person{}))
	assert.Equal(t, "", Delimited[domain.Person](nil))
}

func TestDelimited_HeaderFollowsFieldOrder(t *testing.T) {
	type row struct {
		ID    int64  `json:"id"`
		Name  string `json:"nombre"`
		Plain string
	}

	out := Delimited([]row{{ID: 1, Name: "Ana", Plain: "x"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "id,nombre,Plain", lines[0])
	assert.Equal(t, "1,Ana,x", lines[1])
}

func TestDelimited_EscapesEmbeddedDelimiters(t *testing.T) {
	type row struct {
		Name string `json:"nombre"`
		Note string `json:"nota"`
	}

	out := Delimited([]row{{Name: `Ana "La Jefa"`, Note: "uno, dos\ntres"}})

	// A quoting-aware parser must recover the original values.
	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Ana "La Jefa"`, records[1][0])
	assert.Equal(t, "uno, dos\ntres", records[1][1])
}

func TestEventsCSV_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	events := []domain.Event{
		{
			ID:          11,
			Type:        "persona_desconocida",
			Severity:    domain.SeverityCritical,
			Description: `Intruso en "zona restringida", acceso norte`,
			CameraName:  "Camara 2, Patio",
			Resolved:    false,
			Timestamp:   ts,
		},
		{
			ID:          12,
			Type:        "acceso_autorizado",
			Severity:    domain.SeverityLow,
			Description: "Residente identificado",
			CameraName:  "Entrada",
			Resolved:    true,
			Timestamp:   ts.Add(time.Minute),
		},
	}

	out := EventsCSV(events)

	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "tipo", "severidad", "descripcion", "timestamp", "camara", "resuelto"}, records[0])

	for i, e := range events {
		row := records[i+1]
		assert.Equal(t, strconv.FormatInt(e.ID, 10), row[0])
		assert.Equal(t, e.Type, row[1])
		assert.Equal(t, string(e.Severity), row[2])
		assert.Equal(t, e.Description, row[3])
		assert.Equal(t, e.Timestamp.Format(time.RFC3339), row[4])
		assert.Equal(t, e.CameraName, row[5])
	}
	assert.Equal(t, "false", records[1][6])
	assert.Equal(t, "true", records[2][6])
}

func TestEventsCSV_EmptyStillHasHeader(t *testing.T) {
	out := EventsCSV(nil)
	assert.Equal(t, "id,tipo,severidad,descripcion,timestamp,camara,resuelto\n", out)
}

func TestDetectionsCSV(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	out := DetectionsCSV([]domain.Detection{
		{ID: 1, FirstName: "Ana", LastName: "Lopez", CameraName: "Entrada", Confidence: 0.873, IsUnknown: false, Timestamp: ts},
	})

	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"1", "Ana", "Lopez", "Entrada", "0.873", "false", "2024-01-01T10:00:00Z"}, records[1])
}

func TestPeopleCSV(t *testing.T) {
	ts := time.Date(2023, 12, 24, 9, 0, 0, 0, time.UTC)
	out := PeopleCSV([]domain.Person{
		{ID: 4, FirstName: "Juan", LastName: "Perez", Type: domain.PersonTypeEmployee, Active: true, RegisteredAt: ts},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,nombre,apellido,tipo,activo,fecha_registro", lines[0])
	assert.Equal(t, "4,Juan,Perez,empleado,true,2023-12-24T09:00:00Z", lines[1])
}
