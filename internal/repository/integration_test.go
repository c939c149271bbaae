//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/saturnino-fabrica-de-software/centinela/internal/database"
	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

func setupIntegrationTest(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "centinela_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://test:test@%s:%s/centinela_test?sslmode=disable", host, port.Port())

	sqlDB, err := database.OpenSQL(connStr)
	require.NoError(t, err)

	migrator, err := database.NewMigrator(sqlDB, "centinela_test")
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	db, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupIntegrationTest(t)
	defer cleanup()

	ctx := context.Background()

	people := NewPersonRepository(db)
	cameras := NewCameraRepository(db)
	detections := NewDetectionRepository(db)
	events := NewEventRepository(db)
	config := NewConfigRepository(db)
	stats := NewStatsRepository(db)

	// Seed a camera directly; there is no write API for cameras.
	var cameraID int64
	err := db.QueryRow(ctx,
		`INSERT INTO camaras (nombre, ubicacion, tipo) VALUES ('Entrada Principal', 'Planta baja', 'ip') RETURNING id`,
	).Scan(&cameraID)
	require.NoError(t, err)

	person := &domain.Person{FirstName: "Ana", LastName: "Lopez", ReferencePhoto: "ana.jpg"}
	require.NoError(t, people.Create(ctx, person))
	require.NotZero(t, person.ID)

	t.Run("duplicate person is rejected", func(t *testing.T) {
		dup := &domain.Person{FirstName: "Ana", LastName: "Lopez"}
		assert.ErrorIs(t, people.Create(ctx, dup), domain.ErrPersonExists)
	})

	t.Run("list and get round trip", func(t *testing.T) {
		got, err := people.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana Lopez", got.FullName())
		assert.Equal(t, domain.PersonTypeResident, got.Type)

		listed, err := people.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		cams, err := cameras.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, cams, 1)
		assert.Equal(t, "Entrada Principal", cams[0].Name)
	})

	var detectionID int64
	err = db.QueryRow(ctx,
		`INSERT INTO detecciones (persona_id, camara_id, confianza, es_desconocido) VALUES ($1, $2, 0.92, false) RETURNING id`,
		person.ID, cameraID,
	).Scan(&detectionID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO detecciones (camara_id, confianza, es_desconocido) VALUES ($1, 0.4, true)`,
		cameraID,
	)
	require.NoError(t, err)

	t.Run("detections join names", func(t *testing.T) {
		got, err := detections.ListRecent(ctx, 10, nil)
		require.NoError(t, err)
		require.Len(t, got, 2)

		byUnknown := map[bool]domain.Detection{}
		for _, d := range got {
			byUnknown[d.IsUnknown] = d
		}
		assert.Equal(t, "Ana Lopez", byUnknown[false].FullName())
		assert.Equal(t, "Desconocido", byUnknown[true].FirstName)
	})

	var eventID int64
	err = db.QueryRow(ctx,
		`INSERT INTO eventos (tipo, severidad, descripcion, deteccion_id, camara_id)
		 VALUES ('desconocido_detectado', 'alta', 'Persona desconocida en entrada', $1, $2) RETURNING id`,
		detectionID, cameraID,
	).Scan(&eventID)
	require.NoError(t, err)

	t.Run("event resolution transitions once", func(t *testing.T) {
		pending, err := events.ListUnresolved(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Entrada Principal", pending[0].CameraName)

		require.NoError(t, events.Resolve(ctx, eventID, "verificado"))
		assert.ErrorIs(t, events.Resolve(ctx, eventID, "otra vez"), domain.ErrEventAlreadyResolved)
		assert.ErrorIs(t, events.Resolve(ctx, eventID+1000, ""), domain.ErrEventNotFound)

		resolved, err := events.ListResolved(ctx, 10)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, "verificado", resolved[0].ResolutionNotes)
		require.NotNil(t, resolved[0].ResolvedAt)
	})

	t.Run("config defaults seeded by migration", func(t *testing.T) {
		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.6, cfg.ConfidenceThreshold, 1e-9)
		assert.True(t, cfg.AlertsEnabled)

		require.NoError(t, config.Set(ctx, KeyConfidenceThreshold, "0.8"))
		cfg, err = config.Load(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.8, cfg.ConfidenceThreshold, 1e-9)
	})

	t.Run("stats reflect seeded data", func(t *testing.T) {
		snap, err := stats.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.RegisteredPeople)
		assert.Equal(t, 2, snap.DetectionsToday)
		assert.Equal(t, 1, snap.UniquePeopleToday)
		assert.Equal(t, 1, snap.UnknownsToday)
		assert.Equal(t, 0, snap.PendingEvents)
		assert.Equal(t, 1, snap.ActiveCameras)

		activity, err := stats.Activity(ctx, 7)
		require.NoError(t, err)
		require.Len(t, activity, 1)
		assert.Equal(t, 2, activity[0].Total)
		assert.Equal(t, 1, activity[0].Known)
		assert.Equal(t, 1, activity[0].Unknown)
	})
}
