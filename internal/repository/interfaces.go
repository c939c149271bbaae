package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use. pgxmock
// satisfies it in tests.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PersonRepositoryInterface defines operations for registered people
type PersonRepositoryInterface interface {
	ListActive(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) error
	Update(ctx context.Context, person *domain.Person) error
	SoftDelete(ctx context.Context, id int64) error
}

// DetectionRepositoryInterface defines read access to the detection history
type DetectionRepositoryInterface interface {
	ListRecent(ctx context.Context, limit int, cameraID *int64) ([]domain.Detection, error)
}

// EventRepositoryInterface defines operations for alertable events
type EventRepositoryInterface interface {
	ListUnresolved(ctx context.Context, limit int) ([]domain.Event, error)
	ListResolved(ctx context.Context, limit int) ([]domain.Event, error)
	Resolve(ctx context.Context, id int64, notes string) error
}

// CameraRepositoryInterface defines read access to registered cameras
type CameraRepositoryInterface interface {
	ListActive(ctx context.Context) ([]domain.Camera, error)
}

// ConfigRepositoryInterface defines the key/value configuration store
type ConfigRepositoryInterface interface {
	Load(ctx context.Context) (*domain.SystemConfig, error)
	Set(ctx context.Context, key, value string) error
}

// StatsRepositoryInterface computes the dashboard aggregates
type StatsRepositoryInterface interface {
	Snapshot(ctx context.Context) (*domain.StatsSnapshot, error)
	Activity(ctx context.Context, days int) ([]domain.ActivityDay, error)
}
