package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type StatsRepository struct {
	pool PgxPool
}

func NewStatsRepository(pool PgxPool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Snapshot aggregates the dashboard counters in a single round trip.
func (r *StatsRepository) Snapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM personas WHERE activo = true),
			(SELECT COUNT(*) FROM detecciones WHERE timestamp::date = CURRENT_DATE),
			(SELECT COUNT(DISTINCT persona_id) FROM detecciones
				WHERE timestamp::date = CURRENT_DATE AND persona_id IS NOT NULL),
			(SELECT COUNT(*) FROM detecciones
				WHERE timestamp::date = CURRENT_DATE AND es_desconocido = true),
			(SELECT COUNT(*) FROM eventos WHERE resuelto = false),
			(SELECT COUNT(*) FROM eventos
				WHERE resuelto = false AND severidad IN ('alta', 'critica')),
			(SELECT COUNT(*) FROM camaras WHERE activa = true)
	`

	snap := &domain.StatsSnapshot{UpdatedAt: time.Now()}
	err := r.pool.QueryRow(ctx, query).Scan(
		&snap.RegisteredPeople,
		&snap.DetectionsToday,
		&snap.UniquePeopleToday,
		&snap.UnknownsToday,
		&snap.PendingEvents,
		&snap.CriticalEvents,
		&snap.ActiveCameras,
	)
	if err != nil {
		return nil, fmt.Errorf("stats snapshot: %w", err)
	}

	return snap, nil
}

// Activity returns per-day detection counts for the last days days,
// most recent first.
func (r *StatsRepository) Activity(ctx context.Context, days int) ([]domain.ActivityDay, error) {
	if days <= 0 {
		days = 7
	}

	query := `
		SELECT
			timestamp::date AS dia,
			COUNT(*) FILTER (WHERE es_desconocido = false),
			COUNT(*) FILTER (WHERE es_desconocido = true),
			COUNT(*)
		FROM detecciones
		WHERE timestamp >= CURRENT_DATE - ($1::int - 1)
		GROUP BY dia
		ORDER BY dia DESC
	`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	activity := make([]domain.ActivityDay, 0, days)
	for rows.Next() {
		var day domain.ActivityDay
		var date time.Time
		if err := rows.Scan(&date, &day.Known, &day.Unknown, &day.Total); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		day.Date = date.Format("2006-01-02")
		activity = append(activity, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	return activity, nil
}
