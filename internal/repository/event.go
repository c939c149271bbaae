package repository

import (
	"context"
	"fmt"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type EventRepository struct {
	pool PgxPool
}

func NewEventRepository(pool PgxPool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `
	e.id, e.tipo, e.severidad, COALESCE(e.descripcion, ''), e.deteccion_id, e.camara_id,
	COALESCE(c.nombre, 'N/A'), e.resuelto, COALESCE(e.notas_resolucion, ''), e.timestamp, e.fecha_resolucion
`

func (r *EventRepository) ListUnresolved(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT ` + eventColumns + `
		FROM eventos e
		LEFT JOIN camaras c ON e.camara_id = c.id
		WHERE e.resuelto = false
		ORDER BY e.timestamp DESC
		LIMIT $1
	`

	return r.list(ctx, query, limit)
}

func (r *EventRepository) ListResolved(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT ` + eventColumns + `
		FROM eventos e
		LEFT JOIN camaras c ON e.camara_id = c.id
		WHERE e.resuelto = true
		ORDER BY e.fecha_resolucion DESC
		LIMIT $1
	`

	return r.list(ctx, query, limit)
}

func (r *EventRepository) list(ctx context.Context, query string, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID,
			&e.Type,
			&e.Severity,
			&e.Description,
			&e.DetectionID,
			&e.CameraID,
			&e.CameraName,
			&e.Resolved,
			&e.ResolutionNotes,
			&e.Timestamp,
			&e.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Resolve transitions resuelto false->true exactly once; resolving an
// already-resolved or missing event fails.
func (r *EventRepository) Resolve(ctx context.Context, id int64, notes string) error {
	query := `
		UPDATE eventos
		SET resuelto = true, fecha_resolucion = NOW(), notas_resolucion = $2
		WHERE id = $1 AND resuelto = false
	`

	result, err := r.pool.Exec(ctx, query, id, notes)
	if err != nil {
		return fmt.Errorf("resolve event: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish missing from already resolved.
		var resolved bool
		err := r.pool.QueryRow(ctx, `SELECT resuelto FROM eventos WHERE id = $1`, id).Scan(&resolved)
		if err != nil {
			return domain.ErrEventNotFound
		}
		if resolved {
			return domain.ErrEventAlreadyResolved
		}
		return domain.ErrEventNotFound
	}

	return nil
}
