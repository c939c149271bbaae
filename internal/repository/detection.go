package repository

import (
	"context"
	"fmt"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type DetectionRepository struct {
	pool PgxPool
}

func NewDetectionRepository(pool PgxPool) *DetectionRepository {
	return &DetectionRepository{pool: pool}
}

// ListRecent returns the detection history, most recent first. Unknown
// detections carry no persona_id; the joined name falls back to
// "Desconocido" so the dashboard always has something to paint.
func (r *DetectionRepository) ListRecent(ctx context.Context, limit int, cameraID *int64) ([]domain.Detection, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT d.id, d.persona_id, COALESCE(p.nombre, 'Desconocido'), COALESCE(p.apellido, ''),
		       COALESCE(c.nombre, ''), COALESCE(d.confianza, 0), d.es_desconocido,
		       COALESCE(d.imagen_captura, ''), d.timestamp
		FROM detecciones d
		LEFT JOIN personas p ON d.persona_id = p.id
		LEFT JOIN camaras c ON d.camara_id = c.id
	`

	args := []any{limit}
	if cameraID != nil {
		query += ` WHERE d.camara_id = $2`
		args = append(args, *cameraID)
	}
	query += `
		ORDER BY d.timestamp DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent detections: %w", err)
	}
	defer rows.Close()

	var detections []domain.Detection
	for rows.Next() {
		var d domain.Detection
		if err := rows.Scan(
			&d.ID,
			&d.PersonID,
			&d.FirstName,
			&d.LastName,
			&d.CameraName,
			&d.Confidence,
			&d.IsUnknown,
			&d.CaptureImage,
			&d.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		detections = append(detections, d)
	}

	return detections, rows.Err()
}
