package repository

import (
	"context"
	"fmt"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type CameraRepository struct {
	pool PgxPool
}

func NewCameraRepository(pool PgxPool) *CameraRepository {
	return &CameraRepository{pool: pool}
}

func (r *CameraRepository) ListActive(ctx context.Context) ([]domain.Camera, error) {
	query := `
		SELECT id, nombre, COALESCE(ubicacion, ''), COALESCE(tipo, ''), COALESCE(url_stream, ''), activa, fecha_registro
		FROM camaras
		WHERE activa = true
		ORDER BY nombre
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active cameras: %w", err)
	}
	defer rows.Close()

	var cameras []domain.Camera
	for rows.Next() {
		var c domain.Camera
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Type, &c.StreamURL, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan camera: %w", err)
		}
		cameras = append(cameras, c)
	}

	return cameras, rows.Err()
}
