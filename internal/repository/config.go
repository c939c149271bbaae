package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

// Configuration keys stored in the configuracion table.
const (
	KeyConfidenceThreshold = "umbral_confianza"
	KeyAlertsEnabled       = "activar_alertas"
	KeySaveFrames          = "guardar_frames"
	KeyImageRetentionDays  = "dias_retencion_imagenes"
)

// ValidConfigKey reports whether key is a known setting.
func ValidConfigKey(key string) bool {
	switch key {
	case KeyConfidenceThreshold, KeyAlertsEnabled, KeySaveFrames, KeyImageRetentionDays:
		return true
	}
	return false
}

type ConfigRepository struct {
	pool PgxPool
}

func NewConfigRepository(pool PgxPool) *ConfigRepository {
	return &ConfigRepository{pool: pool}
}

// Load reads the full system configuration, applying defaults for
// missing keys.
func (r *ConfigRepository) Load(ctx context.Context) (*domain.SystemConfig, error) {
	cfg := &domain.SystemConfig{
		ConfidenceThreshold: 0.6,
		AlertsEnabled:       true,
		SaveFrames:          true,
		ImageRetentionDays:  30,
	}

	if v, err := r.get(ctx, KeyConfidenceThreshold); err != nil {
		return nil, err
	} else if v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", KeyConfidenceThreshold, err)
		}
		cfg.ConfidenceThreshold = f
	}

	if v, err := r.get(ctx, KeyAlertsEnabled); err != nil {
		return nil, err
	} else if v != "" {
		cfg.AlertsEnabled = v == "1" || v == "true"
	}

	if v, err := r.get(ctx, KeySaveFrames); err != nil {
		return nil, err
	} else if v != "" {
		cfg.SaveFrames = v == "1" || v == "true"
	}

	if v, err := r.get(ctx, KeyImageRetentionDays); err != nil {
		return nil, err
	} else if v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", KeyImageRetentionDays, err)
		}
		cfg.ImageRetentionDays = n
	}

	return cfg, nil
}

func (r *ConfigRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT valor FROM configuracion WHERE clave = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get config %s: %w", key, err)
	}
	return value, nil
}

// Set upserts one configuration value.
func (r *ConfigRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO configuracion (clave, valor, fecha_modificacion)
		VALUES ($1, $2, NOW())
		ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor, fecha_modificacion = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set config %s: %w", key, err)
	}

	return nil
}
