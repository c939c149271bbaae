package handler

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

type ConfigHandler struct {
	repo   repository.ConfigRepositoryInterface
	logger *slog.Logger
}

func NewConfigHandler(repo repository.ConfigRepositoryInterface, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{repo: repo, logger: logger}
}

// Get GET /api/configuracion
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.repo.Load(c.Context())
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return ok(c, cfg)
}

// Update POST /api/configuracion
//
// Accepts a partial map of settings; unknown keys are rejected before
// anything is written.
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var req map[string]any
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if len(req) == 0 {
		return domain.ErrBadRequest
	}

	for key := range req {
		if !repository.ValidConfigKey(key) {
			return domain.ErrInvalidConfigKey
		}
	}

	for key, value := range req {
		if err := h.repo.Set(c.Context(), key, stringify(value)); err != nil {
			return domain.ErrInternal.WithError(err)
		}
	}

	h.logger.Info("configuration updated", slog.Int("keys", len(req)))

	return okMessage(c, "Configuración actualizada")
}

// stringify flattens a decoded JSON scalar into its stored text form.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
