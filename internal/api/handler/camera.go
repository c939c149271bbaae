package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

type CameraHandler struct {
	repo   repository.CameraRepositoryInterface
	logger *slog.Logger
}

func NewCameraHandler(repo repository.CameraRepositoryInterface, logger *slog.Logger) *CameraHandler {
	return &CameraHandler{repo: repo, logger: logger}
}

// List GET /api/camaras
func (h *CameraHandler) List(c *fiber.Ctx) error {
	cameras, err := h.repo.ListActive(c.Context())
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return okList(c, cameras, len(cameras))
}
