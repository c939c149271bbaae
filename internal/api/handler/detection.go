package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

type DetectionHandler struct {
	repo   repository.DetectionRepositoryInterface
	logger *slog.Logger
}

func NewDetectionHandler(repo repository.DetectionRepositoryInterface, logger *slog.Logger) *DetectionHandler {
	return &DetectionHandler{repo: repo, logger: logger}
}

// List GET /api/detecciones?limit=50&camara_id=3
func (h *DetectionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	var cameraID *int64
	if raw := c.QueryInt("camara_id", 0); raw > 0 {
		id := int64(raw)
		cameraID = &id
	}

	detections, err := h.repo.ListRecent(c.Context(), limit, cameraID)
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return okList(c, detections, len(detections))
}
