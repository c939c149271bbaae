package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

// DashboardHandler serves the aggregate counters and the activity timeline.
type DashboardHandler struct {
	stats  repository.StatsRepositoryInterface
	logger *slog.Logger
}

func NewDashboardHandler(stats repository.StatsRepositoryInterface, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{stats: stats, logger: logger}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	snap, err := h.stats.Snapshot(c.Context())
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return ok(c, snap)
}

// Activity GET /api/dashboard/activity?days=7
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 || days > 90 {
		days = 7
	}

	activity, err := h.stats.Activity(c.Context(), days)
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return okList(c, activity, len(activity))
}
