package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

type EventHandler struct {
	repo   repository.EventRepositoryInterface
	logger *slog.Logger
}

func NewEventHandler(repo repository.EventRepositoryInterface, logger *slog.Logger) *EventHandler {
	return &EventHandler{repo: repo, logger: logger}
}

type resolveEventRequest struct {
	Notes string `json:"notas"`
}

// List GET /api/eventos?resueltos=false&limit=100
func (h *EventHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var (
		events []domain.Event
		err    error
	)
	if c.QueryBool("resueltos", false) {
		events, err = h.repo.ListResolved(c.Context(), limit)
	} else {
		events, err = h.repo.ListUnresolved(c.Context(), limit)
	}
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return okList(c, events, len(events))
}

// Resolve POST /api/eventos/:id/resolver
func (h *EventHandler) Resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	var req resolveEventRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.ErrBadRequest.WithError(err)
		}
	}

	if err := h.repo.Resolve(c.Context(), int64(id), req.Notes); err != nil {
		return err
	}

	h.logger.Info("event resolved", slog.Int("id", id))

	return okMessage(c, "Evento resuelto correctamente")
}
