package handler

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB decoded

// PersonHandler manages registered identities and their reference photos.
type PersonHandler struct {
	repo     repository.PersonRepositoryInterface
	photoDir string
	logger   *slog.Logger
}

func NewPersonHandler(repo repository.PersonRepositoryInterface, photoDir string, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{repo: repo, photoDir: photoDir, logger: logger}
}

type createPersonRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Type      string `json:"tipo"`
	Notes     string `json:"notas"`
	Image     string `json:"imagen"`
}

type updatePersonRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Type      string `json:"tipo"`
	Notes     string `json:"notas"`
	Active    *bool  `json:"activo"`
}

// List GET /api/personas
func (h *PersonHandler) List(c *fiber.Ctx) error {
	people, err := h.repo.ListActive(c.Context())
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return okList(c, people, len(people))
}

// Get GET /api/personas/:id
func (h *PersonHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	person, err := h.repo.GetByID(c.Context(), int64(id))
	if err != nil {
		return err
	}

	return ok(c, person)
}

// Create POST /api/personas
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var req createPersonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	if req.FirstName == "" {
		return domain.ErrNameRequired
	}
	if strings.TrimSpace(req.Image) == "" {
		return domain.ErrImageRequired
	}
	if req.Type != "" && !validPersonType(req.Type) {
		return domain.ErrValidationFailed
	}

	imageBytes, err := decodeImage(req.Image)
	if err != nil {
		return err
	}

	filename, err := h.savePhoto(imageBytes)
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	person := &domain.Person{
		FirstName:      req.FirstName,
		LastName:       strings.TrimSpace(req.LastName),
		Type:           domain.PersonType(req.Type),
		Notes:          req.Notes,
		ReferencePhoto: filename,
	}

	if err := h.repo.Create(c.Context(), person); err != nil {
		// The photo is orphaned on failure; retention cleanup removes it.
		return err
	}

	h.logger.Info("person registered",
		slog.Int64("id", person.ID),
		slog.String("nombre", person.FullName()),
	)

	return created(c, fiber.Map{
		"id":       person.ID,
		"nombre":   person.FirstName,
		"apellido": person.LastName,
	}, "Persona registrada correctamente")
}

// Update PUT /api/personas/:id
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	var req updatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	person, err := h.repo.GetByID(c.Context(), int64(id))
	if err != nil {
		return err
	}

	if name := strings.TrimSpace(req.FirstName); name != "" {
		person.FirstName = name
	}
	if req.LastName != "" {
		person.LastName = strings.TrimSpace(req.LastName)
	}
	if req.Type != "" {
		if !validPersonType(req.Type) {
			return domain.ErrValidationFailed
		}
		person.Type = domain.PersonType(req.Type)
	}
	if req.Notes != "" {
		person.Notes = req.Notes
	}
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := h.repo.Update(c.Context(), person); err != nil {
		return err
	}

	return ok(c, person)
}

// Delete DELETE /api/personas/:id
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	if err := h.repo.SoftDelete(c.Context(), int64(id)); err != nil {
		return err
	}

	return okMessage(c, "Persona eliminada correctamente")
}

// decodeImage accepts either a bare base64 string or a browser data URL
// ("data:image/jpeg;base64,...").
func decodeImage(image string) ([]byte, error) {
	payload := image
	if strings.HasPrefix(image, "data:") {
		_, after, found := strings.Cut(image, ",")
		if !found {
			return nil, domain.ErrInvalidImage
		}
		payload = after
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}
	if len(data) == 0 || len(data) > maxImageSize {
		return nil, domain.ErrInvalidImage
	}

	return data, nil
}

func (h *PersonHandler) savePhoto(data []byte) (string, error) {
	if err := os.MkdirAll(h.photoDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(h.photoDir, filename), data, 0o644); err != nil {
		return "", err
	}

	return filename, nil
}

func validPersonType(t string) bool {
	switch domain.PersonType(t) {
	case domain.PersonTypeResident, domain.PersonTypeEmployee, domain.PersonTypeVisitor:
		return true
	}
	return false
}
