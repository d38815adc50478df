package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrms-api/internal/application/dto"
	"github.com/jhoicas/hrms-api/internal/application/org"
)

// catalogRequest es lo que el handler genérico exige a cada DTO de entrada.
type catalogRequest[E any] interface {
	Validate() error
	ToEntity() *E
}

// CatalogHandler expone el CRUD de una entidad de catálogo sobre el protocolo
// de comandos. Department, Designation y Post son la misma instancia con
// distinto DTO: el patrón se implementa una vez.
type CatalogHandler[E any, R catalogRequest[E]] struct {
	uc *org.CatalogUseCase[E]
}

// NewCatalogHandler construye el handler para una entidad de catálogo.
func NewCatalogHandler[E any, R catalogRequest[E]](uc *org.CatalogUseCase[E]) *CatalogHandler[E, R] {
	return &CatalogHandler[E, R]{uc: uc}
}

// List devuelve todas las filas.
func (h *CatalogHandler[E, R]) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create invoca el procedimiento de creación y responde con el id asignado.
func (h *CatalogHandler[E, R]) Create(c *fiber.Ctx) error {
	var in R
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	id, err := h.uc.Create(c.Context(), in.ToEntity())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Update invoca el procedimiento de actualización.
func (h *CatalogHandler[E, R]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in R
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.Update(c.Context(), id, in.ToEntity()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete invoca el procedimiento de borrado.
func (h *CatalogHandler[E, R]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// registerCatalogRoutes registra el CRUD de la entidad bajo el grupo dado.
func registerCatalogRoutes[E any, R catalogRequest[E]](group fiber.Router, uc *org.CatalogUseCase[E]) {
	h := NewCatalogHandler[E, R](uc)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
