package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrms-api/internal/application/dto"
	"github.com/jhoicas/hrms-api/internal/domain"
)

// respondError traduce los errores de dominio a respuestas HTTP estructuradas.
// Ningún error se reintenta aquí: los reintentos son del cliente/transporte.
func respondError(c *fiber.Ctx, err error) error {
	var storeErr *domain.StoreError
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidOTP):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OTP", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidResetToken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RESET_TOKEN", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
	case errors.Is(err, domain.ErrDeliveryFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMAIL_DELIVERY", Message: "no se pudo entregar el correo, intente de nuevo"})
	case errors.As(err, &storeErr):
		return c.Status(storeErrorStatus(storeErr.Message)).JSON(dto.ErrorResponse{Code: "STORE_ERROR", Message: storeErr.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// storeErrorStatus decide el status para un resultado negativo del
// procedimiento almacenado según el contenido del mensaje.
func storeErrorStatus(message string) int {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "no existe"), strings.Contains(msg, "no encontrado"), strings.Contains(msg, "not found"):
		return fiber.StatusNotFound
	case strings.Contains(msg, "ya existe"), strings.Contains(msg, "duplicad"), strings.Contains(msg, "en uso"), strings.Contains(msg, "already exists"):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
