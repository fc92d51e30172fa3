package http

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// respondError traduce errores de dominio y de validación a la respuesta HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var (
		domainErr *domain.Error
		httpErr   domain.HTTPError
		validErrs validation.Errors
	)
	switch {
	case errors.As(err, &domainErr):
		return c.Status(domainErr.Status).JSON(dto.ErrorResponse{Code: string(domainErr.Kind), Message: domainErr.Message})
	case errors.As(err, &httpErr):
		return c.Status(httpErr.StatusCode()).JSON(dto.ErrorResponse{Code: "ERROR", Message: httpErr.Error()})
	case errors.As(err, &validErrs), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
