package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
)

// codes de errores específicos; el resto usa el código de su categoría.
var specificCodes = []struct {
	err  error
	code string
}{
	{domain.ErrDuplicateCode, "DUPLICATE_CODE"},
	{domain.ErrEmailAlreadyExists, "EMAIL_EXISTS"},
	{domain.ErrInvalidSnapshot, "INVALID_SNAPSHOT"},
	{domain.ErrProductNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrStoreNotFound, "STORE_NOT_FOUND"},
	{domain.ErrUserNotFound, "USER_NOT_FOUND"},
	{domain.ErrOutOfStock, "OUT_OF_STOCK"},
	{domain.ErrInactiveProduct, "INACTIVE_PRODUCT"},
	{domain.ErrExtractionFailed, "EXTRACTION_FAILED"},
	{domain.ErrExtractionUnavailable, "EXTRACTION_UNAVAILABLE"},
	{domain.ErrArchiveUnavailable, "ARCHIVE_UNAVAILABLE"},
	{domain.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{domain.ErrSessionClosed, "SESSION_CLOSED"},
	{domain.ErrRoleNotAssignable, "ROLE_NOT_ASSIGNABLE"},
	{domain.ErrActionForbidden, "FORBIDDEN"},
}

// errorStatus traduce un error del dominio a código HTTP + ErrorResponse.
// Un error sin categoría es un 500 y no expone el texto interno.
func errorStatus(err error) (int, dto.ErrorResponse) {
	code := ""
	for _, s := range specificCodes {
		if errors.Is(err, s.err) {
			code = s.code
			break
		}
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrExtractionUnavailable), errors.Is(err, domain.ErrArchiveUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
		if code == "" {
			code = "VALIDATION"
		}
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
		if code == "" {
			code = "UNAUTHORIZED"
		}
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
		if code == "" {
			code = "FORBIDDEN"
		}
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		if code == "" {
			code = "NOT_FOUND"
		}
	case errors.Is(err, domain.ErrStateConflict):
		status = fiber.StatusConflict
		if code == "" {
			code = "STATE_CONFLICT"
		}
	case errors.Is(err, domain.ErrExternalService):
		status = fiber.StatusBadGateway
		if code == "" {
			code = "EXTERNAL_SERVICE"
		}
	default:
		return status, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
	return status, dto.ErrorResponse{Code: code, Message: err.Error()}
}

// respondError escribe la respuesta de error mapeada.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorStatus(err)
	return c.Status(status).JSON(body)
}
