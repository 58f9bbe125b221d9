package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
)

// RequireArea devuelve un middleware que verifica que el rol del usuario tenga acceso
// al área. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalActor).
//
//   - 401 si no hay usuario en el contexto.
//   - 403 AREA_FORBIDDEN si el rol no incluye el área.
func RequireArea(area access.Area) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado en el contexto",
			})
		}
		if !access.Allowed(actor.Role, area) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "AREA_FORBIDDEN",
				Message: "el rol " + string(actor.Role) + " no tiene acceso al área '" + string(area) + "'",
			})
		}
		return c.Next()
	}
}
