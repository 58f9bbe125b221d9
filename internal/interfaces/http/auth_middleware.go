package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/pkg/jwt"
)

// Locals keys para el usuario autenticado y su sesión en Fiber.
const (
	LocalActor     = "actor"
	LocalSessionID = "session_id"
)

// tokenAuthenticator lo implementa *auth.AuthUseCase.
type tokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error)
}

// AuthMiddleware valida el Bearer Token, exige que su marcador de sesión siga abierto
// y carga el usuario actual en c.Locals.
func AuthMiddleware(authn tokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, claims, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o sesión cerrada"})
		}
		c.Locals(LocalActor, user)
		c.Locals(LocalSessionID, claims.ID)
		return c.Next()
	}
}

// GetActor devuelve el usuario autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalActor).(*entity.User)
	return u
}

// GetSessionID devuelve el id del marcador de sesión del token.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
