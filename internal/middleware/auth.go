package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/models"
)

const (
	userKey  = "auth_user"
	tokenKey = "auth_token"
)

// SessionResolver maps a bearer token to its user.
type SessionResolver interface {
	Current(ctx context.Context, token string) (models.User, bool)
}

// AuthMiddleware requires a Bearer token naming a live session.
// Public paths bypass authentication.
func AuthMiddleware(resolver SessionResolver, publicPrefixes ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()

		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid Authorization header format, expected 'Bearer <token>'",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "empty bearer token",
			})
		}

		user, ok := resolver.Current(c.Context(), token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "session expired or logged out",
			})
		}

		c.Locals(tokenKey, token)
		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c fiber.Ctx) (models.User, bool) {
	u, ok := c.Locals(userKey).(models.User)
	return u, ok
}

// CurrentToken returns the bearer token set by AuthMiddleware.
func CurrentToken(c fiber.Ctx) string {
	t, _ := c.Locals(tokenKey).(string)
	return t
}
