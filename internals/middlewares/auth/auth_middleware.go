package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"learnhub_backend/internals/configs"
	helper "learnhub_backend/internals/helpers"
)

// Paths under a protected group that must stay open (login issues the
// token the rest of the group requires).
var skipPaths = map[string]struct{}{
	"/api/admin/login": {},
}

// AuthMiddleware verifies the bearer token and attaches the identity
// claims to the request. The role claim is trusted as issued at login for
// the token's 24h lifetime; a role change mid-session takes effect on the
// next login, not on already-issued tokens.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			log.Printf("[WARN] token rejected: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token.")
		}

		if id, ok := claims["id"].(float64); ok {
			c.Locals("admin_id", int(id))
		}
		c.Locals("admin_email", claimString(claims, "email"))
		c.Locals("admin_role", claimString(claims, "role"))
		c.Locals("admin_name", claimString(claims, "name"))

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
