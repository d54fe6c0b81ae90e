package handlers

import (
	"strings"

	applog "bukuku/internal/log"
	"bukuku/internal/services"

	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireAdmin guards destructive endpoints: the bearer token must resolve
// to an ADMIN user.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return jsonErr(c, fiber.StatusUnauthorized, "missing token")
		}
		u, err := auth.CurrentUser(token)
		if err != nil {
			return fail(c, "authz.admin", err)
		}
		if u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", nil)
			return jsonErr(c, fiber.StatusForbidden, "access denied")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
