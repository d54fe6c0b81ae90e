package handlers

import (
	applog "bukuku/internal/log"
	"bukuku/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /auth/login — body {email, password}
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	token, user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return fail(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login", map[string]any{"user_id": user.ID})
	return jsonOK(c, fiber.Map{"data": fiber.Map{"token": token, "user": user}})
}

// POST /auth/register — body {name, email, password}
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	token, user, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"user_id": user.ID})
	return jsonOK(c, fiber.Map{"data": fiber.Map{"token": token, "user": user}})
}

// POST /auth/logout — revokes the presented bearer token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return jsonErr(c, fiber.StatusBadRequest, "missing token")
	}
	if err := h.Auth.Logout(token); err != nil {
		return fail(c, "auth.logout", err)
	}
	return jsonOK(c, fiber.Map{})
}
