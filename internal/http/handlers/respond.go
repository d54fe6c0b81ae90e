package handlers

import (
	"errors"

	applog "bukuku/internal/log"
	"bukuku/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: {success, data|error, ...}.

func jsonOK(c *fiber.Ctx, payload fiber.Map) error {
	payload["success"] = true
	return c.JSON(payload)
}

func jsonErr(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// fail maps service errors onto the envelope: validation 400, missing rows
// 404, everything else 500 with the driver error masked (logged, not echoed).
func fail(c *fiber.Ctx, action string, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Security(c, action+".validation", map[string]any{"reason": ve.Msg})
		return jsonErr(c, fiber.StatusBadRequest, ve.Msg)
	case errors.Is(err, services.ErrSellerNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrUploadNotFound):
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrBadCreds):
		return jsonErr(c, fiber.StatusUnauthorized, err.Error())
	default:
		applog.Error(c, action, err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "database error")
	}
}
