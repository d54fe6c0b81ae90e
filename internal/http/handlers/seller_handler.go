package handlers

import (
	applog "bukuku/internal/log"
	"bukuku/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	Sellers *services.SellerService
}

// GET /sellers
func (h *SellerHandler) List(c *fiber.Ctx) error {
	sellers, err := h.Sellers.List()
	if err != nil {
		return fail(c, "sellers.list", err)
	}
	return jsonOK(c, fiber.Map{"data": sellers})
}

// POST /sellers/register
func (h *SellerHandler) Register(c *fiber.Ctx) error {
	var req services.SellerRegistration
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	id, err := h.Sellers.Register(req)
	if err != nil {
		return fail(c, "sellers.register", err)
	}
	applog.Audit(c, "sellers.register", map[string]any{"seller_id": id, "store": req.StoreName})
	return jsonOK(c, fiber.Map{"insert_id": id})
}

// POST /sellers/approve — body {id, status}; status limited to pending|approved.
func (h *SellerHandler) Approve(c *fiber.Ctx) error {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.Sellers.SetStatus(req.ID, req.Status); err != nil {
		return fail(c, "sellers.approve", err)
	}
	applog.Audit(c, "sellers.approve", map[string]any{"seller_id": req.ID, "status": req.Status})
	return jsonOK(c, fiber.Map{})
}

// POST /sellers/delete — body {id}; hard delete.
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.Sellers.Delete(req.ID); err != nil {
		return fail(c, "sellers.delete", err)
	}
	applog.Audit(c, "sellers.delete", map[string]any{"seller_id": req.ID})
	return jsonOK(c, fiber.Map{})
}
