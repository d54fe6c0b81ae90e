package handlers

import (
	applog "bukuku/internal/log"
	"bukuku/internal/services"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	Uploads *services.UploadService
}

// POST /upload/image — multipart field "image", optional "folder".
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "no file uploaded or upload error")
	}
	folder := c.FormValue("folder", "general")

	src, err := fh.Open()
	if err != nil {
		return fail(c, "upload.image", err)
	}
	defer src.Close()

	up, err := h.Uploads.Save(folder, fh.Filename, fh.Header.Get(fiber.HeaderContentType), fh.Size, src)
	if err != nil {
		return fail(c, "upload.image", err)
	}
	applog.Audit(c, "upload.image", map[string]any{"path": up.Path, "size": up.Size})
	return jsonOK(c, fiber.Map{
		"message": "file uploaded successfully",
		"data": fiber.Map{
			"filename": up.Filename,
			"path":     up.Path,
			"url":      up.URL,
			"size":     up.Size,
			"type":     up.MIME,
		},
	})
}

// POST /upload/delete — body {imagePath}; admin only.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		ImagePath string `json:"imagePath"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.Uploads.Delete(req.ImagePath); err != nil {
		return fail(c, "upload.delete", err)
	}
	applog.Audit(c, "upload.delete", map[string]any{"path": req.ImagePath})
	return jsonOK(c, fiber.Map{"message": "file deleted successfully"})
}
