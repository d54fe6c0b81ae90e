package handlers

import (
	"strconv"

	"bukuku/internal/services"
	"bukuku/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BookHandler struct {
	Catalog *services.CatalogService
}

// GET /books?featured=1&bestseller=1&new_arrival=1&search=&category=&limit=
func (h *BookHandler) List(c *fiber.Ctx) error {
	q := services.BookQuery{
		Featured:   validate.Flag(c.Query("featured")),
		Bestseller: validate.Flag(c.Query("bestseller")),
		NewArrival: validate.Flag(c.Query("new_arrival")),
		Search:     validate.Search(c.Query("search")),
		Category:   c.Query("category"),
		Limit:      validate.Limit(c.Query("limit"), services.DefaultLimit),
	}

	books, err := h.Catalog.ListBooks(q)
	if err != nil {
		return fail(c, "books.list", err)
	}
	return jsonOK(c, fiber.Map{
		"data":    books,
		"count":   len(books),
		"message": "books retrieved",
	})
}

// GET /books/:id
func (h *BookHandler) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return jsonErr(c, fiber.StatusBadRequest, "invalid book id")
	}
	book, err := h.Catalog.GetBook(id)
	if err != nil {
		return fail(c, "books.show", err)
	}
	return jsonOK(c, fiber.Map{"data": book})
}
