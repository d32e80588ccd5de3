package handlers

import (
	"fmt"

	"shopgh/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the browse surface of the session's catalog copy.
// The catalog is a fixed seed per session, so there are no write routes.
type ProductHandler struct{}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// RegisterRoutes registers the catalog browse routes. All of them read the
// session's own catalog copy, so they sit behind the session middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetProducts lists the session's products, optionally filtered by
// the category query parameter.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	if category := c.Query("category"); category != "" {
		return c.JSON(sess.Catalog.FilterByCategory(category))
	}
	return c.JSON(sess.Catalog.All())
}

// HandleGetProductByID returns a single product from the session's catalog.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}

	product, err := sess.Catalog.ByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %d not found", id),
		})
	}
	return c.JSON(product)
}

// HandleGetCategories returns the distinct catalog categories.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	return c.JSON(sess.Catalog.Categories())
}
