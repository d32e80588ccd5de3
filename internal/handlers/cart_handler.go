package handlers

import (
	"fmt"
	"log"

	"shopgh/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct{}

// NewCartHandler creates a new CartHandler.
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:index", h.HandleRemoveItem)
}

// HandleGetCart returns the cart contents and running total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	return c.JSON(fiber.Map{
		"items": sess.Cart,
		"total": sess.CartTotal(),
	})
}

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

// HandleAddItem snapshots a catalog product into the cart. The product must
// exist in the session's catalog at add time; stock is checked only at
// checkout.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := sess.Catalog.ByID(req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %d not found", req.ProductID),
		})
	}

	sess.AddToCart(*product)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Added %s to cart", product.Name),
		"items":   sess.Cart,
		"total":   sess.CartTotal(),
	})
}

// HandleRemoveItem removes the cart entry at the given position. An
// out-of-range index leaves the cart unchanged, so the response is the same
// either way.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart index must be an integer",
		})
	}

	sess.RemoveFromCart(index)
	return c.JSON(fiber.Map{
		"items": sess.Cart,
		"total": sess.CartTotal(),
	})
}
