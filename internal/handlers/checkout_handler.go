package handlers

import (
	"errors"
	"log"

	"shopgh/internal/middleware"
	"shopgh/internal/models"
	"shopgh/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles the simulated mobile-money payment action.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the checkout route.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest is the request body for placing an order.
type CheckoutRequest struct {
	Provider string `json:"provider" validate:"required,oneof=MTN Vodafone AirtelTigo"`
	Momo     string `json:"momo" validate:"required,min=10"`
}

// HandleCheckout validates the payment details and commits the session's
// cart as an order. Validation failures and checkout rejections leave the
// session otherwise unchanged.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.checkoutService.PlaceOrder(sess, req.Provider, req.Momo)
	if err != nil {
		var oos *models.OutOfStockError
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		case errors.As(err, &oos):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": oos.Error(),
			})
		}
		log.Printf("Error placing order for user %s: %v", sess.User, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}
