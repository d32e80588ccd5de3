package handlers

import (
	"log"

	"shopgh/internal/middleware"
	"shopgh/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order history, for both the
// purchasing user and the admin views.
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the user-facing order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetMyOrders)
}

// RegisterAdminRoutes registers the role-gated admin routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/orders", h.HandleGetAllOrders)
	adminRoutes.Get("/report", h.HandleGetReport)
}

// HandleGetMyOrders returns the orders placed by the current session's user.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	orders, err := h.orderService.OrdersForUser(sess.User)
	if err != nil {
		log.Printf("Error loading orders for user %s: %v", sess.User, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetAllOrders returns every persisted order.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.AllOrders()
	if err != nil {
		log.Printf("Error loading all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetReport returns the aggregated order report.
func (h *OrderHandler) HandleGetReport(c *fiber.Ctx) error {
	report, err := h.orderService.BuildReport()
	if err != nil {
		log.Printf("Error building order report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build report",
			"error":   err.Error(),
		})
	}
	return c.JSON(report)
}
