package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"shopgh/internal/handlers"
	"shopgh/internal/middleware"
	"shopgh/internal/repositories"
	"shopgh/internal/services"
	"shopgh/internal/session"
)

func main() {
	// --- Configuration ---
	// Optional .env first, then environment variables over defaults.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("USERS_FILE", "users.json")
	viper.SetDefault("ORDERS_FILE", "orders.json")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	usersFile := viper.GetString("USERS_FILE")
	ordersFile := viper.GetString("ORDERS_FILE")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Initialize Repositories ---
	accountRepo := repositories.NewFileAccountRepository(usersFile)
	orderRepo := repositories.NewFileOrderRepository(ordersFile)

	// --- Initialize Session Registry and Services ---
	sessions := session.NewManager()
	authService := services.NewAuthService(accountRepo, sessions, jwtSecret)
	checkoutService := services.NewCheckoutService(orderRepo)
	orderService := services.NewOrderService(orderRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler()
	cartHandler := handlers.NewCartHandler()
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public auth routes
	authHandler.RegisterRoutes(apiV1)

	// Everything else needs a live session: the catalog copy and the cart
	// live on the session, so even browsing is session-scoped.
	protected := apiV1.Group("", middleware.SessionRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	productHandler.RegisterRoutes(protected)
	cartHandler.RegisterRoutes(protected)
	checkoutHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	// Admin views sit behind the role gate on top of the session gate.
	admin := protected.Group("", middleware.AdminRequired())
	orderHandler.RegisterAdminRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
