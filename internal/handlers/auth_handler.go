package handlers

import (
	"errors"
	"fmt"
	"log"

	"shopgh/internal/middleware"
	"shopgh/internal/models"
	"shopgh/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for login, registration, and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public auth routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the auth routes that need a live session.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/auth/logout", h.HandleLogout)
}

// CredentialsRequest is the request body for both login and registration.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error registering user %s: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registered successfully",
	})
}

// HandleLogin handles user login and issues a session token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	sess, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log in",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Logged in!",
		"token":    token,
		"username": sess.User,
		"role":     sess.Role,
	})
}

// HandleLogout discards the current session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	h.authService.Logout(sess.ID)
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// validationError renders validator errors the same way for every handler.
func validationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
