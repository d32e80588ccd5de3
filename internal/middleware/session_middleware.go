package middleware

import (
	"log"
	"strings"

	"shopgh/internal/services"
	"shopgh/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionKey is the Locals key holding the resolved *session.Session.
const SessionKey = "session"

// SessionRequired is a Fiber middleware that validates the bearer token and
// resolves the live session it refers to.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		sess, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Session token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired session",
				"error":   err.Error(),
			})
		}

		c.Locals(SessionKey, sess)
		return c.Next()
	}
}

// AdminRequired gates a route group to admin sessions. It must run after
// SessionRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		if sess == nil || !sess.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin role required",
			})
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by SessionRequired, or nil.
func SessionFromCtx(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(SessionKey).(*session.Session)
	return sess
}
