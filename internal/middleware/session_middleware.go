package middleware

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/session"
)

// LoginRequired is a Fiber middleware that rejects requests whose session
// cookie does not identify a logged-in user.
func LoginRequired(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessions.Load(c)
		if sess.UserID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized. Please log in",
			})
		}

		// Store the user id in Fiber context for subsequent handlers
		c.Locals("user_id", sess.UserID)

		return c.Next()
	}
}
