package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/middleware"
	"blogapi/internal/services"
	"blogapi/internal/session"
)

// AuthHandler handles HTTP requests for signup, login and session state.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the auth and session routes with the Fiber app.
// Signup and login carry their own per-IP quotas on top of the app-wide
// defaults.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", middleware.RateLimit(3, time.Hour), h.HandleSignup)
	router.Post("/login", middleware.RateLimit(5, time.Minute), h.HandleLogin)
	router.Delete("/logout", h.HandleLogout)
	router.Get("/check_session", h.HandleCheckSession)
	router.Delete("/clear", h.HandleClearSession)
}

// CredentialsRequest represents the request body for signup and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleSignup registers a new user and logs them in.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username and password are required",
		})
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Username, err)
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username already exists",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not sign up",
			"error":   err.Error(),
		})
	}

	sess := h.sessions.Load(c)
	sess.UserID = user.ID
	if err := h.sessions.Save(c, sess); err != nil {
		log.Printf("Error saving session for user %d: %v", user.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin authenticates a user and establishes a session.
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
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username and password are required",
		})
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		// Same body for unknown usernames and wrong passwords.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	sess := h.sessions.Load(c)
	sess.UserID = user.ID
	if err := h.sessions.Save(c, sess); err != nil {
		log.Printf("Error saving session for user %d: %v", user.ID, err)
	}

	return c.JSON(user)
}

// HandleLogout clears the logged-in user from the session. It succeeds
// whether or not a session existed.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess := h.sessions.Load(c)
	sess.UserID = 0
	if err := h.sessions.Save(c, sess); err != nil {
		log.Printf("Error saving session on logout: %v", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCheckSession returns the logged-in user, re-verifying that the
// user behind the session id still exists.
func (h *AuthHandler) HandleCheckSession(c *fiber.Ctx) error {
	sess := h.sessions.Load(c)
	if sess.UserID != 0 {
		user, err := h.authService.GetUserByID(sess.UserID)
		if err == nil {
			return c.JSON(user)
		}
		log.Printf("Session user %d no longer exists: %v", sess.UserID, err)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{})
}

// HandleClearSession resets both the logged-in user and the pageview
// counter. Unlike logout it also clears view-counting state.
func (h *AuthHandler) HandleClearSession(c *fiber.Ctx) error {
	sess := h.sessions.Load(c)
	sess.UserID = 0
	sess.PageViews = 0
	if err := h.sessions.Save(c, sess); err != nil {
		log.Printf("Error saving session on clear: %v", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
