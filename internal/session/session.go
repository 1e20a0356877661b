package session

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"
)

// CookieName is the name of the signed session cookie.
const CookieName = "blog_session"

// State is the per-request snapshot of the session cookie. A zero UserID
// means no user is logged in.
type State struct {
	UserID    uint
	PageViews int
}

// Manager signs and verifies the client-held session cookie. The cookie
// carries the state itself (like a Flask session) rather than a server-side
// session id, so no shared session table exists.
type Manager struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewManager creates a Manager keyed by the given signing secret. Cookies
// are HMAC-signed but not encrypted.
func NewManager(secret string, secure bool) *Manager {
	return &Manager{
		codec:  securecookie.New([]byte(secret), nil),
		secure: secure,
	}
}

// Load decodes the session cookie from the request. A missing, expired or
// tampered cookie yields a fresh empty session.
func (m *Manager) Load(c *fiber.Ctx) *State {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return &State{}
	}
	var s State
	if err := m.codec.Decode(CookieName, raw, &s); err != nil {
		return &State{}
	}
	return &s
}

// Save signs the state and writes it back as a cookie on the response.
// No Expires is set, so the cookie is scoped to the browser session.
// SameSite=None because the frontend is served from a different origin.
func (m *Manager) Save(c *fiber.Ctx, s *State) error {
	encoded, err := m.codec.Encode(CookieName, s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return nil
}
