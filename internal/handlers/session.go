package handlers

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "coach_session"
	SessionHeader     = "X-Session-ID"

	sessionLocalKey = "session_id"
	sessionTTL      = 30 * 24 * time.Hour
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header, then the session cookie, minting a new one when neither is valid.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(SessionHeader))
		if !sessionIDPattern.MatchString(id) {
			id = c.Cookies(SessionCookieName)
		}

		if !sessionIDPattern.MatchString(id) {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(sessionTTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocalKey, id)
		c.Set(SessionHeader, id)

		return c.Next()
	}
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocalKey).(string)
	return id
}
