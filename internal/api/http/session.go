package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/mood-weather/internal/session"
)

const (
	sessionCookie = "mw_session"
	sessionLocal  = "session"
)

// sessionMiddleware resolves the visitor's session from the cookie. With
// create set, a missing or unknown session is created and its cookie issued;
// otherwise the request sees a detached empty session and nothing is stored.
func sessionMiddleware(service *session.Service, create bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(sessionCookie)

		var s *session.Session
		if create {
			s = service.Open(id)
		} else {
			s = service.Peek(id)
		}
		if s.ID() != "" && s.ID() != id {
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    s.ID(),
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionLocal, s)
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) *session.Session {
	return c.Locals(sessionLocal).(*session.Session)
}
