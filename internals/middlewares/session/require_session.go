package session

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	sessionModel "quizku_backend/internals/features/quiz/sessions/model"
	sessionService "quizku_backend/internals/features/quiz/sessions/service"
	helper "quizku_backend/internals/helpers"
)

const (
	LocSession = "test_session" // *sessionModel.TestSessionModel
	EntryPath  = "/start"
)

// RequireSession loads the session named by the cookie into Locals.
// No cookie or no record is not an error: the caller goes back to the entry page.
func RequireSession(svc *sessionService.TestSessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Redirect(EntryPath, fiber.StatusFound)
		}

		m, err := svc.Find(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, sessionService.ErrSessionNotFound) {
				return c.Redirect(EntryPath, fiber.StatusFound)
			}
			log.Printf("[SESSION] lookup failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, helper.GenericFailureMessage)
		}

		c.Locals(LocSession, m)
		return c.Next()
	}
}

// Current returns the session stored by RequireSession.
func Current(c *fiber.Ctx) *sessionModel.TestSessionModel {
	m, _ := c.Locals(LocSession).(*sessionModel.TestSessionModel)
	return m
}
