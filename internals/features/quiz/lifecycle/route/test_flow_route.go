package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/features/quiz/lifecycle/controller"
	middlewares "quizku_backend/internals/middlewares"
	sessionMW "quizku_backend/internals/middlewares/session"
)

// Pages and session entry points, no cookie required.
func TestFlowPublicRoutes(r fiber.Router, db *gorm.DB, cfg configs.QuizConfig) *controller.TestFlowController {
	ctl := controller.NewTestFlowController(db, cfg)

	r.Get("/", func(c *fiber.Ctx) error { return c.Redirect(sessionMW.EntryPath, fiber.StatusFound) })
	r.Get("/start", ctl.Start)
	r.Get("/begin-test", ctl.BeginTest)
	r.Get("/thankyou", ctl.ThankYou)
	r.Get("/reset", ctl.Reset)
	r.Get("/hard-reset", middlewares.HardResetRateLimiter(), ctl.HardReset)

	return ctl
}

// Everything that needs a live session behind the cookie.
func TestFlowSessionRoutes(r fiber.Router, ctl *controller.TestFlowController) {
	guard := sessionMW.RequireSession(ctl.Sessions, ctl.Cfg.CookieName)

	r.Get("/test", guard, ctl.Test)
	r.Post("/submit-answer", guard, ctl.SubmitAnswer)
	r.Post("/submit", guard, ctl.Submit)
	r.Get("/answers.csv", guard, ctl.AnswersCSV)
	r.Get("/result", guard, ctl.Result)
}
