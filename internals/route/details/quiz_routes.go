package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	TestFlowRoutes "quizku_backend/internals/features/quiz/lifecycle/route"
)

// Quiz pages, the answer API and the resets all live at the root.
func QuizRoutes(app *fiber.App, db *gorm.DB, cfg configs.QuizConfig) {
	ctl := TestFlowRoutes.TestFlowPublicRoutes(app, db, cfg)
	TestFlowRoutes.TestFlowSessionRoutes(app, ctl)
}
