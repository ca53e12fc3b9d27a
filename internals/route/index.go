package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	catalogService "quizku_backend/internals/features/quiz/catalog/service"
	routeDetails "quizku_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.QuizConfig) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Printf("[INFO] Serving question assets from %s...", cfg.QuestionsRoot)
	app.Static(catalogService.AssetURLPrefix, cfg.QuestionsRoot, fiber.Static{MaxAge: 300})

	log.Println("[INFO] Mounting Quiz routes...")
	routeDetails.QuizRoutes(app, db, cfg)
}
