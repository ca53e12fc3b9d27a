package routes

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/utils"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	helper "quizku_backend/internals/helpers"
	middlewares "quizku_backend/internals/middlewares"
	"quizku_backend/internals/views"
)

const requestTimeout = 5 * time.Second

// NewApp builds the fiber app with its middleware chain and every route mounted.
func NewApp(db *gorm.DB, cfg configs.QuizConfig) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		Views:                   engine,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(requestID)

	middlewares.SetupMiddlewares(app)
	SetupRoutes(app, db, cfg)
	return app
}

// Request-ID plus a timeout guard on the user context.
func requestID(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = utils.UUID()
	}
	c.Set(fiber.HeaderXRequestID, id)
	c.Locals("reqid", id)

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	c.SetUserContext(ctx)

	err := c.Next()
	log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
