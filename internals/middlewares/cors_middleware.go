package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"quizku_backend/internals/configs"
)

// CorsMiddleware allows the configured origins with credentials (the session cookie).
func CorsMiddleware() fiber.Handler {
	const fallback = "http://localhost:3000,http://127.0.0.1:5500"

	origins := []string{}
	for _, o := range strings.Split(configs.GetEnv("CORS_ALLOW_ORIGINS", fallback), ",") {
		// "*" cannot be combined with credentials
		if o = strings.TrimSpace(o); o != "" && o != "*" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = strings.Split(fallback, ",")
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	})
}
