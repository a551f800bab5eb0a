package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting:
// recovery paling luar supaya panic di middleware lain tetap tertangkap).
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg))
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
