package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/features/users/auth/controller"
	"liferiver_backend/internals/middlewares"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	authCtrl := controller.NewAuthController(db, cfg)

	auth := app.Group("/auth")

	// === PUBLIC ===
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), authCtrl.GoogleLogin)

	// === AUTHENTICATED ===
	me := auth.Group("", authMiddleware.AuthMiddleware(db, cfg))
	me.Get("/me", authCtrl.Me)
	me.Patch("/me", authCtrl.UpdateMe)
	me.Post("/change-password", authCtrl.ChangePassword)
}
