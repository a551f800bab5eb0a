package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/dashboard/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func DashboardRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	dashCtrl := controller.NewDashboardController(db)

	dashboard := app.Group("/dashboard",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles("Akses dashboard butuh login", constants.AllRoles...),
	)
	dashboard.Get("/summary", dashCtrl.GetSummary)
}
