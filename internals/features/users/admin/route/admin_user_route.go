package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/users/admin/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func AdminUserRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	userCtrl := controller.NewAdminUserController(db)

	admin := app.Group("/admin/users",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola user"), constants.StaffRoles...),
	)

	admin.Get("/", userCtrl.GetUsers)
	admin.Patch("/:id", userCtrl.UpdateUser)
	admin.Post("/:id/reset-password", userCtrl.ResetPassword)
}
