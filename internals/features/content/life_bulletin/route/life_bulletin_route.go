package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/content/life_bulletin/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func LifeBulletinRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	bulletinCtrl := controller.NewLifeBulletinController(db, cfg)

	bulletins := app.Group("/life-bulletins")

	// === PUBLIC ===
	bulletins.Get("/latest", bulletinCtrl.GetLatest)
	bulletins.Get("/public", bulletinCtrl.GetPublicBulletins)

	// === STAFF (site-scoped per handler) ===
	staff := bulletins.Group("",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola buletin"), constants.StaffRoles...),
	)
	staff.Get("/", bulletinCtrl.GetBulletins)
	staff.Post("/", bulletinCtrl.CreateBulletin)
	staff.Patch("/:id", bulletinCtrl.UpdateBulletin)
	staff.Post("/:id/video", bulletinCtrl.UploadVideo)
	staff.Delete("/:id", bulletinCtrl.DeleteBulletin)
}
