package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/content/weekly_verse/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func WeeklyVerseRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	verseCtrl := controller.NewWeeklyVerseController(db)

	verses := app.Group("/weekly-verse")

	// === PUBLIC ===
	verses.Get("/current", verseCtrl.GetCurrent)

	// === STAFF (site-scoped per handler) ===
	staff := verses.Group("",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola ayat mingguan"), constants.StaffRoles...),
	)
	staff.Get("/", verseCtrl.GetWeeklyVerses)
	staff.Post("/", verseCtrl.CreateWeeklyVerse)
	staff.Patch("/:id", verseCtrl.UpdateWeeklyVerse)
	staff.Delete("/:id", verseCtrl.DeleteWeeklyVerse)
}
