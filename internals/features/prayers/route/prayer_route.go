package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/prayers/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func PrayerRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	prayerCtrl := controller.NewPrayerController(db)

	prayers := app.Group("/prayers")

	// === PUBLIC (hanya yang approved) ===
	prayers.Get("/", prayerCtrl.GetPrayers)

	// === AUTHENTICATED (semua role) ===
	prayers.Post("/", authMiddleware.AuthMiddleware(db, cfg), prayerCtrl.CreatePrayer)

	// === STAFF & LEADER ===
	// Guard dipasang per-route, bukan lewat Group(""), supaya tidak ikut
	// menjaga POST / milik jemaat biasa.
	moderationGuard := authMiddleware.OnlyRoles(constants.RoleErrorLeader("moderasi doa"), constants.StaffAndLeader...)
	prayers.Get("/admin", authMiddleware.AuthMiddleware(db, cfg), moderationGuard, prayerCtrl.GetAdminPrayers)
	prayers.Patch("/:id", authMiddleware.AuthMiddleware(db, cfg), moderationGuard, prayerCtrl.UpdatePrayerStatus)
}
