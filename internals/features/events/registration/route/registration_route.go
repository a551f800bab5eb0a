package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/events/registration/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func RegistrationRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	regCtrl := controller.NewRegistrationController(db)

	regs := app.Group("/registrations", authMiddleware.AuthMiddleware(db, cfg))

	// === ADMIN (staff) — didaftarkan sebelum route :id ===
	admin := regs.Group("/admin",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola registrasi"), constants.StaffRoles...),
	)
	admin.Get("/export", regCtrl.ExportRegistrations)
	admin.Get("/", regCtrl.GetAdminRegistrations)
	admin.Patch("/:id", regCtrl.UpdateAdminRegistration)
	admin.Delete("/:id", regCtrl.DeleteAdminRegistration)

	// === SELF SERVICE ===
	regs.Get("/", regCtrl.GetMyRegistrations)
	regs.Post("/", regCtrl.CreateRegistration)
	regs.Patch("/:id", regCtrl.UpdateMyRegistration)
}
