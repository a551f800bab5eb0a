package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/content/sunday_message/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func SundayMessageRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	msgCtrl := controller.NewSundayMessageController(db)

	messages := app.Group("/sunday-messages")

	// === PUBLIC ===
	messages.Get("/latest", msgCtrl.GetLatest)
	messages.Get("/public", msgCtrl.GetPublicMessages)

	// === STAFF (site-scoped per handler) ===
	staff := messages.Group("",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola khotbah"), constants.StaffRoles...),
	)
	staff.Get("/", msgCtrl.GetMessages)
	staff.Post("/", msgCtrl.CreateMessage)
	staff.Patch("/:id", msgCtrl.UpdateMessage)
	staff.Delete("/:id", msgCtrl.DeleteMessage)
}
