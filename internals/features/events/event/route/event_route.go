package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/events/event/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func EventRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	eventCtrl := controller.NewEventController(db, cfg)

	events := app.Group("/events")

	// === PUBLIC ===
	events.Get("/", eventCtrl.GetEvents)

	// === STAFF ===
	staff := events.Group("",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kelola event"), constants.StaffRoles...),
	)
	staff.Post("/", eventCtrl.CreateEvent)
	staff.Patch("/:id", eventCtrl.UpdateEvent)
	staff.Post("/:id/poster", eventCtrl.UploadPoster)
	staff.Delete("/:id", eventCtrl.DeleteEvent)
}
