package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/care/controller"
	authMiddleware "liferiver_backend/internals/middlewares/auth"
)

func CareRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	careCtrl := controller.NewCareController(db)

	care := app.Group("/care",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(constants.RoleErrorLeader("data pastoral"), constants.StaffAndLeader...),
	)

	care.Get("/subjects", careCtrl.GetSubjects)
	care.Post("/subjects", careCtrl.CreateSubject)
	care.Get("/subjects/:id/logs", careCtrl.GetLogs)
	care.Post("/logs", careCtrl.CreateLog)
}
