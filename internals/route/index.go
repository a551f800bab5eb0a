// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	careRoute "liferiver_backend/internals/features/care/route"
	lifeBulletinRoute "liferiver_backend/internals/features/content/life_bulletin/route"
	sundayMessageRoute "liferiver_backend/internals/features/content/sunday_message/route"
	weeklyVerseRoute "liferiver_backend/internals/features/content/weekly_verse/route"
	dashboardRoute "liferiver_backend/internals/features/dashboard/route"
	eventRoute "liferiver_backend/internals/features/events/event/route"
	registrationRoute "liferiver_backend/internals/features/events/registration/route"
	prayerRoute "liferiver_backend/internals/features/prayers/route"
	adminUserRoute "liferiver_backend/internals/features/users/admin/route"
	authRoute "liferiver_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, cfg)

	log.Println("[INFO] Setting up AdminUserRoutes...")
	adminUserRoute.AdminUserRoutes(app, db, cfg)

	// ===================== EVENTS =====================
	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(app, db, cfg)

	log.Println("[INFO] Setting up RegistrationRoutes...")
	registrationRoute.RegistrationRoutes(app, db, cfg)

	// ===================== COMMUNITY =====================
	log.Println("[INFO] Setting up PrayerRoutes...")
	prayerRoute.PrayerRoutes(app, db, cfg)

	log.Println("[INFO] Setting up CareRoutes...")
	careRoute.CareRoutes(app, db, cfg)

	// ===================== CONTENT =====================
	log.Println("[INFO] Setting up WeeklyVerseRoutes...")
	weeklyVerseRoute.WeeklyVerseRoutes(app, db, cfg)

	log.Println("[INFO] Setting up SundayMessageRoutes...")
	sundayMessageRoute.SundayMessageRoutes(app, db, cfg)

	log.Println("[INFO] Setting up LifeBulletinRoutes...")
	lifeBulletinRoute.LifeBulletinRoutes(app, db, cfg)

	// ===================== DASHBOARD =====================
	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(app, db, cfg)
}
