package database

import (
	"log"

	"gorm.io/gorm"

	careModel "liferiver_backend/internals/features/care/model"
	lifeBulletinModel "liferiver_backend/internals/features/content/life_bulletin/model"
	sundayMessageModel "liferiver_backend/internals/features/content/sunday_message/model"
	weeklyVerseModel "liferiver_backend/internals/features/content/weekly_verse/model"
	dashboardModel "liferiver_backend/internals/features/dashboard/model"
	eventModel "liferiver_backend/internals/features/events/event/model"
	regModel "liferiver_backend/internals/features/events/registration/model"
	prayerModel "liferiver_backend/internals/features/prayers/model"
	siteModel "liferiver_backend/internals/features/sites/model"
	userModel "liferiver_backend/internals/features/users/user/model"
)

// Migrate menjalankan auto-migration seluruh tabel saat startup.
func Migrate(db *gorm.DB) error {
	log.Println("🛠 Menjalankan auto-migration...")
	return db.AutoMigrate(
		&siteModel.SiteModel{},
		&userModel.UserModel{},
		&eventModel.EventModel{},
		&regModel.RegistrationModel{},
		&prayerModel.PrayerModel{},
		&careModel.CareSubjectModel{},
		&careModel.CareLogModel{},
		&weeklyVerseModel.WeeklyVerseModel{},
		&sundayMessageModel.SundayMessageModel{},
		&lifeBulletinModel.LifeBulletinModel{},
		&dashboardModel.DashboardSummaryModel{},
	)
}
