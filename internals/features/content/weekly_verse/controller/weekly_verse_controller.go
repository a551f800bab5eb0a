package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/content/weekly_verse/dto"
	"liferiver_backend/internals/features/content/weekly_verse/model"
	helper "liferiver_backend/internals/helpers"
)

var validateWeeklyVerse = validator.New()

type WeeklyVerseController struct {
	DB *gorm.DB
}

func NewWeeklyVerseController(db *gorm.DB) *WeeklyVerseController {
	return &WeeklyVerseController{DB: db}
}

// =======================
// 📖 Ayat minggu berjalan (public)
// =======================
// Ambil record terbaru dengan week_start <= hari ini. 404 kalau belum ada.
func (ctrl *WeeklyVerseController) GetCurrent(c *fiber.Ctx) error {
	siteID := c.Query("site_id")
	if siteID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "site_id is required")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var verse model.WeeklyVerseModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("site_id = ? AND week_start <= ?", siteID, today).
		Order("week_start DESC").
		First(&verse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Weekly verse not set")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", dto.ToWeeklyVerseDTO(verse))
}

// =======================
// 📄 List ayat per site (staff, site-scoped)
// =======================
func (ctrl *WeeklyVerseController) GetWeeklyVerses(c *fiber.Ctx) error {
	siteID := c.Query("site_id")
	if siteID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "site_id is required")
	}
	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite.String() != siteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var verses []model.WeeklyVerseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("site_id = ?", siteID).
		Order("week_start DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&verses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve weekly verses")
	}

	resp := make([]dto.WeeklyVerseDTO, 0, len(verses))
	for _, v := range verses {
		resp = append(resp, dto.ToWeeklyVerseDTO(v))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ➕ Create ayat mingguan (staff, site-scoped)
// =======================
func (ctrl *WeeklyVerseController) CreateWeeklyVerse(c *fiber.Ctx) error {
	var body dto.CreateWeeklyVerseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateWeeklyVerse.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != body.SiteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	weekStart, err := time.Parse(dto.WeekStartLayout, body.WeekStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week_start")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	// Pre-check duplikat (site, week_start). Tanpa unique constraint —
	// submit paralel bisa lolos dua-duanya (konsisten dengan registrasi).
	var existing model.WeeklyVerseModel
	err = db.Where("site_id = ? AND week_start = ?", body.SiteID, weekStart).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Weekly verse already exists for this week")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	verse := model.WeeklyVerseModel{
		SiteID:      body.SiteID,
		WeekStart:   weekStart,
		Text:        body.Text,
		Reference:   body.Reference,
		ReadingPlan: body.ReadingPlan,
	}
	if err := db.Create(&verse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create weekly verse")
	}
	return helper.JsonCreated(c, "Weekly verse created", dto.ToWeeklyVerseDTO(verse))
}

// =======================
// ✏️ Update ayat mingguan (staff, site-scoped)
// =======================
// Kalau week_start berubah, cek konflik (site, week) dulu.
func (ctrl *WeeklyVerseController) UpdateWeeklyVerse(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateWeeklyVerseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateWeeklyVerse.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var verse model.WeeklyVerseModel
	if err := db.First(&verse, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Weekly verse not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != verse.SiteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	if body.WeekStart != nil {
		weekStart, err := time.Parse(dto.WeekStartLayout, *body.WeekStart)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week_start")
		}
		if !weekStart.Equal(verse.WeekStart) {
			var conflict model.WeeklyVerseModel
			err = db.Where("site_id = ? AND week_start = ?", verse.SiteID, weekStart).
				First(&conflict).Error
			if err == nil {
				return helper.JsonError(c, fiber.StatusConflict, "Weekly verse already exists for this week")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			verse.WeekStart = weekStart
		}
	}
	if body.Text != nil {
		verse.Text = *body.Text
	}
	if body.Reference != nil {
		verse.Reference = *body.Reference
	}
	if body.ReadingPlan != nil {
		verse.ReadingPlan = body.ReadingPlan
	}

	if err := db.Save(&verse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update weekly verse")
	}
	return helper.JsonUpdated(c, "Weekly verse updated", dto.ToWeeklyVerseDTO(verse))
}

// =======================
// 🗑️ Delete ayat mingguan (staff, site-scoped)
// =======================
func (ctrl *WeeklyVerseController) DeleteWeeklyVerse(c *fiber.Ctx) error {
	id := c.Params("id")

	db := ctrl.DB.WithContext(c.UserContext())
	var verse model.WeeklyVerseModel
	if err := db.First(&verse, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Weekly verse not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != verse.SiteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	if err := db.Delete(&verse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete weekly verse")
	}
	return helper.JsonDeleted(c, "Weekly verse deleted", fiber.Map{"id": verse.ID})
}
