package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/prayers/dto"
	"liferiver_backend/internals/features/prayers/model"
	helper "liferiver_backend/internals/helpers"
)

var validatePrayer = validator.New()

var prayerSortColumns = map[string]string{
	"created_at": "created_at",
	"amen_count": "amen_count",
}

type PrayerController struct {
	DB *gorm.DB
}

func NewPrayerController(db *gorm.DB) *PrayerController {
	return &PrayerController{DB: db}
}

func (ctrl *PrayerController) listPrayers(c *fiber.Ctx, approvedOnly bool) error {
	paging := helper.ResolvePaging(c, 50, 0)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.PrayerModel{})

	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if approvedOnly {
		q = q.Where("status = ?", model.StatusApproved)
	}
	if privacy := c.Query("privacy_level"); privacy != "" {
		q = q.Where("privacy_level = ?", privacy)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(content) LIKE ?", like)
	}

	order := helper.SafeSortClause(prayerSortColumns, c.Query("sort_by"), "created_at", c.Query("sort_dir"))

	var prayers []model.PrayerModel
	if err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&prayers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve prayers")
	}

	resp := make([]dto.PrayerDTO, 0, len(prayers))
	for _, p := range prayers {
		resp = append(resp, dto.ToPrayerDTO(p))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 📄 List doa publik (approved saja)
// =======================
func (ctrl *PrayerController) GetPrayers(c *fiber.Ctx) error {
	return ctrl.listPrayers(c, true)
}

// =======================
// 📄 List doa admin (semua status)
// =======================
func (ctrl *PrayerController) GetAdminPrayers(c *fiber.Ctx) error {
	return ctrl.listPrayers(c, false)
}

// =======================
// ➕ Create doa
// =======================
func (ctrl *PrayerController) CreatePrayer(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreatePrayerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrayer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	prayer := model.PrayerModel{
		UserID:  &userID,
		SiteID:  body.SiteID,
		Content: body.Content,
	}
	if body.PrivacyLevel != nil {
		prayer.PrivacyLevel = *body.PrivacyLevel
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&prayer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create prayer")
	}
	return helper.JsonCreated(c, "Prayer created", dto.ToPrayerDTO(prayer))
}

// =======================
// ✏️ Moderasi status doa (staff & leader)
// =======================
func (ctrl *PrayerController) UpdatePrayerStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.PrayerStatusUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrayer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var prayer model.PrayerModel
	if err := db.First(&prayer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Prayer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	prayer.Status = body.Status
	if err := db.Save(&prayer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer")
	}
	return helper.JsonUpdated(c, "Prayer updated", dto.ToPrayerDTO(prayer))
}
