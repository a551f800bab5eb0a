package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/constants"
	"liferiver_backend/internals/features/content/life_bulletin/dto"
	"liferiver_backend/internals/features/content/life_bulletin/model"
	helper "liferiver_backend/internals/helpers"
)

var validateLifeBulletin = validator.New()

var lifeBulletinSortColumns = map[string]string{
	"bulletin_date": "bulletin_date",
	"created_at":    "created_at",
}

type LifeBulletinController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewLifeBulletinController(db *gorm.DB, cfg *configs.Config) *LifeBulletinController {
	return &LifeBulletinController{DB: db, Cfg: cfg}
}

// siteID boleh kosong (public) atau dipaksa ke site caller (staff).
func (ctrl *LifeBulletinController) listBulletins(c *fiber.Ctx, siteID string) ([]model.LifeBulletinModel, error) {
	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LifeBulletinModel{})

	if siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(content) LIKE ? OR LOWER(video_url) LIKE ?", like, like)
	}

	order := helper.SafeSortClause(lifeBulletinSortColumns, c.Query("sort_by"), "bulletin_date", c.Query("sort_dir"))

	var bulletins []model.LifeBulletinModel
	err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&bulletins).Error
	return bulletins, err
}

func toDTOs(bulletins []model.LifeBulletinModel) []dto.LifeBulletinDTO {
	resp := make([]dto.LifeBulletinDTO, 0, len(bulletins))
	for _, b := range bulletins {
		resp = append(resp, dto.ToLifeBulletinDTO(b))
	}
	return resp
}

// =======================
// 📄 Buletin terbaru, hanya yang Published (public)
// =======================
func (ctrl *LifeBulletinController) GetLatest(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 10)
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.LifeBulletinModel{}).
		Where("status = ?", model.StatusPublished)
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}

	var bulletins []model.LifeBulletinModel
	if err := q.Order("bulletin_date DESC, created_at DESC").
		Limit(paging.Limit).
		Find(&bulletins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bulletins")
	}
	return helper.JsonList(c, "", toDTOs(bulletins), nil)
}

// =======================
// 📄 List buletin (public)
// =======================
func (ctrl *LifeBulletinController) GetPublicBulletins(c *fiber.Ctx) error {
	bulletins, err := ctrl.listBulletins(c, c.Query("site_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bulletins")
	}
	return helper.JsonList(c, "", toDTOs(bulletins), nil)
}

// =======================
// 📄 List buletin (staff, dipaksa ke site caller)
// =======================
func (ctrl *LifeBulletinController) GetBulletins(c *fiber.Ctx) error {
	callerSite, ok := helper.GetSiteID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
	bulletins, err := ctrl.listBulletins(c, callerSite.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bulletins")
	}
	return helper.JsonList(c, "", toDTOs(bulletins), nil)
}

// =======================
// ➕ Create buletin (staff, site-scoped)
// =======================
func (ctrl *LifeBulletinController) CreateBulletin(c *fiber.Ctx) error {
	var body dto.CreateLifeBulletinRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLifeBulletin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != body.SiteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	bulletinDate, err := time.Parse(dto.BulletinDateLayout, body.BulletinDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid bulletin_date")
	}

	bulletin := model.LifeBulletinModel{
		SiteID:       body.SiteID,
		BulletinDate: bulletinDate,
		Content:      body.Content,
		VideoURL:     body.VideoURL,
	}
	if body.Status != nil {
		bulletin.Status = *body.Status
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&bulletin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create bulletin")
	}
	return helper.JsonCreated(c, "Bulletin created", dto.ToLifeBulletinDTO(bulletin))
}

func (ctrl *LifeBulletinController) loadScopedBulletin(c *fiber.Ctx, id string) (*model.LifeBulletinModel, int, string) {
	var bulletin model.LifeBulletinModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&bulletin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, "Life bulletin not found"
		}
		return nil, fiber.StatusInternalServerError, "Internal Server Error"
	}
	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != bulletin.SiteID {
		return nil, fiber.StatusForbidden, "Forbidden"
	}
	return &bulletin, 0, ""
}

// =======================
// ✏️ Update buletin (staff, site-scoped)
// =======================
func (ctrl *LifeBulletinController) UpdateBulletin(c *fiber.Ctx) error {
	var body dto.UpdateLifeBulletinRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLifeBulletin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	bulletin, code, msg := ctrl.loadScopedBulletin(c, c.Params("id"))
	if bulletin == nil {
		return helper.JsonError(c, code, msg)
	}

	if body.BulletinDate != nil {
		bulletinDate, err := time.Parse(dto.BulletinDateLayout, *body.BulletinDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid bulletin_date")
		}
		bulletin.BulletinDate = bulletinDate
	}
	if body.Content != nil {
		bulletin.Content = *body.Content
	}
	if body.VideoURL != nil {
		bulletin.VideoURL = body.VideoURL
	}
	if body.Status != nil {
		bulletin.Status = *body.Status
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(bulletin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update bulletin")
	}
	return helper.JsonUpdated(c, "Bulletin updated", dto.ToLifeBulletinDTO(*bulletin))
}

// =======================
// 🎬 Upload video (staff, multipart)
// =======================
func (ctrl *LifeBulletinController) UploadVideo(c *fiber.Ctx) error {
	bulletin, code, msg := ctrl.loadScopedBulletin(c, c.Params("id"))
	if bulletin == nil {
		return helper.JsonError(c, code, msg)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	contentType := file.Header.Get("Content-Type")
	if _, ok := constants.AllowedVideoTypes[contentType]; !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported file type")
	}

	ext := constants.NormalizeVideoExt(file.Filename)
	videoDir := filepath.Join(ctrl.Cfg.StaticDir, "life-bulletins")
	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	filename := fmt.Sprintf("%s-%s%s", bulletin.ID, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	if err := c.SaveFile(file, filepath.Join(videoDir, filename)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	videoURL := "/static/life-bulletins/" + filename
	bulletin.VideoURL = &videoURL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(bulletin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update bulletin")
	}
	return helper.JsonUpdated(c, "Video uploaded", dto.ToLifeBulletinDTO(*bulletin))
}

// =======================
// 🗑️ Delete buletin (staff, site-scoped)
// =======================
func (ctrl *LifeBulletinController) DeleteBulletin(c *fiber.Ctx) error {
	bulletin, code, msg := ctrl.loadScopedBulletin(c, c.Params("id"))
	if bulletin == nil {
		return helper.JsonError(c, code, msg)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(bulletin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete bulletin")
	}
	return helper.JsonDeleted(c, "Bulletin deleted", fiber.Map{"id": bulletin.ID})
}
