package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/care/dto"
	"liferiver_backend/internals/features/care/model"
	helper "liferiver_backend/internals/helpers"
)

var validateCare = validator.New()

var careSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

type CareController struct {
	DB *gorm.DB
}

func NewCareController(db *gorm.DB) *CareController {
	return &CareController{DB: db}
}

// =======================
// 📄 List care subjects
// =======================
func (ctrl *CareController) GetSubjects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 0)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CareSubjectModel{})

	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	order := helper.SafeSortClause(careSortColumns, c.Query("sort_by"), "created_at", c.Query("sort_dir"))

	var subjects []model.CareSubjectModel
	if err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve care subjects")
	}

	resp := make([]dto.CareSubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		resp = append(resp, dto.ToCareSubjectDTO(s))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ➕ Create care subject
// =======================
func (ctrl *CareController) CreateSubject(c *fiber.Ctx) error {
	var body dto.CreateCareSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCare.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	subject := model.CareSubjectModel{
		Name:   body.Name,
		SiteID: body.SiteID,
	}
	if body.SubjectType != nil {
		subject.SubjectType = *body.SubjectType
	}
	if body.Status != nil {
		subject.Status = *body.Status
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create care subject")
	}
	return helper.JsonCreated(c, "Care subject created", dto.ToCareSubjectDTO(subject))
}

// =======================
// 📄 List logs per subject
// =======================
func (ctrl *CareController) GetLogs(c *fiber.Ctx) error {
	subjectID := c.Params("id")

	var logs []model.CareLogModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve care logs")
	}

	resp := make([]dto.CareLogDTO, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.ToCareLogDTO(l))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ➕ Create care log
// =======================
func (ctrl *CareController) CreateLog(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateCareLogRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCare.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	log := model.CareLogModel{
		SubjectID:      body.SubjectID,
		CreatedBy:      &userID,
		Note:           body.Note,
		MoodScore:      body.MoodScore,
		SpiritualScore: body.SpiritualScore,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&log).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create care log")
	}
	return helper.JsonCreated(c, "Care log created", dto.ToCareLogDTO(log))
}
