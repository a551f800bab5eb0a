package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/content/sunday_message/dto"
	"liferiver_backend/internals/features/content/sunday_message/model"
	helper "liferiver_backend/internals/helpers"
)

var validateSundayMessage = validator.New()

var sundayMessageSortColumns = map[string]string{
	"message_date": "message_date",
	"created_at":   "created_at",
	"title":        "title",
}

type SundayMessageController struct {
	DB *gorm.DB
}

func NewSundayMessageController(db *gorm.DB) *SundayMessageController {
	return &SundayMessageController{DB: db}
}

func (ctrl *SundayMessageController) listMessages(c *fiber.Ctx) ([]model.SundayMessageModel, error) {
	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SundayMessageModel{})

	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(speaker) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}

	order := helper.SafeSortClause(sundayMessageSortColumns, c.Query("sort_by"), "message_date", c.Query("sort_dir"))

	var messages []model.SundayMessageModel
	err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&messages).Error
	return messages, err
}

func toDTOs(messages []model.SundayMessageModel) []dto.SundayMessageDTO {
	resp := make([]dto.SundayMessageDTO, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToSundayMessageDTO(m))
	}
	return resp
}

// =======================
// 📄 Khotbah terbaru (public)
// =======================
func (ctrl *SundayMessageController) GetLatest(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 20)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SundayMessageModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}

	var messages []model.SundayMessageModel
	if err := q.Order("message_date DESC, created_at DESC").
		Limit(paging.Limit).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}
	return helper.JsonList(c, "", toDTOs(messages), nil)
}

// =======================
// 📄 List khotbah (public)
// =======================
func (ctrl *SundayMessageController) GetPublicMessages(c *fiber.Ctx) error {
	messages, err := ctrl.listMessages(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}
	return helper.JsonList(c, "", toDTOs(messages), nil)
}

// =======================
// 📄 List khotbah (staff, site-scoped)
// =======================
func (ctrl *SundayMessageController) GetMessages(c *fiber.Ctx) error {
	siteID := c.Query("site_id")
	if siteID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "site_id is required")
	}
	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite.String() != siteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	messages, err := ctrl.listMessages(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}
	return helper.JsonList(c, "", toDTOs(messages), nil)
}

// =======================
// ➕ Create khotbah (staff, site-scoped)
// =======================
func (ctrl *SundayMessageController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateSundayMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSundayMessage.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != body.SiteID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	messageDate, err := time.Parse(dto.MessageDateLayout, body.MessageDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message_date")
	}

	message := model.SundayMessageModel{
		SiteID:      body.SiteID,
		MessageDate: messageDate,
		Title:       body.Title,
		Speaker:     body.Speaker,
		YoutubeURL:  body.YoutubeURL,
		Description: body.Description,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create message")
	}
	return helper.JsonCreated(c, "Message created", dto.ToSundayMessageDTO(message))
}

func (ctrl *SundayMessageController) loadScopedMessage(c *fiber.Ctx, id string) (*model.SundayMessageModel, int, string) {
	var message model.SundayMessageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, "Message not found"
		}
		return nil, fiber.StatusInternalServerError, "Internal Server Error"
	}
	callerSite, ok := helper.GetSiteID(c)
	if !ok || callerSite != message.SiteID {
		return nil, fiber.StatusForbidden, "Forbidden"
	}
	return &message, 0, ""
}

// =======================
// ✏️ Update khotbah (staff, site-scoped)
// =======================
func (ctrl *SundayMessageController) UpdateMessage(c *fiber.Ctx) error {
	var body dto.UpdateSundayMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSundayMessage.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	message, code, msg := ctrl.loadScopedMessage(c, c.Params("id"))
	if message == nil {
		return helper.JsonError(c, code, msg)
	}

	if body.MessageDate != nil {
		messageDate, err := time.Parse(dto.MessageDateLayout, *body.MessageDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message_date")
		}
		message.MessageDate = messageDate
	}
	if body.Title != nil {
		message.Title = *body.Title
	}
	if body.Speaker != nil {
		message.Speaker = body.Speaker
	}
	if body.YoutubeURL != nil {
		message.YoutubeURL = *body.YoutubeURL
	}
	if body.Description != nil {
		message.Description = body.Description
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	return helper.JsonUpdated(c, "Message updated", dto.ToSundayMessageDTO(*message))
}

// =======================
// 🗑️ Delete khotbah (staff, site-scoped)
// =======================
func (ctrl *SundayMessageController) DeleteMessage(c *fiber.Ctx) error {
	message, code, msg := ctrl.loadScopedMessage(c, c.Params("id"))
	if message == nil {
		return helper.JsonError(c, code, msg)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"id": message.ID})
}
