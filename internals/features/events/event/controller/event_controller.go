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
	"liferiver_backend/internals/features/events/event/dto"
	"liferiver_backend/internals/features/events/event/model"
	helper "liferiver_backend/internals/helpers"
)

var validateEvent = validator.New()

// Whitelist kolom sort; key tak dikenal jatuh ke start_at.
var eventSortColumns = map[string]string{
	"start_at":   "start_at",
	"created_at": "created_at",
	"title":      "title",
}

type EventController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewEventController(db *gorm.DB, cfg *configs.Config) *EventController {
	return &EventController{DB: db, Cfg: cfg}
}

// =======================
// 📄 List events (public)
// Query: ?site_id=&status=&q=&upcoming_only=&sort_by=&sort_dir=&limit=&offset=
// =======================
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 0)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.EventModel{})

	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if c.Query("upcoming_only") == "true" {
		q = q.Where("start_at >= ?", time.Now().UTC())
	}

	order := helper.SafeSortClause(eventSortColumns, c.Query("sort_by"), "start_at", c.Query("sort_dir", "asc"))

	var events []model.EventModel
	if err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	resp := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventDTO(e))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ➕ Create event (staff)
// =======================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	event := model.EventModel{
		SiteID:          body.SiteID,
		Title:           body.Title,
		Description:     body.Description,
		StartAt:         body.StartAt,
		EndAt:           body.EndAt,
		Capacity:        body.Capacity,
		WaitlistEnabled: body.WaitlistEnabled,
	}
	if body.Status != nil {
		event.Status = *body.Status
	}
	if userID, ok := helper.GetUserID(c); ok {
		event.CreatedBy = &userID
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(event))
}

// =======================
// ✏️ Update event (staff, partial)
// =======================
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var event model.EventModel
	if err := db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	body.Apply(&event)

	if err := db.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(event))
}

// =======================
// 🖼 Upload poster (staff, multipart)
// =======================
func (ctrl *EventController) UploadPoster(c *fiber.Ctx) error {
	id := c.Params("id")

	db := ctrl.DB.WithContext(c.UserContext())
	var event model.EventModel
	if err := db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	contentType := file.Header.Get("Content-Type")
	if _, ok := constants.AllowedPosterTypes[contentType]; !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported file type")
	}

	ext := constants.NormalizePosterExt(file.Filename)
	posterDir := filepath.Join(ctrl.Cfg.StaticDir, "posters")
	if err := os.MkdirAll(posterDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	filename := fmt.Sprintf("%s-%s%s", id, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	if err := c.SaveFile(file, filepath.Join(posterDir, filename)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	posterURL := "/static/posters/" + filename
	event.PosterURL = &posterURL
	if err := db.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Poster uploaded", dto.ToEventDTO(event))
}

// =======================
// 🗑️ Delete event (staff)
// =======================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.EventModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"id": id})
}
