package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	eventModel "liferiver_backend/internals/features/events/event/model"
	"liferiver_backend/internals/features/events/registration/dto"
	"liferiver_backend/internals/features/events/registration/model"
	helper "liferiver_backend/internals/helpers"
)

var validateRegistration = validator.New()

const csvTimeLayout = "2006-01-02 15:04"

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// =======================
// 📄 List registrasi milik sendiri
// =======================
func (ctrl *RegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var regs []model.RegistrationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	resp := make([]dto.RegistrationDTO, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationDTO(r))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ➕ Create registrasi
// =======================
// Kapasitas & waitlist event TIDAK dicek di sini (mengikuti sistem asal).
// Duplikat (user, event) ditolak lewat pre-check, bukan unique constraint.
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var existing model.RegistrationModel
	err := db.Where("user_id = ? AND event_id = ?", userID, body.EventID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Registration already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	reg := model.RegistrationModel{
		EventID: body.EventID,
		UserID:  &userID,
	}
	if body.TicketCount != nil {
		reg.TicketCount = *body.TicketCount
	}
	if body.IsProxy != nil {
		reg.IsProxy = *body.IsProxy
	}
	if body.ProxyEntries != nil {
		reg.ProxyEntries = datatypes.NewJSONSlice(body.ProxyEntries)
	}

	if err := db.Create(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
	}
	return helper.JsonCreated(c, "Registration created", dto.ToRegistrationDTO(reg))
}

// =======================
// ✏️ Update registrasi milik sendiri
// =======================
func (ctrl *RegistrationController) UpdateMyRegistration(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id := c.Params("id")

	var body dto.UpdateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var reg model.RegistrationModel
	if err := db.First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if reg.UserID == nil || *reg.UserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your registration")
	}

	body.Apply(&reg)
	if err := db.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}
	return helper.JsonUpdated(c, "Registration updated", dto.ToRegistrationDTO(reg))
}

// adminRegistrationRow: hasil join untuk daftar admin & export CSV.
type adminRegistrationRow struct {
	ID           string
	EventID      string
	UserID       *string
	Status       string
	TicketCount  int
	IsProxy      bool
	ProxyEntries datatypes.JSONSlice[model.ProxyEntry] `gorm:"column:proxy_entries"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserFullName *string
	UserEmail    *string
	UserPhone    *string
	EventTitle   string
}

// queryAdminRows: predicate yang sama dipakai list admin & export
// (event_id wajib, q match nama/email user, filter status exact).
func (ctrl *RegistrationController) queryAdminRows(c *fiber.Ctx, eventID string) *gorm.DB {
	q := ctrl.DB.WithContext(c.UserContext()).
		Table("event_registrations").
		Select("event_registrations.*, users.full_name AS user_full_name, users.email AS user_email, users.phone AS user_phone, events.title AS event_title").
		Joins("JOIN events ON events.id = event_registrations.event_id").
		Joins("LEFT JOIN users ON users.id = event_registrations.user_id").
		Where("event_registrations.event_id = ?", eventID)

	if status := c.Query("status"); status != "" {
		q = q.Where("event_registrations.status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(users.full_name) LIKE ? OR LOWER(users.email) LIKE ?", like, like)
	}
	return q.Order("event_registrations.created_at DESC")
}

// =======================
// 📄 List registrasi per event (admin)
// =======================
func (ctrl *RegistrationController) GetAdminRegistrations(c *fiber.Ctx) error {
	eventID := c.Query("event_id")
	if eventID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id is required")
	}
	paging := helper.ResolvePaging(c, 50, 0)

	var rows []adminRegistrationRow
	if err := ctrl.queryAdminRows(c, eventID).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	resp := make([]dto.AdminRegistrationDTO, 0, len(rows))
	for _, row := range rows {
		entries := []model.ProxyEntry(row.ProxyEntries)
		if entries == nil {
			entries = []model.ProxyEntry{}
		}
		resp = append(resp, dto.AdminRegistrationDTO{
			ID:           row.ID,
			EventID:      row.EventID,
			UserID:       row.UserID,
			Status:       row.Status,
			TicketCount:  row.TicketCount,
			IsProxy:      row.IsProxy,
			ProxyEntries: entries,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
			UserFullName: row.UserFullName,
			UserEmail:    row.UserEmail,
			UserPhone:    row.UserPhone,
			EventTitle:   row.EventTitle,
		})
	}
	return helper.JsonList(c, "", resp, nil)
}

// loadScopedRegistration: ambil registrasi + cek site caller == site event
// induknya. Dicek per-handler (tidak disentralisasi), konsisten dengan
// site-scoping di konten lain.
func (ctrl *RegistrationController) loadScopedRegistration(c *fiber.Ctx, id string) (*model.RegistrationModel, int, string) {
	db := ctrl.DB.WithContext(c.UserContext())

	var reg model.RegistrationModel
	if err := db.First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, "Registration not found"
		}
		return nil, fiber.StatusInternalServerError, "Internal Server Error"
	}

	var event eventModel.EventModel
	if err := db.First(&event, "id = ?", reg.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, "Event not found"
		}
		return nil, fiber.StatusInternalServerError, "Internal Server Error"
	}

	siteID, ok := helper.GetSiteID(c)
	if !ok || event.SiteID == nil || *event.SiteID != siteID {
		return nil, fiber.StatusForbidden, "Site mismatch"
	}
	return &reg, 0, ""
}

// =======================
// ✏️ Update registrasi (admin, site-scoped)
// =======================
func (ctrl *RegistrationController) UpdateAdminRegistration(c *fiber.Ctx) error {
	var body dto.UpdateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	reg, code, msg := ctrl.loadScopedRegistration(c, c.Params("id"))
	if reg == nil {
		return helper.JsonError(c, code, msg)
	}

	body.Apply(reg)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}
	return helper.JsonUpdated(c, "Registration updated", dto.ToRegistrationDTO(*reg))
}

// =======================
// 🗑️ Delete registrasi (admin, site-scoped)
// =======================
func (ctrl *RegistrationController) DeleteAdminRegistration(c *fiber.Ctx) error {
	reg, code, msg := ctrl.loadScopedRegistration(c, c.Params("id"))
	if reg == nil {
		return helper.JsonError(c, code, msg)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}
	return helper.JsonDeleted(c, "Registration deleted", fiber.Map{"id": reg.ID})
}

// =======================
// 📤 Export CSV (admin)
// =======================
// Format mengikuti kebutuhan spreadsheet: prefix BOM UTF-8, nomor telepon
// diberi apostrof supaya tidak diubah jadi angka, satu baris per
// registrasi + satu baris per proxy entry (ticket_count kosong di
// baris proxy).
func (ctrl *RegistrationController) ExportRegistrations(c *fiber.Ctx) error {
	eventID := c.Query("event_id")
	if eventID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id is required")
	}

	var rows []adminRegistrationRow
	if err := ctrl.queryAdminRows(c, eventID).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export registrations")
	}

	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{
		"registration_id", "name", "email", "phone", "event", "status",
		"ticket_count", "proxy", "relation", "note", "registered_at",
	})

	for _, row := range rows {
		name := derefOrEmpty(row.UserFullName)
		email := derefOrEmpty(row.UserEmail)
		proxyFlag := "N"
		if row.IsProxy {
			proxyFlag = "Y"
		}
		registeredAt := row.CreatedAt.Format(csvTimeLayout)

		_ = w.Write([]string{
			row.ID,
			name,
			email,
			csvPhone(derefOrEmpty(row.UserPhone)),
			row.EventTitle,
			row.Status,
			strconv.Itoa(row.TicketCount),
			proxyFlag,
			"",
			"",
			registeredAt,
		})

		for _, entry := range row.ProxyEntries {
			_ = w.Write([]string{
				row.ID,
				entry.Name,
				"",
				csvPhone(entry.Phone),
				row.EventTitle,
				row.Status,
				"",
				"Y",
				entry.Relation,
				entry.Note,
				registeredAt,
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to export registrations")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations-`+eventID+`.csv"`)
	return c.Send(buf.Bytes())
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// csvPhone memberi prefix apostrof supaya spreadsheet tidak
// memformat ulang nomor telepon jadi angka.
func csvPhone(phone string) string {
	if phone == "" {
		return ""
	}
	return "'" + phone
}
