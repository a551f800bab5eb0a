package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/users/admin/dto"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	userModel "liferiver_backend/internals/features/users/user/model"
	helper "liferiver_backend/internals/helpers"
)

var validateAdminUser = validator.New()

// Whitelist kolom sort; key tak dikenal jatuh ke created_at.
var userSortColumns = map[string]string{
	"created_at": "created_at",
	"email":      "email",
	"full_name":  "full_name",
}

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// =======================
// 📄 List users (staff)
// =======================
func (ctrl *AdminUserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 0)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{})

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	if isActive := c.Query("is_active"); isActive != "" {
		q = q.Where("is_active = ?", isActive == "true")
	}

	order := helper.SafeSortClause(userSortColumns, c.Query("sort_by"), "created_at", c.Query("sort_dir"))

	var users []userModel.UserModel
	if err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToAdminUserDTO(u))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// ✏️ Update user (partial)
// =======================
func (ctrl *AdminUserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.AdminUserUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdminUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if body.FullName != nil {
		user.FullName = body.FullName
	}
	if body.Role != nil {
		user.Role = *body.Role
	}
	if body.SiteID != nil {
		user.SiteID = body.SiteID
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}

	if err := db.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated", dto.ToAdminUserDTO(user))
}

// =======================
// 🔒 Reset password (staff)
// =======================
func (ctrl *AdminUserController) ResetPassword(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.AdminResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdminUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hash, err := authHelper.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.PasswordHash = hash

	if err := db.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password reset", dto.ToAdminUserDTO(user))
}
