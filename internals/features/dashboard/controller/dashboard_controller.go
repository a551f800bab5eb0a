package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"liferiver_backend/internals/features/dashboard/dto"
	"liferiver_backend/internals/features/dashboard/model"
	helper "liferiver_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =======================
// 📊 Ringkasan dashboard per user
// =======================
// Snapshot tersimpan dipakai kalau parse & cek skema lolos; selain itu
// (belum ada, JSON rusak, field wajib kosong) jatuh ke payload statis.
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var record model.DashboardSummaryModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", dto.FallbackSummary())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var summary dto.DashboardSummaryDTO
	if err := sonic.Unmarshal(record.Data, &summary); err != nil || !summary.Valid() {
		return helper.JsonOK(c, "", dto.FallbackSummary())
	}
	return helper.JsonOK(c, "", summary)
}
