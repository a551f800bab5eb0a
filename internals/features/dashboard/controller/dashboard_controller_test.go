package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/features/dashboard/dto"
	"liferiver_backend/internals/features/dashboard/model"
	"liferiver_backend/internals/features/dashboard/route"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
)

func newDashboardTestApp(t *testing.T) (*fiber.App, *gorm.DB, *configs.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.DashboardSummaryModel{}))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTExpires: time.Hour}
	app := fiber.New()
	route.DashboardRoutes(app, db, cfg)
	return app, db, cfg
}

func seedMember(t *testing.T, db *gorm.DB, email string) userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword("rahasia-123")
	require.NoError(t, err)
	user := userModel.UserModel{
		Email:        email,
		PasswordHash: hash,
		Role:         "Member",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func getSummary(t *testing.T, app *fiber.App, token string) (map[string]any, int) {
	t.Helper()
	req := httptest.NewRequest("GET", "/dashboard/summary", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope, resp.StatusCode
}

func TestDashboardFallbackWhenAbsent(t *testing.T) {
	app, db, cfg := newDashboardTestApp(t)
	member := seedMember(t, db, "jemaat@example.com")

	token, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)

	envelope, code := getSummary(t, app, token)
	require.Equal(t, fiber.StatusOK, code)

	data := envelope["data"].(map[string]any)
	verse := data["daily_verse"].(map[string]any)
	assert.Equal(t, dto.FallbackSummary().DailyVerse.Reference, verse["reference"])
}

func TestDashboardStoredSnapshot(t *testing.T) {
	app, db, cfg := newDashboardTestApp(t)
	member := seedMember(t, db, "jemaat@example.com")

	stored := dto.FallbackSummary()
	stored.DailyVerse = dto.DailyVerse{Text: "Bersukacitalah senantiasa.", Reference: "1 Tesalonika 5:16"}
	stored.GroupName = "Komsel Efrata"
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.DashboardSummaryModel{
		UserID: member.ID,
		Data:   datatypes.JSON(raw),
	}).Error)

	token, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)

	envelope, code := getSummary(t, app, token)
	require.Equal(t, fiber.StatusOK, code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "1 Tesalonika 5:16", data["daily_verse"].(map[string]any)["reference"])
	assert.Equal(t, "Komsel Efrata", data["group_name"])
}

func TestDashboardMalformedSnapshotFallsBack(t *testing.T) {
	app, db, cfg := newDashboardTestApp(t)
	member := seedMember(t, db, "jemaat@example.com")

	// JSON valid tapi skema tidak lengkap → fallback diam-diam
	require.NoError(t, db.Create(&model.DashboardSummaryModel{
		UserID: member.ID,
		Data:   datatypes.JSON([]byte(`{"foo":"bar"}`)),
	}).Error)

	token, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)

	envelope, code := getSummary(t, app, token)
	require.Equal(t, fiber.StatusOK, code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, dto.FallbackSummary().DailyVerse.Reference, data["daily_verse"].(map[string]any)["reference"])

	// tanpa token → 401
	_, code = getSummary(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
