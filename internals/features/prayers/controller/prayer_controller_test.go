package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/features/prayers/model"
	"liferiver_backend/internals/features/prayers/route"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
)

func newPrayerTestApp(t *testing.T) (*fiber.App, *gorm.DB, *configs.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.PrayerModel{}))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTExpires: time.Hour}
	app := fiber.New()
	route.PrayerRoutes(app, db, cfg)
	return app, db, cfg
}

func seedUserWithRole(t *testing.T, db *gorm.DB, email, role string) userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword("rahasia-123")
	require.NoError(t, err)
	user := userModel.UserModel{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func request(t *testing.T, app *fiber.App, method, target, token string, body any) (map[string]any, int) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope, resp.StatusCode
}

func seedPrayer(t *testing.T, db *gorm.DB, content, status string) {
	t.Helper()
	require.NoError(t, db.Create(&model.PrayerModel{
		Content: content,
		Status:  status,
	}).Error)
}

func TestPublicPrayersApprovedOnly(t *testing.T) {
	app, db, _ := newPrayerTestApp(t)
	seedPrayer(t, db, "Doa yang disetujui", model.StatusApproved)
	seedPrayer(t, db, "Masih menunggu", model.StatusPending)
	seedPrayer(t, db, "Sudah diarsip", model.StatusArchived)

	envelope, code := request(t, app, "GET", "/prayers", "", nil)
	require.Equal(t, fiber.StatusOK, code)

	data := envelope["data"].([]any)
	require.Len(t, data, 1)
	for _, item := range data {
		assert.Equal(t, model.StatusApproved, item.(map[string]any)["status"])
	}
}

func TestAdminPrayersAllStatuses(t *testing.T) {
	app, db, cfg := newPrayerTestApp(t)
	leader := seedUserWithRole(t, db, "pemimpin@example.com", "Leader")
	member := seedUserWithRole(t, db, "jemaat@example.com", "Member")
	seedPrayer(t, db, "Doa yang disetujui", model.StatusApproved)
	seedPrayer(t, db, "Masih menunggu", model.StatusPending)

	leaderToken, err := service.IssueAccessToken(cfg, leader.Email)
	require.NoError(t, err)
	envelope, code := request(t, app, "GET", "/prayers/admin", leaderToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, envelope["data"].([]any), 2)

	// member tidak boleh masuk daftar admin
	memberToken, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)
	_, code = request(t, app, "GET", "/prayers/admin", memberToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestCreateAndModeratePrayer(t *testing.T) {
	app, db, cfg := newPrayerTestApp(t)
	member := seedUserWithRole(t, db, "jemaat@example.com", "Member")
	leader := seedUserWithRole(t, db, "pemimpin@example.com", "Leader")

	memberToken, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)
	leaderToken, err := service.IssueAccessToken(cfg, leader.Email)
	require.NoError(t, err)

	// tanpa login → 401
	_, code := request(t, app, "POST", "/prayers", "", fiber.Map{"content": "Mohon dukungan doa"})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	envelope, code := request(t, app, "POST", "/prayers", memberToken, fiber.Map{
		"content": "Mohon dukungan doa untuk keluarga",
	})
	require.Equal(t, fiber.StatusCreated, code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, model.StatusPending, data["status"])
	assert.Equal(t, model.PrivacyGroup, data["privacy_level"])
	id := data["id"].(string)

	// member tidak boleh moderasi
	_, code = request(t, app, "PATCH", "/prayers/"+id, memberToken, fiber.Map{"status": "Approved"})
	assert.Equal(t, fiber.StatusForbidden, code)

	envelope, code = request(t, app, "PATCH", "/prayers/"+id, leaderToken, fiber.Map{"status": "Approved"})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, model.StatusApproved, envelope["data"].(map[string]any)["status"])

	// moderasi id tak dikenal → 404
	_, code = request(t, app, "PATCH", "/prayers/2bb0b1f0-0000-0000-0000-000000000000", leaderToken, fiber.Map{"status": "Archived"})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestPrayerSortFallback(t *testing.T) {
	app, db, _ := newPrayerTestApp(t)
	require.NoError(t, db.Create(&model.PrayerModel{
		Content:   "Doa populer",
		Status:    model.StatusApproved,
		AmenCount: 10,
	}).Error)
	require.NoError(t, db.Create(&model.PrayerModel{
		Content:   "Doa baru",
		Status:    model.StatusApproved,
		AmenCount: 1,
	}).Error)

	envelope, code := request(t, app, "GET", "/prayers?sort_by=amen_count&sort_dir=desc", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	data := envelope["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "Doa populer", data[0].(map[string]any)["content"])

	// kolom tak dikenal tidak pernah error
	_, code = request(t, app, "GET", "/prayers?sort_by=password_hash", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
}
