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
	"liferiver_backend/internals/features/care/model"
	"liferiver_backend/internals/features/care/route"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
)

func newCareTestApp(t *testing.T) (*fiber.App, *gorm.DB, *configs.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.CareSubjectModel{}, &model.CareLogModel{}))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTExpires: time.Hour}
	app := fiber.New()
	route.CareRoutes(app, db, cfg)
	return app, db, cfg
}

func seedCareUser(t *testing.T, db *gorm.DB, email, role string) userModel.UserModel {
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

func careRequest(t *testing.T, app *fiber.App, method, target, token string, body any) (map[string]any, int) {
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

func TestCareRoleGuard(t *testing.T) {
	app, db, cfg := newCareTestApp(t)
	member := seedCareUser(t, db, "jemaat@example.com", "Member")
	leader := seedCareUser(t, db, "pemimpin@example.com", "Leader")

	// tanpa login → 401
	_, code := careRequest(t, app, "GET", "/care/subjects", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	memberToken, err := service.IssueAccessToken(cfg, member.Email)
	require.NoError(t, err)
	_, code = careRequest(t, app, "GET", "/care/subjects", memberToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	leaderToken, err := service.IssueAccessToken(cfg, leader.Email)
	require.NoError(t, err)
	_, code = careRequest(t, app, "GET", "/care/subjects", leaderToken, nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestCareSubjectCreateAndList(t *testing.T) {
	app, db, cfg := newCareTestApp(t)
	leader := seedCareUser(t, db, "pemimpin@example.com", "Leader")
	token, err := service.IssueAccessToken(cfg, leader.Email)
	require.NoError(t, err)

	envelope, code := careRequest(t, app, "POST", "/care/subjects", token, fiber.Map{
		"name": "Keluarga Tan",
	})
	require.Equal(t, fiber.StatusCreated, code)
	created := envelope["data"].(map[string]any)
	assert.Equal(t, model.SubjectTypeMember, created["subject_type"])
	assert.Equal(t, model.SubjectStatusActive, created["status"])

	_, code = careRequest(t, app, "POST", "/care/subjects", token, fiber.Map{
		"name":         "Komunitas pemuda",
		"subject_type": "Community",
		"status":       "Paused",
	})
	require.Equal(t, fiber.StatusCreated, code)

	// nama wajib
	_, code = careRequest(t, app, "POST", "/care/subjects", token, fiber.Map{
		"subject_type": "Seeker",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	envelope, code = careRequest(t, app, "GET", "/care/subjects?status=Paused", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	data := envelope["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Komunitas pemuda", data[0].(map[string]any)["name"])

	envelope, code = careRequest(t, app, "GET", "/care/subjects?q=TAN", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	require.Len(t, envelope["data"].([]any), 1)
}

func TestCareLogRoundTrip(t *testing.T) {
	app, db, cfg := newCareTestApp(t)
	leader := seedCareUser(t, db, "pemimpin@example.com", "Leader")
	token, err := service.IssueAccessToken(cfg, leader.Email)
	require.NoError(t, err)

	subject := model.CareSubjectModel{Name: "Budi Santoso"}
	require.NoError(t, db.Create(&subject).Error)

	envelope, code := careRequest(t, app, "POST", "/care/logs", token, fiber.Map{
		"subject_id": subject.ID.String(),
		"note":       "Kunjungan rumah, kondisi membaik",
		"mood_score": 7,
	})
	require.Equal(t, fiber.StatusCreated, code)
	created := envelope["data"].(map[string]any)
	assert.Equal(t, leader.ID.String(), created["created_by"])
	assert.Equal(t, float64(7), created["mood_score"])

	// skor di luar rentang 1-10 ditolak
	_, code = careRequest(t, app, "POST", "/care/logs", token, fiber.Map{
		"subject_id":      subject.ID.String(),
		"note":            "Catatan kedua",
		"spiritual_score": 11,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	envelope, code = careRequest(t, app, "GET", "/care/subjects/"+subject.ID.String()+"/logs", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	logs := envelope["data"].([]any)
	require.Len(t, logs, 1)
	assert.Equal(t, "Kunjungan rumah, kondisi membaik", logs[0].(map[string]any)["note"])
}
