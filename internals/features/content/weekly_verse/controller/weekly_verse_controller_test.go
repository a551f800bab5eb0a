package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/features/content/weekly_verse/model"
	"liferiver_backend/internals/features/content/weekly_verse/route"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
)

func newVerseTestApp(t *testing.T) (*fiber.App, *gorm.DB, *configs.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.WeeklyVerseModel{}))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTExpires: time.Hour}
	app := fiber.New()
	route.WeeklyVerseRoutes(app, db, cfg)
	return app, db, cfg
}

func seedStaffForSite(t *testing.T, db *gorm.DB, email string, siteID uuid.UUID) userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword("rahasia-123")
	require.NoError(t, err)
	user := userModel.UserModel{
		Email:        email,
		PasswordHash: hash,
		Role:         "BranchStaff",
		SiteID:       &siteID,
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

func versePayload(siteID uuid.UUID, weekStart string) fiber.Map {
	return fiber.Map{
		"site_id":    siteID,
		"week_start": weekStart,
		"text":       "Tuhan adalah gembalaku",
		"reference":  "Mazmur 23:1",
	}
}

// Matriks konflik (site, week_start): duplikat ditolak, kombinasi lain lolos.
func TestCreateWeeklyVerseConflictMatrix(t *testing.T) {
	app, db, cfg := newVerseTestApp(t)
	siteA := uuid.New()
	siteB := uuid.New()
	staffA := seedStaffForSite(t, db, "staf-a@example.com", siteA)
	staffB := seedStaffForSite(t, db, "staf-b@example.com", siteB)

	tokenA, err := service.IssueAccessToken(cfg, staffA.Email)
	require.NoError(t, err)
	tokenB, err := service.IssueAccessToken(cfg, staffB.Email)
	require.NoError(t, err)

	_, code := request(t, app, "POST", "/weekly-verse", tokenA, versePayload(siteA, "2026-09-07"))
	require.Equal(t, fiber.StatusCreated, code)

	// site sama + minggu sama → konflik
	_, code = request(t, app, "POST", "/weekly-verse", tokenA, versePayload(siteA, "2026-09-07"))
	assert.Equal(t, fiber.StatusConflict, code)

	// site sama + minggu beda → sukses
	_, code = request(t, app, "POST", "/weekly-verse", tokenA, versePayload(siteA, "2026-09-14"))
	assert.Equal(t, fiber.StatusCreated, code)

	// site beda + minggu sama → sukses
	_, code = request(t, app, "POST", "/weekly-verse", tokenB, versePayload(siteB, "2026-09-07"))
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestUpdateWeeklyVerseWeekChangeConflict(t *testing.T) {
	app, db, cfg := newVerseTestApp(t)
	siteA := uuid.New()
	staff := seedStaffForSite(t, db, "staf@example.com", siteA)
	token, err := service.IssueAccessToken(cfg, staff.Email)
	require.NoError(t, err)

	envelope, code := request(t, app, "POST", "/weekly-verse", token, versePayload(siteA, "2026-09-07"))
	require.Equal(t, fiber.StatusCreated, code)
	firstID := envelope["data"].(map[string]any)["id"].(string)

	_, code = request(t, app, "POST", "/weekly-verse", token, versePayload(siteA, "2026-09-14"))
	require.Equal(t, fiber.StatusCreated, code)

	// pindah ke minggu yang sudah terisi → konflik
	_, code = request(t, app, "PATCH", "/weekly-verse/"+firstID, token, fiber.Map{"week_start": "2026-09-14"})
	assert.Equal(t, fiber.StatusConflict, code)

	// minggu sama (tidak berubah) → bukan konflik
	envelope, code = request(t, app, "PATCH", "/weekly-verse/"+firstID, token, fiber.Map{
		"week_start": "2026-09-07",
		"text":       "Teks revisi",
	})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Teks revisi", envelope["data"].(map[string]any)["text"])

	// pindah ke minggu kosong → sukses
	_, code = request(t, app, "PATCH", "/weekly-verse/"+firstID, token, fiber.Map{"week_start": "2026-09-21"})
	assert.Equal(t, fiber.StatusOK, code)
}

func TestWeeklyVerseSiteScope(t *testing.T) {
	app, db, cfg := newVerseTestApp(t)
	siteA := uuid.New()
	siteB := uuid.New()
	staffA := seedStaffForSite(t, db, "staf-a@example.com", siteA)
	staffB := seedStaffForSite(t, db, "staf-b@example.com", siteB)

	tokenA, err := service.IssueAccessToken(cfg, staffA.Email)
	require.NoError(t, err)
	tokenB, err := service.IssueAccessToken(cfg, staffB.Email)
	require.NoError(t, err)

	// create untuk site orang lain → 403
	_, code := request(t, app, "POST", "/weekly-verse", tokenB, versePayload(siteA, "2026-09-07"))
	assert.Equal(t, fiber.StatusForbidden, code)

	envelope, code := request(t, app, "POST", "/weekly-verse", tokenA, versePayload(siteA, "2026-09-07"))
	require.Equal(t, fiber.StatusCreated, code)
	id := envelope["data"].(map[string]any)["id"].(string)

	// patch/delete record site lain → 403
	_, code = request(t, app, "PATCH", "/weekly-verse/"+id, tokenB, fiber.Map{"text": "Coba ubah"})
	assert.Equal(t, fiber.StatusForbidden, code)
	_, code = request(t, app, "DELETE", "/weekly-verse/"+id, tokenB, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// list site lain → 403
	_, code = request(t, app, "GET", "/weekly-verse?site_id="+siteA.String(), tokenB, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestGetCurrentWeeklyVerse(t *testing.T) {
	app, db, cfg := newVerseTestApp(t)
	siteA := uuid.New()
	staff := seedStaffForSite(t, db, "staf@example.com", siteA)
	token, err := service.IssueAccessToken(cfg, staff.Email)
	require.NoError(t, err)

	// belum ada → 404
	_, code := request(t, app, "GET", "/weekly-verse/current?site_id="+siteA.String(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	future := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	_, code = request(t, app, "POST", "/weekly-verse", token, versePayload(siteA, past))
	require.Equal(t, fiber.StatusCreated, code)
	_, code = request(t, app, "POST", "/weekly-verse", token, versePayload(siteA, future))
	require.Equal(t, fiber.StatusCreated, code)

	// ayat berjalan = minggu lampau terbaru, bukan yang masih di depan
	envelope, code := request(t, app, "GET", "/weekly-verse/current?site_id="+siteA.String(), "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, past, envelope["data"].(map[string]any)["week_start"])
}
