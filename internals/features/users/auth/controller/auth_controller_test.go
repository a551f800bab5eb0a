package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"liferiver_backend/internals/configs"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/route"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
)

func testConfig() *configs.Config {
	return &configs.Config{
		JWTSecret:  "test-secret",
		JWTExpires: time.Hour,
		StaticDir:  "static",
	}
}

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB, *configs.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	cfg := testConfig()
	app := fiber.New()
	route.AuthRoutes(app, db, cfg)
	return app, db, cfg
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword(password)
	require.NoError(t, err)
	fullName := "Test User"
	user := userModel.UserModel{
		Email:        email,
		PasswordHash: hash,
		FullName:     &fullName,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*fiber.Map, int) {
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

	var envelope fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return &envelope, resp.StatusCode
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _, _ := newAuthTestApp(t)

	payload := fiber.Map{"email": "jemaat@example.com", "password": "rahasia-123"}
	_, code := doJSON(t, app, "POST", "/auth/register", "", payload)
	require.Equal(t, fiber.StatusCreated, code)

	_, code = doJSON(t, app, "POST", "/auth/register", "", payload)
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestLoginAndMeRoundTrip(t *testing.T) {
	app, db, _ := newAuthTestApp(t)
	seedUser(t, db, "jemaat@example.com", "rahasia-123", "Member")

	envelope, code := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "jemaat@example.com",
		"password": "rahasia-123",
	})
	require.Equal(t, fiber.StatusOK, code)

	data := (*envelope)["data"].(map[string]any)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", data["token_type"])

	envelope, code = doJSON(t, app, "GET", "/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	me := (*envelope)["data"].(map[string]any)
	assert.Equal(t, "jemaat@example.com", me["email"])
}

func TestLoginRejections(t *testing.T) {
	app, db, _ := newAuthTestApp(t)
	inactive := seedUser(t, db, "nonaktif@example.com", "rahasia-123", "Member")
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "tidakada@example.com", "rahasia-123"},
		{"wrong password", "nonaktif@example.com", "salah-total"},
		{"inactive user", "nonaktif@example.com", "rahasia-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
				"email":    tt.email,
				"password": tt.password,
			})
			assert.Equal(t, fiber.StatusUnauthorized, code)
		})
	}
}

func TestDeactivationBlocksLoginNotToken(t *testing.T) {
	app, db, cfg := newAuthTestApp(t)
	user := seedUser(t, db, "jemaat@example.com", "rahasia-123", "Member")

	token, err := service.IssueAccessToken(cfg, user.Email)
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)

	// login baru ditolak...
	_, code := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    user.Email,
		"password": "rahasia-123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	// ...tapi token yang sudah terbit masih berlaku sampai kedaluwarsa
	envelope, code := doJSON(t, app, "GET", "/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	data := (*envelope)["data"].(map[string]any)
	assert.Equal(t, user.Email, data["email"])
}

func TestTamperedAndExpiredToken(t *testing.T) {
	app, db, cfg := newAuthTestApp(t)
	seedUser(t, db, "jemaat@example.com", "rahasia-123", "Member")

	token, err := service.IssueAccessToken(cfg, "jemaat@example.com")
	require.NoError(t, err)

	_, code := doJSON(t, app, "GET", "/auth/me", token+"x", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	// token kedaluwarsa
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jemaat@example.com",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, code = doJSON(t, app, "GET", "/auth/me", expiredToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	// token valid tapi secret beda
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jemaat@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	foreignToken, err := foreign.SignedString([]byte("secret-lain"))
	require.NoError(t, err)

	_, code = doJSON(t, app, "GET", "/auth/me", foreignToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestUpdateMePartial(t *testing.T) {
	app, db, cfg := newAuthTestApp(t)
	user := seedUser(t, db, "jemaat@example.com", "rahasia-123", "Member")
	phone := "0812-0000-1111"
	require.NoError(t, db.Model(&user).Update("phone", phone).Error)

	token, err := service.IssueAccessToken(cfg, user.Email)
	require.NoError(t, err)

	envelope, code := doJSON(t, app, "PATCH", "/auth/me", token, fiber.Map{
		"full_name": "Nama Baru",
	})
	require.Equal(t, fiber.StatusOK, code)

	data := (*envelope)["data"].(map[string]any)
	assert.Equal(t, "Nama Baru", data["full_name"])
	// field lain tidak tersentuh
	assert.Equal(t, phone, data["phone"])
	assert.Equal(t, "jemaat@example.com", data["email"])
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	app, db, cfg := newAuthTestApp(t)
	user := seedUser(t, db, "jemaat@example.com", "rahasia-123", "Member")

	token, err := service.IssueAccessToken(cfg, user.Email)
	require.NoError(t, err)

	_, code := doJSON(t, app, "POST", "/auth/change-password", token, fiber.Map{
		"current_password": "bukan-itu",
		"new_password":     "rahasia-baru-456",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	_, code = doJSON(t, app, "POST", "/auth/change-password", token, fiber.Map{
		"current_password": "rahasia-123",
		"new_password":     "rahasia-baru-456",
	})
	require.Equal(t, fiber.StatusOK, code)

	// login dengan password baru
	_, code = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "jemaat@example.com",
		"password": "rahasia-baru-456",
	})
	assert.Equal(t, fiber.StatusOK, code)
}
