// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	userModel "liferiver_backend/internals/features/users/user/model"
	helper "liferiver_backend/internals/helpers"
)

// Locals keys yang di-set middleware ini
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "userRole"
	LocSiteID    = "site_id"
)

// AuthMiddleware memvalidasi bearer token (HS256, sub=email) lalu
// me-resolve user dari database. Semua kegagalan → 401.
func AuthMiddleware(db *gorm.DB, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		var user userModel.UserModel
		if err := db.WithContext(c.UserContext()).
			Where("email = ?", subject).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		// Status nonaktif hanya memblok login baru; token yang sudah
		// terbit tetap berlaku sampai kedaluwarsa.

		c.Locals(LocUserID, user.ID.String())
		c.Locals(LocUserEmail, user.Email)
		c.Locals(LocUserRole, user.Role)
		if user.SiteID != nil {
			c.Locals(LocSiteID, user.SiteID.String())
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}
