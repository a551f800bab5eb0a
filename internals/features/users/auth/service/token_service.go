// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"liferiver_backend/internals/configs"
)

// IssueAccessToken menerbitkan bearer token HS256 dengan subject = email
// dan masa berlaku tetap dari config.
func IssueAccessToken(cfg *configs.Config, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(cfg.JWTExpires).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
