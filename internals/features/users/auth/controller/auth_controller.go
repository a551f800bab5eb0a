package controller

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"liferiver_backend/internals/configs"
	"liferiver_backend/internals/features/users/auth/dto"
	authHelper "liferiver_backend/internals/features/users/auth/helper"
	"liferiver_backend/internals/features/users/auth/service"
	userModel "liferiver_backend/internals/features/users/user/model"
	helper "liferiver_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// =======================
// ➕ Register
// =======================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())

	email := strings.ToLower(strings.TrimSpace(body.Email))
	var existing userModel.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hash, err := authHelper.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Email:        email,
		PasswordHash: hash,
		FullName:     body.FullName,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registered", dto.ToUserDTO(user))
}

// =======================
// 🔑 Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := authHelper.CheckPasswordHash(user.PasswordHash, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.IssueAccessToken(ctrl.Cfg, user.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// =======================
// 🔑 Login via Google ID token
// =======================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if ctrl.Cfg.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google sign-in not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{ctrl.Cfg.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	db := ctrl.DB.WithContext(c.UserContext())
	email := strings.ToLower(claimSet.Email)

	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First sign-in: buat akun member dengan password acak (tidak bisa dipakai login biasa).
		hash, herr := authHelper.HashPassword(uuid.NewString())
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		name := claimSet.Name
		user = userModel.UserModel{
			Email:        email,
			PasswordHash: hash,
			FullName:     &name,
			IsActive:     true,
		}
		if cerr := db.Create(&user).Error; cerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.IssueAccessToken(ctrl.Cfg, user.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Login berhasil", dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// =======================
// 👤 Me (profile)
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToUserDTO(*user))
}

func (ctrl *AuthController) UpdateMe(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}

	var body dto.UpdateMeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Partial update: hanya field yang hadir di payload yang disentuh.
	if body.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*body.Email))
	}
	if body.FullName != nil {
		user.FullName = body.FullName
	}
	if body.Phone != nil {
		user.Phone = body.Phone
	}
	if body.MemberType != nil {
		user.MemberType = *body.MemberType
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserDTO(*user))
}

// =======================
// 🔒 Change password
// =======================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}

	var body dto.PasswordChangeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := authHelper.CheckPasswordHash(user.PasswordHash, body.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid password")
	}

	newHash, err := authHelper.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	user.PasswordHash = newHash

	if err := ctrl.DB.WithContext(c.UserContext()).Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

func (ctrl *AuthController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "id = ?", userID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	return &user, nil
}
