package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/features/admins/dto"
	"learnhub_backend/internals/features/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var validateAdmin = validator.New()

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/admin/login
//
// Passwords are stored bcrypt-hashed and compared with
// bcrypt.CompareHashAndPassword; every write path hashes before storing, so
// the policy is consistent end to end.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "All fields are required")
	}

	role := model.RoleStaff
	if body.Role == model.RoleAdmin {
		role = model.RoleAdmin
	}
	email := strings.TrimSpace(body.Email)

	var admin model.AdminModel
	err := ctrl.DB.Where("LOWER(email) = LOWER(?) AND role = ?", email, role).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := signToken(admin, role)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": dto.LoginUser{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
			Role:  role,
		},
	})
}

func signToken(admin model.AdminModel, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"role":  role,
		"name":  admin.Name,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func hashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
