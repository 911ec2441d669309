package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admins/dto"
	"learnhub_backend/internals/features/admins/model"
	helper "learnhub_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/admin/profile
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	id, ok := c.Locals("admin_id").(int)
	if !ok || id == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Printf("[ERROR] get profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	role := admin.Role
	if role == "" {
		role = model.RoleAdmin
	}
	// Password fields are never returned; empty strings keep the edit form happy.
	return c.JSON(dto.ProfileResponse{
		Name:  admin.Name,
		Email: admin.Email,
		Phone: admin.Phone,
		Role:  role,
	})
}

// PUT /api/admin/profile: update the caller's own profile.
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	id, ok := c.Locals("admin_id").(int)
	if !ok || id == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var target model.AdminModel
	if err := ctrl.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Printf("[ERROR] update profile lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return ctrl.applyProfileUpdate(c, &target)
}

// PUT /api/admin/profile/:email: update any account addressed by email.
func (ctrl *ProfileController) UpdateProfileByEmail(c *fiber.Ctx) error {
	emailParam := c.Params("email")
	if emailParam == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email parameter required")
	}

	var target model.AdminModel
	err := ctrl.DB.Where("LOWER(email) = LOWER(?)", emailParam).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		log.Printf("[ERROR] update profile by email lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return ctrl.applyProfileUpdate(c, &target)
}

func (ctrl *ProfileController) applyProfileUpdate(c *fiber.Ctx, target *model.AdminModel) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Name == "" || body.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name and email are required")
	}

	// Email must stay unique (case-insensitive), excluding the target itself.
	var dup model.AdminModel
	err := ctrl.DB.Where("LOWER(email) = LOWER(?) AND id <> ?", body.Email, target.ID).First(&dup).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] email uniqueness check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	target.Name = body.Name
	target.Email = body.Email
	target.Phone = body.Phone

	// Only an Admin token may change a role.
	tokenRole, _ := c.Locals("admin_role").(string)
	if tokenRole == model.RoleAdmin && body.Role != "" {
		target.Role = body.Role
	}

	if body.Password != "" || body.ConfirmPassword != "" {
		if body.Password == "" || body.ConfirmPassword == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Both password and confirm_password are required")
		}
		if body.Password != body.ConfirmPassword {
			return helper.JsonError(c, fiber.StatusBadRequest, "Passwords do not match")
		}
		if len(body.Password) < 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password must be at least 6 characters")
		}
		hashed, err := hashPassword(body.Password)
		if err != nil {
			log.Printf("[ERROR] hash password: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		target.Password = hashed
	}

	if err := ctrl.DB.Save(target).Error; err != nil {
		log.Printf("[ERROR] save profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": dto.ToProfileDTO(*target),
	})
}
