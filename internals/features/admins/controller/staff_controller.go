package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admins/dto"
	"learnhub_backend/internals/features/admins/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/schema"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GET /api/admin/staff
func (ctrl *StaffController) GetAllStaff(c *fiber.Ctx) error {
	var staff []model.AdminModel
	if err := ctrl.DB.Where("role = ?", model.RoleStaff).Order("id").Find(&staff).Error; err != nil {
		log.Printf("[ERROR] get staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	out := make([]dto.StaffDTO, 0, len(staff))
	for _, s := range staff {
		out = append(out, dto.ToStaffDTO(s))
	}
	return c.JSON(out)
}

// POST /api/admin/staff
func (ctrl *StaffController) CreateStaff(c *fiber.Ctx) error {
	var body dto.CreateStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "name, email and password are required")
	}

	if taken, err := ctrl.emailTaken(body.Email, 0); err != nil {
		log.Printf("[ERROR] staff email check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	} else if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	}

	hashed, err := hashPassword(body.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	staff := model.AdminModel{
		Name:     body.Name,
		Email:    body.Email,
		Password: hashed,
		Phone:    body.Phone,
		Role:     model.RoleStaff,
	}
	if err := ctrl.DB.Create(&staff).Error; err != nil {
		if schema.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Printf("[ERROR] create staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Staff added successfully",
		"staff":   dto.ToStaffDTO(staff),
	})
}

// PUT /api/admin/staff/:id
func (ctrl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var body dto.UpdateStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "name and email are required")
	}

	var staff model.AdminModel
	err = ctrl.DB.Where("id = ? AND role = ?", id, model.RoleStaff).First(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Staff not found")
	}
	if err != nil {
		log.Printf("[ERROR] staff lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if taken, err := ctrl.emailTaken(body.Email, staff.ID); err != nil {
		log.Printf("[ERROR] staff email check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	} else if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	}

	staff.Name = body.Name
	staff.Email = body.Email
	staff.Phone = body.Phone
	if body.Password != "" {
		hashed, err := hashPassword(body.Password)
		if err != nil {
			log.Printf("[ERROR] hash password: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		staff.Password = hashed
	}

	if err := ctrl.DB.Save(&staff).Error; err != nil {
		if schema.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Printf("[ERROR] update staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Staff updated successfully",
		"staff":   dto.ToStaffDTO(staff),
	})
}

// DELETE /api/admin/staff: bulk delete by id list.
func (ctrl *StaffController) DeleteStaff(c *fiber.Ctx) error {
	var body dto.DeleteStaffRequest
	if err := c.BodyParser(&body); err != nil || len(body.IDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No staff IDs provided")
	}

	if err := ctrl.DB.Where("role = ? AND id IN ?", model.RoleStaff, body.IDs).
		Delete(&model.AdminModel{}).Error; err != nil {
		log.Printf("[ERROR] delete staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonMessage(c, "Staff deleted successfully")
}

func (ctrl *StaffController) emailTaken(email string, excludeID int) (bool, error) {
	var count int64
	err := ctrl.DB.Model(&model.AdminModel{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}
