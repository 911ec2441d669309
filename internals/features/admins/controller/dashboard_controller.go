package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admins/dto"
	"learnhub_backend/internals/features/admins/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/schema"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/admin/dashboard/stats
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var stats dto.DashboardStats

	// The learner store belongs to another subsystem and may not exist on
	// this deployment; count it as zero instead of failing the dashboard.
	if err := ctrl.DB.Table("users").Count(&stats.Users).Error; err != nil {
		if !schema.IsUndefinedTable(err) {
			log.Printf("[ERROR] dashboard users count: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		stats.Users = 0
	}

	if err := ctrl.DB.Model(&model.AdminModel{}).Where("role = ?", model.RoleStaff).Count(&stats.Staff).Error; err != nil {
		log.Printf("[ERROR] dashboard staff count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := ctrl.DB.Table("courses").Count(&stats.Courses).Error; err != nil {
		log.Printf("[ERROR] dashboard courses count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(stats)
}
