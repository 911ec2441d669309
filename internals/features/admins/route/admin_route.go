package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/admins/controller"
	"learnhub_backend/internals/middlewares"
)

// AdminRoutes mounts authentication, profile, dashboard and staff
// endpoints on the /api/admin group. Login sits inside the group but is
// exempted from the auth gate by the middleware's skip list.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	profileCtrl := controller.NewProfileController(db)
	api.Get("/profile", profileCtrl.GetProfile)
	api.Put("/profile", profileCtrl.UpdateProfile)
	api.Put("/profile/:email", profileCtrl.UpdateProfileByEmail)

	dashCtrl := controller.NewDashboardController(db)
	api.Get("/dashboard/stats", dashCtrl.GetStats)

	staffCtrl := controller.NewStaffController(db)
	staff := api.Group("/staff")
	staff.Get("/", staffCtrl.GetAllStaff)
	staff.Post("/", staffCtrl.CreateStaff)
	staff.Put("/:id", staffCtrl.UpdateStaff)
	staff.Delete("/", staffCtrl.DeleteStaff)
}
