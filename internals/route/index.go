package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "learnhub_backend/internals/features/admins/route"
	courseRoute "learnhub_backend/internals/features/courses/route"
	quizRoute "learnhub_backend/internals/features/quizzes/route"
	userRoute "learnhub_backend/internals/features/users/route"
	"learnhub_backend/internals/middlewares/auth"
	"learnhub_backend/internals/schema"
)

// SetupRoutes mounts every feature group. Both API groups sit behind the
// token gate; /api/admin/login is exempted inside the middleware itself.
func SetupRoutes(app *fiber.App, db *gorm.DB, prober *schema.Prober) {
	BaseRoutes(app, db)

	admin := app.Group("/api/admin", auth.AuthMiddleware())
	adminRoute.AdminRoutes(admin, db)
	userRoute.UserRoutes(admin, db)
	courseRoute.CourseRoutes(admin, db, prober)

	quiz := app.Group("/api/quizzes", auth.AuthMiddleware())
	quizRoute.QuizRoutes(quiz, db)
}
