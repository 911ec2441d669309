package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "learnhub_backend/internals/features/courses/controller"
	"learnhub_backend/internals/schema"
)

func CourseRoutes(api fiber.Router, db *gorm.DB, prober *schema.Prober) {
	courseCtrl := courseController.NewCourseController(db, prober)
	videoCtrl := courseController.NewCourseVideoController(db, prober)

	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.GetAllCourses)
	courses.Post("/", courseCtrl.CreateCourse)
	courses.Delete("/:id", courseCtrl.DeleteCourse)
	courses.Post("/:id/videos", courseCtrl.AddVideo)
	courses.Post("/:id/quizzes", courseCtrl.AddLegacyQuiz)

	videos := api.Group("/course-videos")
	videos.Get("/", videoCtrl.GetByCourseTitle)
	videos.Post("/", videoCtrl.Create)
	videos.Put("/:id", videoCtrl.Update)
	videos.Delete("/:id", videoCtrl.Delete)
}
