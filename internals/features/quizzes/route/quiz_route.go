package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "learnhub_backend/internals/features/quizzes/controller"
)

func QuizRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	api.Post("/", ctrl.CreateQuiz)
	api.Get("/:cid", ctrl.GetQuizzesByCourse)
	api.Put("/:qid", ctrl.UpdateQuiz)
	api.Delete("/:qid", ctrl.DeleteQuiz)
}
