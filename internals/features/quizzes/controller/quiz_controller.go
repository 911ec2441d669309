package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/quizzes/dto"
	"learnhub_backend/internals/features/quizzes/model"
	helper "learnhub_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

// respond translates transaction-aborting *fiber.Error values into their
// status, everything else into a logged 500.
func respond(c *fiber.Ctx, err error, what string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s: %v", what, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
}

// POST /api/quizzes
//
// Header and questions are written in one transaction: a quiz with a
// rejected question leaves no rows behind.
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	items := body.Items()
	if body.Cid == 0 || body.QuizTitle == "" || len(items) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"cid, quiz_title and at least one question are required")
	}

	now := time.Now()
	header := model.QuizModel{Cid: body.Cid, QuizTitle: body.QuizTitle, CreatedAt: &now}
	var questions []model.QuizQuestionModel

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		for _, item := range items {
			if !item.Complete() {
				return fiber.NewError(fiber.StatusBadRequest,
					"Each question requires question, option_a, option_b, option_c, option_d and correct_answer")
			}
			questions = append(questions, model.QuizQuestionModel{
				Qid:           header.Qid,
				Question:      item.Question,
				OptionA:       item.OptionA,
				OptionB:       item.OptionB,
				OptionC:       item.OptionC,
				OptionD:       item.OptionD,
				CorrectAnswer: item.CorrectAnswer,
			})
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return respond(c, err, "create quiz")
	}

	return c.JSON(fiber.Map{
		"message": "Quiz added successfully",
		"quiz":    dto.ToQuizDTO(header, questions),
	})
}

// GET /api/quizzes/:cid
func (ctrl *QuizController) GetQuizzesByCourse(c *fiber.Ctx) error {
	cid, err := c.ParamsInt("cid")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var headers []model.QuizModel
	if err := ctrl.DB.Where("cid = ?", cid).Order("qid").Find(&headers).Error; err != nil {
		log.Printf("[ERROR] get quizzes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	out := make([]dto.QuizDTO, 0, len(headers))
	if len(headers) == 0 {
		return c.JSON(out)
	}

	qids := make([]int, 0, len(headers))
	for _, h := range headers {
		qids = append(qids, h.Qid)
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.Where("qid IN ?", qids).Order("qid, question_id").Find(&questions).Error; err != nil {
		log.Printf("[ERROR] get quiz questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	byQid := make(map[int][]model.QuizQuestionModel, len(headers))
	for _, q := range questions {
		byQid[q.Qid] = append(byQid[q.Qid], q)
	}
	for _, h := range headers {
		out = append(out, dto.ToQuizDTO(h, byQid[h.Qid]))
	}
	return c.JSON(out)
}

// PUT /api/quizzes/:qid
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	qid, err := c.ParamsInt("qid")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if body.Cid != nil {
			updates["cid"] = *body.Cid
		}
		if body.QuizTitle != nil {
			updates["quiz_title"] = *body.QuizTitle
		}

		if len(updates) > 0 {
			res := tx.Model(&model.QuizModel{}).Where("qid = ?", qid).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
			}
		} else {
			var header model.QuizModel
			if err := tx.Where("qid = ?", qid).First(&header).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
				}
				return err
			}
		}

		if len(body.DeletedQuestionIDs) > 0 {
			if err := tx.Where("qid = ? AND question_id IN ?", qid, body.DeletedQuestionIDs).
				Delete(&model.QuizQuestionModel{}).Error; err != nil {
				return err
			}
		}

		for _, item := range body.Questions {
			if item.QuestionID != nil {
				if err := updateQuestion(tx, qid, *item.QuestionID, item); err != nil {
					return err
				}
				continue
			}
			if !item.Complete() {
				return fiber.NewError(fiber.StatusBadRequest, "New questions require all fields")
			}
			q := model.QuizQuestionModel{
				Qid:           qid,
				Question:      item.Question,
				OptionA:       item.OptionA,
				OptionB:       item.OptionB,
				OptionC:       item.OptionC,
				OptionD:       item.OptionD,
				CorrectAnswer: item.CorrectAnswer,
			}
			if err := tx.Create(&q).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respond(c, err, "update quiz")
	}

	var header model.QuizModel
	if err := ctrl.DB.Where("qid = ?", qid).First(&header).Error; err != nil {
		log.Printf("[ERROR] reload quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	var questions []model.QuizQuestionModel
	if err := ctrl.DB.Where("qid = ?", qid).Order("question_id").Find(&questions).Error; err != nil {
		log.Printf("[ERROR] reload quiz questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Quiz updated successfully",
		"quiz":    dto.ToQuizDTO(header, questions),
	})
}

// updateQuestion applies only the non-empty fields of an existing question.
func updateQuestion(tx *gorm.DB, qid, questionID int, item dto.QuestionInput) error {
	updates := map[string]any{}
	if item.Question != "" {
		updates["question"] = item.Question
	}
	if item.OptionA != "" {
		updates["option_a"] = item.OptionA
	}
	if item.OptionB != "" {
		updates["option_b"] = item.OptionB
	}
	if item.OptionC != "" {
		updates["option_c"] = item.OptionC
	}
	if item.OptionD != "" {
		updates["option_d"] = item.OptionD
	}
	if item.CorrectAnswer != "" {
		updates["correct_answer"] = item.CorrectAnswer
	}
	if len(updates) == 0 {
		return nil
	}
	return tx.Model(&model.QuizQuestionModel{}).
		Where("question_id = ? AND qid = ?", questionID, qid).
		Updates(updates).Error
}

// DELETE /api/quizzes/:qid
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	qid, err := c.ParamsInt("qid")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("qid = ?", qid).Delete(&model.QuizQuestionModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("qid = ?", qid).Delete(&model.QuizModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return nil
	})
	if err != nil {
		return respond(c, err, "delete quiz")
	}
	return helper.JsonMessage(c, "Quiz deleted successfully")
}
