package dto

import (
	"time"

	"learnhub_backend/internals/features/quizzes/model"
)

type QuestionInput struct {
	QuestionID    *int   `json:"question_id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

func (q QuestionInput) Complete() bool {
	return q.Question != "" && q.OptionA != "" && q.OptionB != "" &&
		q.OptionC != "" && q.OptionD != "" && q.CorrectAnswer != ""
}

// CreateQuizRequest accepts either a questions array or a flat
// single-question body; old admin panels still send the flat form.
type CreateQuizRequest struct {
	Cid       int             `json:"cid"`
	QuizTitle string          `json:"quiz_title"`
	Questions []QuestionInput `json:"questions"`

	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// Items folds the flat fields into the questions slice.
func (r CreateQuizRequest) Items() []QuestionInput {
	if len(r.Questions) > 0 {
		return r.Questions
	}
	flat := QuestionInput{
		Question:      r.Question,
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectAnswer: r.CorrectAnswer,
	}
	if flat == (QuestionInput{}) {
		return nil
	}
	return []QuestionInput{flat}
}

type UpdateQuizRequest struct {
	Cid                *int            `json:"cid"`
	QuizTitle          *string         `json:"quiz_title"`
	Questions          []QuestionInput `json:"questions"`
	DeletedQuestionIDs []int           `json:"deleted_question_ids"`
}

type QuizDTO struct {
	Qid       int                       `json:"qid"`
	Cid       int                       `json:"cid"`
	QuizTitle string                    `json:"quiz_title"`
	CreatedAt *time.Time                `json:"created_at"`
	Questions []model.QuizQuestionModel `json:"questions"`
}

func ToQuizDTO(header model.QuizModel, questions []model.QuizQuestionModel) QuizDTO {
	if questions == nil {
		questions = []model.QuizQuestionModel{}
	}
	return QuizDTO{
		Qid:       header.Qid,
		Cid:       header.Cid,
		QuizTitle: header.QuizTitle,
		CreatedAt: header.CreatedAt,
		Questions: questions,
	}
}
