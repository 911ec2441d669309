package model

import "time"

// QuizModel is a quiz header row. The table name keeps the historical
// single-s spelling; renaming it would strand existing data.
type QuizModel struct {
	Qid       int        `json:"qid" gorm:"column:qid;primaryKey;autoIncrement"`
	Cid       int        `json:"cid" gorm:"column:cid"`
	QuizTitle string     `json:"quiz_title" gorm:"column:quiz_title"`
	CreatedAt *time.Time `json:"created_at" gorm:"column:created_at"`
}

func (QuizModel) TableName() string {
	return "quizes"
}

type QuizQuestionModel struct {
	QuestionID    int    `json:"question_id" gorm:"column:question_id;primaryKey;autoIncrement"`
	Qid           int    `json:"qid" gorm:"column:qid"`
	Question      string `json:"question" gorm:"column:question"`
	OptionA       string `json:"option_a" gorm:"column:option_a"`
	OptionB       string `json:"option_b" gorm:"column:option_b"`
	OptionC       string `json:"option_c" gorm:"column:option_c"`
	OptionD       string `json:"option_d" gorm:"column:option_d"`
	CorrectAnswer string `json:"correct_answer" gorm:"column:correct_answer"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_content"
}
