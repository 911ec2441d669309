package model

import "time"

type CourseModel struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseTitle string    `json:"course_title" gorm:"column:course_title"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CourseModel) TableName() string { return "courses" }

// VideoModel is the modern course-scoped video table.
type VideoModel struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseID    int       `json:"course_id" gorm:"column:course_id"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	VideoURL    string    `json:"video_url" gorm:"column:video_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (VideoModel) TableName() string { return "videos" }

// LegacyQuizModel is the single-question quiz shape kept read-mostly for
// backward compatibility; new quizzes go through the normalized tables.
type LegacyQuizModel struct {
	ID            int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseID      int       `json:"course_id" gorm:"column:course_id"`
	Title         string    `json:"title" gorm:"column:title"`
	Question      string    `json:"question" gorm:"column:question"`
	OptionA       string    `json:"option_a" gorm:"column:option_a"`
	OptionB       string    `json:"option_b" gorm:"column:option_b"`
	OptionC       string    `json:"option_c" gorm:"column:option_c"`
	OptionD       string    `json:"option_d" gorm:"column:option_d"`
	CorrectAnswer string    `json:"correct_answer" gorm:"column:correct_answer"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (LegacyQuizModel) TableName() string { return "quizzes" }

// CourseVideoModel maps the legacy title-keyed courses_vedio table. Cid and
// CreatedAt are pointers because live deployments exist both with and
// without those columns; writes never go through this struct blindly, they
// build a column list from the probed shape.
type CourseVideoModel struct {
	ID               int        `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseVedioTitle string     `json:"course_vedio_title" gorm:"column:course_vedio_title"`
	VedioURL         string     `json:"vedio_url" gorm:"column:vedio_url"`
	Description      string     `json:"description" gorm:"column:description"`
	CourseTitle      string     `json:"course_title" gorm:"column:course_title"`
	Cid              *int       `json:"cid,omitempty" gorm:"column:cid"`
	CreatedAt        *time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CourseVideoModel) TableName() string { return "courses_vedio" }
