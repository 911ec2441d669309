package dto

import (
	"time"

	"learnhub_backend/internals/features/courses/model"
)

// LegacyVideoSource tags union entries that came from the title-keyed
// courses_vedio table rather than the modern videos table.
const LegacyVideoSource = "courses_vedio"

// CourseDTO is the one external course shape: name is always populated no
// matter which column the live schema stores the title in, and videos is
// the union of both storage generations.
type CourseDTO struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Videos      []VideoItem  `json:"videos"`
	Quizzes     []LegacyQuiz `json:"quizzes"`
}

type VideoItem struct {
	ID          int        `json:"id"`
	CourseID    int        `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	VideoURL    string     `json:"video_url"`
	CreatedAt   *time.Time `json:"created_at"`
	Source      string     `json:"source,omitempty"`
}

type LegacyQuiz = model.LegacyQuizModel

type CreateCourseRequest struct {
	Name        string `json:"name"`
	CourseTitle string `json:"course_title"`
	Description string `json:"description"`
}

type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

type CreateLegacyQuizRequest struct {
	Title         string `json:"title"`
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"optionA" validate:"required"`
	OptionB       string `json:"optionB" validate:"required"`
	OptionC       string `json:"optionC" validate:"required"`
	OptionD       string `json:"optionD" validate:"required"`
	CorrectAnswer string `json:"correctAnswer" validate:"required"`
}

type CreateCourseVideoRequest struct {
	CourseVedioTitle string `json:"course_vedio_title" validate:"required"`
	VedioURL         string `json:"vedio_url" validate:"required"`
	Description      string `json:"description"`
	CourseTitle      string `json:"course_title" validate:"required"`
}

type UpdateCourseVideoRequest struct {
	CourseVedioTitle string `json:"course_vedio_title" validate:"required"`
	VedioURL         string `json:"vedio_url" validate:"required"`
	Description      string `json:"description"`
}

// CourseVideoDTO is the normalized legacy-table row: vedio_url is kept for
// old consumers and aliased to the canonical video_url.
type CourseVideoDTO struct {
	ID               int        `json:"id"`
	CourseVedioTitle string     `json:"course_vedio_title"`
	VedioURL         string     `json:"vedio_url"`
	VideoURL         string     `json:"video_url"`
	Description      string     `json:"description"`
	CourseTitle      string     `json:"course_title,omitempty"`
	CreatedAt        *time.Time `json:"created_at"`
}

func ToVideoItem(v model.VideoModel) VideoItem {
	created := v.CreatedAt
	return VideoItem{
		ID:          v.ID,
		CourseID:    v.CourseID,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		CreatedAt:   &created,
	}
}

// ToLegacyVideoItem maps a courses_vedio row into the modern video shape,
// aliasing vedio_url to video_url and tagging the source.
func ToLegacyVideoItem(v model.CourseVideoModel, courseID int) VideoItem {
	return VideoItem{
		ID:          v.ID,
		CourseID:    courseID,
		Title:       v.CourseVedioTitle,
		Description: v.Description,
		VideoURL:    v.VedioURL,
		CreatedAt:   v.CreatedAt,
		Source:      LegacyVideoSource,
	}
}

// MergeVideos unions both storage generations into one ordered sequence:
// modern rows first, then legacy rows in table order.
func MergeVideos(modern []model.VideoModel, legacy []model.CourseVideoModel, courseID int) []VideoItem {
	out := make([]VideoItem, 0, len(modern)+len(legacy))
	for _, v := range modern {
		out = append(out, ToVideoItem(v))
	}
	for _, v := range legacy {
		out = append(out, ToLegacyVideoItem(v, courseID))
	}
	return out
}

func ToCourseVideoDTO(v model.CourseVideoModel) CourseVideoDTO {
	return CourseVideoDTO{
		ID:               v.ID,
		CourseVedioTitle: v.CourseVedioTitle,
		VedioURL:         v.VedioURL,
		VideoURL:         v.VedioURL,
		Description:      v.Description,
		CourseTitle:      v.CourseTitle,
		CreatedAt:        v.CreatedAt,
	}
}
