package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/dto"
	"learnhub_backend/internals/features/courses/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/schema"
)

var validateCourse = validator.New()

type CourseController struct {
	DB     *gorm.DB
	Prober *schema.Prober
}

func NewCourseController(db *gorm.DB, prober *schema.Prober) *CourseController {
	return &CourseController{DB: db, Prober: prober}
}

type courseRow struct {
	ID          int    `gorm:"column:id"`
	CourseTitle string `gorm:"column:course_title"`
	Description string `gorm:"column:description"`
}

// Oldest deployments stored the display name in a "name" column and some
// predate description entirely; the preferred variant coalesces both
// spellings, and the cascade degrades down to single-column reads so the
// listing keeps serving even when reconciliation could not repair the
// table. Description defaults to empty on the narrow variants.
var courseListVariants = []schema.Variant{
	{
		Name: "course_title or name",
		SQL:  `SELECT id, COALESCE(course_title, name) AS course_title, description FROM courses ORDER BY id`,
	},
	{
		Name: "course_title with description",
		SQL:  `SELECT id, course_title, description FROM courses ORDER BY id`,
	},
	{
		Name: "course_title only",
		SQL:  `SELECT id, course_title FROM courses ORDER BY id`,
	},
	{
		Name: "name only",
		SQL:  `SELECT id, name AS course_title FROM courses ORDER BY id`,
	},
}

// GET /api/admin/courses
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	var courses []courseRow
	if _, err := schema.RunCascade(ctrl.DB, &courses, courseListVariants...); err != nil {
		log.Printf("[ERROR] get courses: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	shape := ctrl.Prober.Shape()
	out := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.CourseDTO{
			ID:          course.ID,
			Name:        course.CourseTitle,
			Description: course.Description,
			Videos:      ctrl.collectVideos(course, shape),
			Quizzes:     ctrl.collectLegacyQuizzes(course.ID),
		})
	}
	return c.JSON(out)
}

// collectVideos unions the modern videos table with legacy courses_vedio
// rows for the same course. Either source failing (missing table, missing
// columns) degrades to that source contributing nothing.
func (ctrl *CourseController) collectVideos(course courseRow, shape schema.Shape) []dto.VideoItem {
	var modern []model.VideoModel
	if err := ctrl.DB.Where("course_id = ?", course.ID).Order("id").Find(&modern).Error; err != nil {
		log.Printf("[INFO] videos for course %d unavailable: %v", course.ID, err)
		modern = nil
	}

	var legacy []model.CourseVideoModel
	cols := "id, course_vedio_title, vedio_url, description"
	if shape.CoursesVedioHasCreatedAt {
		cols += ", created_at"
	}
	switch {
	case shape.CoursesVedioHasCid:
		if err := ctrl.DB.Raw(
			"SELECT "+cols+" FROM courses_vedio WHERE cid = ? ORDER BY id", course.ID,
		).Scan(&legacy).Error; err != nil {
			log.Printf("[INFO] legacy videos for course %d unavailable: %v", course.ID, err)
			legacy = nil
		}
	case shape.CoursesVedioHasCourseTitle:
		if err := ctrl.DB.Raw(
			"SELECT "+cols+" FROM courses_vedio WHERE course_title = ? ORDER BY id", course.CourseTitle,
		).Scan(&legacy).Error; err != nil {
			log.Printf("[INFO] legacy videos for course %d unavailable: %v", course.ID, err)
			legacy = nil
		}
	}

	return dto.MergeVideos(modern, legacy, course.ID)
}

func (ctrl *CourseController) collectLegacyQuizzes(courseID int) []dto.LegacyQuiz {
	var quizzes []model.LegacyQuizModel
	if err := ctrl.DB.Where("course_id = ?", courseID).Order("id").Find(&quizzes).Error; err != nil {
		log.Printf("[INFO] quizzes for course %d unavailable: %v", courseID, err)
		return []dto.LegacyQuiz{}
	}
	if quizzes == nil {
		quizzes = []model.LegacyQuizModel{}
	}
	return quizzes
}

// POST /api/admin/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	title := strings.TrimSpace(body.CourseTitle)
	if title == "" {
		title = strings.TrimSpace(body.Name)
	}
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course title is required")
	}

	course := model.CourseModel{CourseTitle: title, Description: body.Description}
	if err := ctrl.insertCourse(&course); err != nil {
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Course added successfully",
		"course": dto.CourseDTO{
			ID:          course.ID,
			Name:        course.CourseTitle,
			Description: course.Description,
			Videos:      []dto.VideoItem{},
			Quizzes:     []dto.LegacyQuiz{},
		},
	})
}

// insertCourse writes only the columns the live schema has; legacy courses
// tables may predate the description column.
func (ctrl *CourseController) insertCourse(course *model.CourseModel) error {
	if ctrl.Prober.Shape().CoursesHasDescription {
		return ctrl.DB.Select("course_title", "description").Create(course).Error
	}
	course.Description = ""
	return ctrl.DB.Select("course_title").Create(course).Error
}

// DELETE /api/admin/courses/:id
//
// Dependent rows are removed explicitly rather than trusting FK cascade:
// legacy deployments created videos/quizzes without the FK, and
// courses_vedio never had one.
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if err := ctrl.DB.Where("course_id = ?", id).Delete(&model.VideoModel{}).Error; err != nil && !schema.IsSchemaMismatch(err) {
		log.Printf("[WARN] delete course videos: %v", err)
	}
	if err := ctrl.DB.Where("course_id = ?", id).Delete(&model.LegacyQuizModel{}).Error; err != nil && !schema.IsSchemaMismatch(err) {
		log.Printf("[WARN] delete course quizzes: %v", err)
	}
	if ctrl.Prober.Shape().CoursesVedioHasCid {
		if err := ctrl.DB.Exec("DELETE FROM courses_vedio WHERE cid = ?", id).Error; err != nil {
			log.Printf("[WARN] delete legacy course videos: %v", err)
		}
	}

	if err := ctrl.DB.Delete(&model.CourseModel{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonMessage(c, "Course deleted successfully")
}

// POST /api/admin/courses/:id/videos
func (ctrl *CourseController) AddVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "title is required")
	}

	video := model.VideoModel{
		CourseID:    id,
		Title:       body.Title,
		Description: body.Description,
		VideoURL:    body.VideoURL,
	}
	if err := ctrl.DB.Create(&video).Error; err != nil {
		log.Printf("[ERROR] add video: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Video added successfully", "video": video})
}

// POST /api/admin/courses/:id/quizzes: legacy single-question quiz.
func (ctrl *CourseController) AddLegacyQuiz(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var body dto.CreateLegacyQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "question, options and correctAnswer are required")
	}

	quiz := model.LegacyQuizModel{
		CourseID:      id,
		Title:         body.Title,
		Question:      body.Question,
		OptionA:       body.OptionA,
		OptionB:       body.OptionB,
		OptionC:       body.OptionC,
		OptionD:       body.OptionD,
		CorrectAnswer: body.CorrectAnswer,
	}
	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		log.Printf("[ERROR] add legacy quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Quiz added successfully", "quiz": quiz})
}
