package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/dto"
	"learnhub_backend/internals/features/courses/model"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/schema"
)

// CourseVideoController serves the legacy courses_vedio table directly.
// The table's shape drifted across deployments (cid and created_at are
// both optional), so every write is built against the probed shape and
// retried once after a re-probe when the shape turns out stale.
type CourseVideoController struct {
	DB     *gorm.DB
	Prober *schema.Prober
}

func NewCourseVideoController(db *gorm.DB, prober *schema.Prober) *CourseVideoController {
	return &CourseVideoController{DB: db, Prober: prober}
}

// GET /api/admin/course-videos?course_title=...
func (ctrl *CourseVideoController) GetByCourseTitle(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("course_title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_title is required")
	}

	variants := []schema.Variant{
		{
			Name: "with created_at",
			SQL:  `SELECT id, course_vedio_title, vedio_url, description, course_title, created_at FROM courses_vedio WHERE course_title = ? ORDER BY id`,
			Args: []any{title},
		},
		{
			Name: "without created_at",
			SQL:  `SELECT id, course_vedio_title, vedio_url, description, course_title FROM courses_vedio WHERE course_title = ? ORDER BY id`,
			Args: []any{title},
		},
	}

	var rows []model.CourseVideoModel
	if _, err := schema.RunCascade(ctrl.DB, &rows, variants...); err != nil {
		log.Printf("[ERROR] get course videos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	out := make([]dto.CourseVideoDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToCourseVideoDTO(row))
	}
	return c.JSON(out)
}

// POST /api/admin/course-videos
func (ctrl *CourseVideoController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "course_vedio_title, vedio_url and course_title are required")
	}

	row, err := ctrl.insertVideo(body, ctrl.Prober.Shape())
	if schema.IsSchemaMismatch(err) {
		// Shape cache went stale (concurrent reconcile, manual DDL).
		ctrl.Prober.Invalidate()
		row, err = ctrl.insertVideo(body, ctrl.Prober.Shape())
	}
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create course video: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"message": "Video added successfully",
		"video":   dto.ToCourseVideoDTO(row),
	})
}

// insertVideo builds the INSERT column list from the live shape. Schemas
// with a cid column require a resolvable course row; title-keyed schemas
// just store the course_title string.
func (ctrl *CourseVideoController) insertVideo(body dto.CreateCourseVideoRequest, shape schema.Shape) (model.CourseVideoModel, error) {
	cols := []string{"course_vedio_title", "vedio_url", "description"}
	args := []any{body.CourseVedioTitle, body.VedioURL, body.Description}
	exprs := []string{"?", "?", "?"}

	if shape.CoursesVedioHasCourseTitle {
		cols = append(cols, "course_title")
		args = append(args, body.CourseTitle)
		exprs = append(exprs, "?")
	}
	if shape.CoursesVedioHasCid {
		cid, err := ctrl.resolveCourseID(body.CourseTitle, body.Description, shape)
		if err != nil {
			return model.CourseVideoModel{}, err
		}
		if cid == 0 {
			return model.CourseVideoModel{}, fiber.NewError(fiber.StatusBadRequest,
				"Unable to resolve course id (cid) for given course_title")
		}
		cols = append(cols, "cid")
		args = append(args, cid)
		exprs = append(exprs, "?")
	}
	if shape.CoursesVedioHasCreatedAt {
		cols = append(cols, "created_at")
		exprs = append(exprs, "CURRENT_TIMESTAMP")
	}

	returning := "id, course_vedio_title, vedio_url, description"
	if shape.CoursesVedioHasCourseTitle {
		returning += ", course_title"
	}
	if shape.CoursesVedioHasCreatedAt {
		returning += ", created_at"
	}

	query := "INSERT INTO courses_vedio (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.Join(exprs, ", ") + ") RETURNING " + returning

	var row model.CourseVideoModel
	if err := ctrl.DB.Raw(query, args...).Scan(&row).Error; err != nil {
		return model.CourseVideoModel{}, err
	}
	return row, nil
}

// resolveCourseID finds the course by title, creating it when absent.
func (ctrl *CourseVideoController) resolveCourseID(title, description string, shape schema.Shape) (int, error) {
	var course model.CourseModel
	err := ctrl.DB.Where("course_title = ?", title).First(&course).Error
	if err == nil {
		return course.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	course = model.CourseModel{CourseTitle: title, Description: description}
	tx := ctrl.DB.Select("course_title")
	if shape.CoursesHasDescription {
		tx = ctrl.DB.Select("course_title", "description")
	}
	if err := tx.Create(&course).Error; err != nil {
		return 0, err
	}
	return course.ID, nil
}

// PUT /api/admin/course-videos/:id
func (ctrl *CourseVideoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	var body dto.UpdateCourseVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonInvalid(c, err, "course_vedio_title and vedio_url are required")
	}

	row, err := ctrl.updateVideo(id, body, ctrl.Prober.Shape())
	if schema.IsSchemaMismatch(err) {
		ctrl.Prober.Invalidate()
		row, err = ctrl.updateVideo(id, body, ctrl.Prober.Shape())
	}
	if err != nil {
		log.Printf("[ERROR] update course video: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if row.ID == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
	}

	return c.JSON(fiber.Map{
		"message": "Video updated successfully",
		"video":   dto.ToCourseVideoDTO(row),
	})
}

func (ctrl *CourseVideoController) updateVideo(id int, body dto.UpdateCourseVideoRequest, shape schema.Shape) (model.CourseVideoModel, error) {
	returning := "id, course_vedio_title, vedio_url, description"
	if shape.CoursesVedioHasCourseTitle {
		returning += ", course_title"
	}
	if shape.CoursesVedioHasCreatedAt {
		returning += ", created_at"
	}

	var row model.CourseVideoModel
	err := ctrl.DB.Raw(
		"UPDATE courses_vedio SET course_vedio_title = ?, vedio_url = ?, description = ? WHERE id = ? RETURNING "+returning,
		body.CourseVedioTitle, body.VedioURL, body.Description, id,
	).Scan(&row).Error
	return row, err
}

// DELETE /api/admin/course-videos/:id
func (ctrl *CourseVideoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}
	if err := ctrl.DB.Exec("DELETE FROM courses_vedio WHERE id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete course video: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonMessage(c, "Video deleted successfully")
}
