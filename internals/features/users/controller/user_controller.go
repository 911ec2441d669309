package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/dto"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/schema"
)

// UserController exposes the read-only learner listing. Learner accounts
// are owned by another subsystem; across deployments their enrollment and
// progress live in an enrollments join table, in legacy user_enrollments +
// user_progress tables, or as columns directly on the users row (with two
// historical spellings of course_opted). The variant cascade degrades in
// that order and the normalizer hides which source actually answered.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type userRow struct {
	ID          int      `gorm:"column:id"`
	FirstName   string   `gorm:"column:first_name"`
	LastName    string   `gorm:"column:last_name"`
	Email       string   `gorm:"column:email"`
	CourseOpted *string  `gorm:"column:course_opted"`
	ProgressRaw *string  `gorm:"column:progress_raw"`
	ProgressAvg *float64 `gorm:"column:progress_avg"`
}

var userListVariants = []schema.Variant{
	{
		Name: "enrollments join",
		SQL: `
			SELECT u.id,
			       COALESCE(u.first_name, '') AS first_name,
			       COALESCE(u.last_name, '')  AS last_name,
			       u.email,
			       e.courses_opted AS course_opted,
			       e.progress      AS progress_raw
			FROM users u
			LEFT JOIN enrollments e ON e.uid = u.id
			ORDER BY u.id`,
	},
	{
		Name: "user_enrollments join, course_opted",
		SQL: `
			SELECT u.id,
			       COALESCE(u.first_name, '') AS first_name,
			       COALESCE(u.last_name, '')  AS last_name,
			       u.email,
			       COALESCE(u.course_opted, c.course_title) AS course_opted,
			       u.progress AS progress_raw,
			       (SELECT ROUND(AVG(up.progress))
			        FROM user_progress up
			        WHERE up.user_id = u.id AND (up.course_id = c.id OR c.id IS NULL)) AS progress_avg
			FROM users u
			LEFT JOIN user_enrollments ue ON u.id = ue.user_id
			LEFT JOIN courses c ON ue.course_id = c.id
			ORDER BY u.id`,
	},
	{
		Name: "user_enrollments join, courses_opted",
		SQL: `
			SELECT u.id,
			       COALESCE(u.first_name, '') AS first_name,
			       COALESCE(u.last_name, '')  AS last_name,
			       u.email,
			       COALESCE(u.courses_opted, c.course_title) AS course_opted,
			       u.progress AS progress_raw,
			       (SELECT ROUND(AVG(up.progress))
			        FROM user_progress up
			        WHERE up.user_id = u.id AND (up.course_id = c.id OR c.id IS NULL)) AS progress_avg
			FROM users u
			LEFT JOIN user_enrollments ue ON u.id = ue.user_id
			LEFT JOIN courses c ON ue.course_id = c.id
			ORDER BY u.id`,
	},
	{
		Name: "users only, course_opted",
		SQL: `
			SELECT id,
			       COALESCE(first_name, '') AS first_name,
			       COALESCE(last_name, '')  AS last_name,
			       email,
			       course_opted,
			       progress AS progress_raw
			FROM users
			ORDER BY id`,
	},
	{
		Name: "users only, courses_opted",
		SQL: `
			SELECT id,
			       COALESCE(first_name, '') AS first_name,
			       COALESCE(last_name, '')  AS last_name,
			       email,
			       courses_opted AS course_opted,
			       progress AS progress_raw
			FROM users
			ORDER BY id`,
	},
}

// GET /api/admin/users
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	var rows []userRow
	variant, err := schema.RunCascade(ctrl.DB, &rows, userListVariants...)
	if err != nil {
		log.Printf("[ERROR] get users (variant %q): %v", variant, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	log.Printf("[INFO] users served by variant %q", variant)

	out := make([]dto.UserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UserDTO{
			ID:          r.ID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
			CourseOpted: dto.NormalizeCourse(r.CourseOpted),
			Progress:    dto.NormalizeProgress(r.ProgressRaw, r.ProgressAvg),
		})
	}
	return c.JSON(out)
}
