package schema

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Reconcile brings a partially-initialized or legacy database up to the
// shape the handlers rely on: create missing tables, add missing columns,
// repair defaults. It never drops or rewrites existing data (the single
// exception is backfilling NULL created_at values) and every statement is
// individually best-effort, so a database we lack ALTER rights on still
// boots. Only the required base tables failing to create is fatal; the
// query cascade re-probes compatibility per request for everything else.
//
// Safe to run twice, and safe to race against another process running it:
// every DDL statement is guarded by an existence check and a lost race just
// degrades to a swallowed "already exists" error.
func Reconcile(db *gorm.DB) error {
	required := []tableSpec{
		{"admins", &adminTable{}},
		{"courses", &courseTable{}},
	}
	optional := []tableSpec{
		{"videos", &videoTable{}},
		{"quizzes", &legacyQuizTable{}},
		{"courses_vedio", &courseVideoTable{}},
		{"quizes", &quizTable{}},
		{"quiz_content", &quizContentTable{}},
	}

	for _, t := range required {
		if err := ensureTable(db, t); err != nil {
			return fmt.Errorf("required table %s: %w", t.name, err)
		}
	}
	for _, t := range optional {
		if err := ensureTable(db, t); err != nil {
			log.Printf("[WARN] reconcile: table %s: %v", t.name, err)
		}
	}

	// Columns that historical revisions may be missing.
	ensureColumn(db, &adminTable{}, "name")
	ensureColumn(db, &adminTable{}, "role")
	ensureColumn(db, &adminTable{}, "phone")
	ensureColumn(db, &courseTable{}, "course_title")
	ensureColumn(db, &courseTable{}, "description")
	ensureColumn(db, &courseVideoTable{}, "cid")
	ensureTimestampColumn(db, "courses_vedio", "created_at")
	ensureTimestampColumn(db, "quizes", "created_at")

	// Best-effort repairs: type widening, defaults, NULL backfill. These are
	// Postgres statements; on any other dialect (or without privileges) they
	// fail and are ignored like everything else here.
	for _, stmt := range []string{
		"ALTER TABLE admins ALTER COLUMN phone TYPE VARCHAR(20) USING phone::varchar(20)",
		"ALTER TABLE courses_vedio ALTER COLUMN created_at SET DEFAULT CURRENT_TIMESTAMP",
		"UPDATE courses_vedio SET created_at = NOW() WHERE created_at IS NULL",
		"ALTER TABLE quizes ALTER COLUMN created_at SET DEFAULT CURRENT_TIMESTAMP",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("[INFO] reconcile: skipped repair %q: %v", stmt, err)
		}
	}

	return nil
}

type tableSpec struct {
	name  string
	model any
}

func ensureTable(db *gorm.DB, t tableSpec) error {
	m := db.Migrator()
	if m.HasTable(t.name) {
		return nil
	}
	if err := m.CreateTable(t.model); err != nil {
		// Lost a create race with another process: fine, the table exists.
		if m.HasTable(t.name) {
			return nil
		}
		return err
	}
	log.Printf("[INFO] reconcile: created table %s", t.name)
	return nil
}

// ensureTimestampColumn adds a created_at-style column. Postgres accepts a
// non-constant default on ADD COLUMN; sqlite does not, so the column falls
// back to plain nullable there and the later repair statements (or the
// write paths, which set the value explicitly) cover the default.
func ensureTimestampColumn(db *gorm.DB, table, column string) {
	m := db.Migrator()
	if m.HasColumn(table, column) {
		return
	}
	if err := db.Exec(fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN %s TIMESTAMP DEFAULT CURRENT_TIMESTAMP", table, column,
	)).Error; err == nil {
		return
	}
	if err := db.Exec(fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN %s TIMESTAMP", table, column,
	)).Error; err != nil && !m.HasColumn(table, column) {
		log.Printf("[WARN] reconcile: add column %s.%s: %v", table, column, err)
	}
}

func ensureColumn(db *gorm.DB, model any, column string) {
	m := db.Migrator()
	if m.HasColumn(model, column) {
		return
	}
	if err := m.AddColumn(model, column); err != nil && !m.HasColumn(model, column) {
		log.Printf("[WARN] reconcile: add column %s: %v", column, err)
	}
}

// Table definitions mirror the canonical schema revision. They exist only
// for DDL; handlers read and write through their feature models, which can
// tolerate narrower live shapes than these.

// name stays nullable: AddColumn on a populated legacy admins table would
// fail with a bare NOT NULL and the repair would be silently skipped.
type adminTable struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:255"`
	Email     string    `gorm:"column:email;size:255;not null;unique"`
	Password  string    `gorm:"column:password;size:255;not null"`
	Role      string    `gorm:"column:role;size:20;not null;default:'Admin'"`
	Phone     string    `gorm:"column:phone;size:20"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (adminTable) TableName() string { return "admins" }

type courseTable struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	CourseTitle string    `gorm:"column:course_title;size:255"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (courseTable) TableName() string { return "courses" }

type videoTable struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	CourseID    int       `gorm:"column:course_id"`
	Title       string    `gorm:"column:title;size:255"`
	Description string    `gorm:"column:description"`
	VideoURL    string    `gorm:"column:video_url"`
	CreatedAt   time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (videoTable) TableName() string { return "videos" }

type legacyQuizTable struct {
	ID            int       `gorm:"column:id;primaryKey;autoIncrement"`
	CourseID      int       `gorm:"column:course_id"`
	Title         string    `gorm:"column:title;size:255"`
	Question      string    `gorm:"column:question"`
	OptionA       string    `gorm:"column:option_a"`
	OptionB       string    `gorm:"column:option_b"`
	OptionC       string    `gorm:"column:option_c"`
	OptionD       string    `gorm:"column:option_d"`
	CorrectAnswer string    `gorm:"column:correct_answer"`
	CreatedAt     time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (legacyQuizTable) TableName() string { return "quizzes" }

type courseVideoTable struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement"`
	CourseVedioTitle string     `gorm:"column:course_vedio_title;size:255;not null"`
	VedioURL         string     `gorm:"column:vedio_url;not null"`
	Description      string     `gorm:"column:description"`
	CourseTitle      string     `gorm:"column:course_title;size:255;not null"`
	Cid              *int       `gorm:"column:cid"`
	CreatedAt        *time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (courseVideoTable) TableName() string { return "courses_vedio" }

type quizTable struct {
	Qid       int       `gorm:"column:qid;primaryKey;autoIncrement"`
	Cid       int       `gorm:"column:cid"`
	QuizTitle string    `gorm:"column:quiz_title;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (quizTable) TableName() string { return "quizes" }

type quizContentTable struct {
	QuestionID    int    `gorm:"column:question_id;primaryKey;autoIncrement"`
	Qid           int    `gorm:"column:qid"`
	Question      string `gorm:"column:question;not null"`
	OptionA       string `gorm:"column:option_a;not null"`
	OptionB       string `gorm:"column:option_b;not null"`
	OptionC       string `gorm:"column:option_c;not null"`
	OptionD       string `gorm:"column:option_d;not null"`
	CorrectAnswer string `gorm:"column:correct_answer;not null"`
}

func (quizContentTable) TableName() string { return "quiz_content" }
