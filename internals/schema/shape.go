package schema

import (
	"log"
	"sync"

	"gorm.io/gorm"
)

// Shape is the capability table for the live database: which of the
// historically-deployed tables and column spellings actually exist right
// now. Handlers branch on it instead of trial-and-error for every write
// whose column list varies across schema revisions.
type Shape struct {
	HasUsers           bool
	HasEnrollments     bool
	HasUserEnrollments bool
	HasUserProgress    bool

	UsersHasCourseOpted  bool
	UsersHasCoursesOpted bool

	CoursesHasDescription bool

	CoursesVedioHasCid         bool
	CoursesVedioHasCourseTitle bool
	CoursesVedioHasCreatedAt   bool
}

// Prober resolves the Shape once per process and caches it. Invalidate
// forces a re-probe, used when a probed write still trips over a schema
// mismatch (somebody altered the schema underneath us).
type Prober struct {
	db *gorm.DB

	mu     sync.Mutex
	cached *Shape
}

func NewProber(db *gorm.DB) *Prober {
	return &Prober{db: db}
}

func (p *Prober) Shape() Shape {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached == nil {
		s := probe(p.db)
		p.cached = &s
		log.Printf("[INFO] schema shape resolved: %+v", s)
	}
	return *p.cached
}

func (p *Prober) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

func probe(db *gorm.DB) Shape {
	m := db.Migrator()
	return Shape{
		HasUsers:           m.HasTable("users"),
		HasEnrollments:     m.HasTable("enrollments"),
		HasUserEnrollments: m.HasTable("user_enrollments"),
		HasUserProgress:    m.HasTable("user_progress"),

		UsersHasCourseOpted:  m.HasColumn("users", "course_opted"),
		UsersHasCoursesOpted: m.HasColumn("users", "courses_opted"),

		CoursesHasDescription: m.HasColumn("courses", "description"),

		CoursesVedioHasCid:         m.HasColumn("courses_vedio", "cid"),
		CoursesVedioHasCourseTitle: m.HasColumn("courses_vedio", "course_title"),
		CoursesVedioHasCreatedAt:   m.HasColumn("courses_vedio", "created_at"),
	}
}
