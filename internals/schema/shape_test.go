package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProberResolvesReconciledShape(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Reconcile(db))

	p := NewProber(db)
	shape := p.Shape()

	require.True(t, shape.CoursesHasDescription)
	require.True(t, shape.CoursesVedioHasCid)
	require.True(t, shape.CoursesVedioHasCourseTitle)
	require.True(t, shape.CoursesVedioHasCreatedAt)

	// Learner tables belong to another subsystem and are absent here.
	require.False(t, shape.HasUsers)
	require.False(t, shape.HasEnrollments)
}

func TestProberCachesUntilInvalidated(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Reconcile(db))

	p := NewProber(db)
	require.False(t, p.Shape().HasUsers)

	require.NoError(t, db.Exec(
		`CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT, course_opted TEXT)`,
	).Error)

	// Cached shape does not see the new table.
	require.False(t, p.Shape().HasUsers)

	p.Invalidate()
	shape := p.Shape()
	require.True(t, shape.HasUsers)
	require.True(t, shape.UsersHasCourseOpted)
	require.False(t, shape.UsersHasCoursesOpted)
}
