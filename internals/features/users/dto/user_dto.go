package dto

import (
	"math"
	"strconv"
	"strings"
)

// NoCourse is the label emitted when no enrollment source yields a course.
const NoCourse = "No Course"

type UserDTO struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	CourseOpted string `json:"course_opted"`
	Progress    int    `json:"progress"`
}

// NormalizeCourse collapses any of the stored course labels to the stable
// course_opted field.
func NormalizeCourse(raw *string) string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return NoCourse
	}
	return *raw
}

// NormalizeProgress coerces whatever the live schema stored into an int in
// [0,100]. A direct value that is not a plain non-negative integer string
// is treated as absent, falling back to the aggregated average, then 0.
func NormalizeProgress(raw *string, avg *float64) int {
	if raw != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(*raw)); err == nil && v >= 0 {
			return clampProgress(v)
		}
	}
	if avg != nil {
		return clampProgress(int(math.Round(*avg)))
	}
	return 0
}

func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
