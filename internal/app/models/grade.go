package models

import (
	"fmt"
	"time"
)

// Grade is a single score a student received for a course.
// TeacherID is the grader and may be unknown.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	TeacherID *int64    `json:"teacherId,omitempty" db:"teacher_id"`
	Value     float64   `json:"value" db:"value"`
	GradeDate time.Time `json:"gradeDate" db:"grade_date"`
}

// SameAs compares identity only
func (g *Grade) SameAs(other *Grade) bool {
	return g != nil && other != nil && g.ID != 0 && g.ID == other.ID
}

func (g Grade) String() string {
	return fmt.Sprintf("Grade{id=%d, studentId=%d, courseId=%d, teacherId=%s, value=%.2f, gradeDate=%s}",
		g.ID, g.StudentID, g.CourseID, optID(g.TeacherID), g.Value, g.GradeDate.Format("2006-01-02"))
}
