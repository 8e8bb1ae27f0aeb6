package models

import "fmt"

// Course represents a course taught in a semester, optionally by a teacher.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Semester  *int   `json:"semester,omitempty" db:"semester"`
	Year      *int   `json:"year,omitempty" db:"year"`
	TeacherID *int64 `json:"teacherId,omitempty" db:"teacher_id"`
	Credits   *int   `json:"credits,omitempty" db:"credits"`
}

// SameAs compares identity only
func (c *Course) SameAs(other *Course) bool {
	return c != nil && other != nil && c.ID != 0 && c.ID == other.ID
}

func (c Course) String() string {
	return fmt.Sprintf("Course{id=%d, name=%q, semester=%s, year=%s, teacherId=%s, credits=%s}",
		c.ID, c.Name, optInt(c.Semester), optInt(c.Year), optID(c.TeacherID), optInt(c.Credits))
}
