package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradebook/internal/app/models"
)

var courseTable = tableSpec[models.Course]{
	name:    "courses",
	entity:  "course",
	columns: []string{"name", "semester", "year", "teacher_id", "credits"},
	orderBy: []string{"name"},
	id:      func(c *models.Course) int64 { return c.ID },
	values: func(c *models.Course) []interface{} {
		return []interface{}{c.Name, c.Semester, c.Year, c.TeacherID, c.Credits}
	},
	scan: func(c *models.Course) []interface{} {
		return []interface{}{&c.ID, &c.Name, &c.Semester, &c.Year, &c.TeacherID, &c.Credits}
	},
	returned: func(c *models.Course) []interface{} {
		return []interface{}{&c.ID}
	},
}

// CourseRepository handles course database operations
type CourseRepository struct {
	*crudRepository[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{crudRepository: newCrudRepository(db, courseTable)}
}

// FindByName returns the first course (by id) with this name.
// Course names are not unique.
func (r *CourseRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	return r.one(ctx,
		r.selectAll().Where(squirrel.Eq{"name": name}).OrderBy("id").Limit(1),
		fmt.Sprintf("finding course by name %q", name))
}

// FindByTeacherID returns the courses taught by a teacher, by name
func (r *CourseRepository) FindByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"teacher_id": teacherID},
		fmt.Sprintf("finding courses by teacher id %d", teacherID),
		"name")
}
