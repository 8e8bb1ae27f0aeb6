package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradebook/internal/app/models"
)

// gradeDateOrder is the documented grade ordering: newest first, ties by id
var gradeDateOrder = []string{"grade_date DESC", "id"}

var gradeTable = tableSpec[models.Grade]{
	name:            "grades",
	entity:          "grade",
	columns:         []string{"student_id", "course_id", "teacher_id", "value", "grade_date"},
	returnedColumns: []string{"id", "grade_date"},
	orderBy:         gradeDateOrder,
	id:              func(g *models.Grade) int64 { return g.ID },
	values: func(g *models.Grade) []interface{} {
		var date interface{} = g.GradeDate
		if g.GradeDate.IsZero() {
			date = squirrel.Expr("CURRENT_DATE")
		}
		return []interface{}{g.StudentID, g.CourseID, g.TeacherID, g.Value, date}
	},
	scan: func(g *models.Grade) []interface{} {
		return []interface{}{&g.ID, &g.StudentID, &g.CourseID, &g.TeacherID, &g.Value, &g.GradeDate}
	},
	returned: func(g *models.Grade) []interface{} {
		return []interface{}{&g.ID, &g.GradeDate}
	},
}

// GradeRepository handles grade database operations
type GradeRepository struct {
	*crudRepository[models.Grade]
}

// NewGradeRepository creates a new GradeRepository.
// Insert reads grade_date back so a defaulted date is visible to the caller.
func NewGradeRepository(db DBTX) *GradeRepository {
	return &GradeRepository{crudRepository: newCrudRepository(db, gradeTable)}
}

// FindByStudentID returns all grades of a student
func (r *GradeRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"student_id": studentID},
		fmt.Sprintf("finding grades by student id %d", studentID),
		gradeDateOrder...)
}

// FindByCourseID returns all grades given in a course
func (r *GradeRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*models.Grade, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"course_id": courseID},
		fmt.Sprintf("finding grades by course id %d", courseID),
		gradeDateOrder...)
}

// FindByTeacherID returns all grades issued by a teacher
func (r *GradeRepository) FindByTeacherID(ctx context.Context, teacherID int64) ([]*models.Grade, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"teacher_id": teacherID},
		fmt.Sprintf("finding grades by teacher id %d", teacherID),
		gradeDateOrder...)
}

// FindByStudentAndCourse returns a student's grades in one course
func (r *GradeRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"student_id": studentID, "course_id": courseID},
		fmt.Sprintf("finding grades by student id %d and course id %d", studentID, courseID),
		gradeDateOrder...)
}
