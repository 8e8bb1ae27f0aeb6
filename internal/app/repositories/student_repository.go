package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradebook/internal/app/models"
)

var studentTable = tableSpec[models.Student]{
	name:      "students",
	entity:    "student",
	columns:   []string{"first_name", "last_name", "email", "group_id", "enrollment_year"},
	generated: []string{"created_at"},
	orderBy:   []string{"last_name", "first_name"},
	id:        func(s *models.Student) int64 { return s.ID },
	values: func(s *models.Student) []interface{} {
		return []interface{}{s.FirstName, s.LastName, s.Email, s.GroupID, s.EnrollmentYear}
	},
	scan: func(s *models.Student) []interface{} {
		return []interface{}{&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.GroupID, &s.EnrollmentYear, &s.CreatedAt}
	},
	returned: func(s *models.Student) []interface{} {
		return []interface{}{&s.ID, &s.CreatedAt}
	},
}

// StudentRepository handles student database operations
type StudentRepository struct {
	*crudRepository[models.Student]
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{crudRepository: newCrudRepository(db, studentTable)}
}

// FindByGroupID returns the members of a group, by last then first name
func (r *StudentRepository) FindByGroupID(ctx context.Context, groupID int64) ([]*models.Student, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"group_id": groupID},
		fmt.Sprintf("finding students by group id %d", groupID),
		"last_name", "first_name")
}

// FindByCourseID returns the students holding at least one grade in a course
func (r *StudentRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	qb := r.sb.Select(r.table.qualifiedColumns("s")...).
		Distinct().
		From("students s").
		Join("grades g ON g.student_id = s.id").
		Where(squirrel.Eq{"g.course_id": courseID}).
		OrderBy("s.last_name", "s.first_name")

	return r.many(ctx, qb, fmt.Sprintf("finding students by course id %d", courseID))
}
