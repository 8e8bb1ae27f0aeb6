package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradebook/internal/app/models"
)

var teacherTable = tableSpec[models.Teacher]{
	name:    "teachers",
	entity:  "teacher",
	columns: []string{"first_name", "last_name", "department", "email"},
	orderBy: []string{"last_name", "first_name"},
	id:      func(t *models.Teacher) int64 { return t.ID },
	values: func(t *models.Teacher) []interface{} {
		return []interface{}{t.FirstName, t.LastName, t.Department, t.Email}
	},
	scan: func(t *models.Teacher) []interface{} {
		return []interface{}{&t.ID, &t.FirstName, &t.LastName, &t.Department, &t.Email}
	},
	returned: func(t *models.Teacher) []interface{} {
		return []interface{}{&t.ID}
	},
}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	*crudRepository[models.Teacher]
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db DBTX) *TeacherRepository {
	return &TeacherRepository{crudRepository: newCrudRepository(db, teacherTable)}
}

// FindByLastName returns the teachers with this exact last name, by first name
func (r *TeacherRepository) FindByLastName(ctx context.Context, lastName string) ([]*models.Teacher, error) {
	return r.findWhere(ctx,
		squirrel.Eq{"last_name": lastName},
		fmt.Sprintf("finding teachers by last name %q", lastName),
		"first_name")
}
