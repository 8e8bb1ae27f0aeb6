package services

import (
	"context"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
)

// crudStore is the contract every entity repository satisfies
type crudStore[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	Insert(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GroupStore is the group persistence the service depends on
type GroupStore interface {
	crudStore[models.Group]
	FindByName(ctx context.Context, name string) (*models.Group, error)
}

// TeacherStore is the teacher persistence the service depends on
type TeacherStore interface {
	crudStore[models.Teacher]
	FindByLastName(ctx context.Context, lastName string) ([]*models.Teacher, error)
}

// CourseStore is the course persistence the service depends on
type CourseStore interface {
	crudStore[models.Course]
	FindByName(ctx context.Context, name string) (*models.Course, error)
	FindByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error)
}

// StudentStore is the student persistence the service depends on
type StudentStore interface {
	crudStore[models.Student]
	FindByGroupID(ctx context.Context, groupID int64) ([]*models.Student, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error)
}

// GradeStore is the grade persistence the service depends on
type GradeStore interface {
	crudStore[models.Grade]
	FindByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*models.Grade, error)
	FindByTeacherID(ctx context.Context, teacherID int64) ([]*models.Grade, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error)
}

// Stores bundles the five stores
type Stores struct {
	Groups   GroupStore
	Teachers TeacherStore
	Courses  CourseStore
	Students StudentStore
	Grades   GradeStore
}

// StoresFrom adapts the PostgreSQL repositories
func StoresFrom(repos *repositories.Repositories) Stores {
	return Stores{
		Groups:   repos.GroupRepository,
		Teachers: repos.TeacherRepository,
		Courses:  repos.CourseRepository,
		Students: repos.StudentRepository,
		Grades:   repos.GradeRepository,
	}
}
