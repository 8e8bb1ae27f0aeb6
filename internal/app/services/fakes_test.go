package services

import (
	"context"
	"sort"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// memTable is an in-memory stand-in for one table. Rows are stored as
// copies so callers cannot mutate stored state.
type memTable[T any] struct {
	rows    map[int64]T
	nextID  int64
	inserts int
	err     error
	id      func(*T) *int64
}

func newMemTable[T any](id func(*T) *int64) *memTable[T] {
	return &memTable[T]{rows: map[int64]T{}, nextID: 1, id: id}
}

func (m *memTable[T]) FindByID(_ context.Context, id int64) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memTable[T]) FindAll(_ context.Context) ([]*T, error) {
	return m.filter(func(*T) bool { return true })
}

func (m *memTable[T]) Insert(_ context.Context, entity *T) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	*m.id(entity) = m.nextID
	m.nextID++
	m.rows[*m.id(entity)] = *entity
	m.inserts++
	return entity, nil
}

func (m *memTable[T]) Update(_ context.Context, entity *T) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	id := *m.id(entity)
	if id <= 0 {
		return false, apperrors.NewInvalidArgumentError("id must be set for update")
	}
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	m.rows[id] = *entity
	return true, nil
}

func (m *memTable[T]) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// filter returns matching rows by ascending id
func (m *memTable[T]) filter(keep func(*T) bool) ([]*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := []*T{}
	for _, id := range ids {
		row := m.rows[id]
		if keep(&row) {
			result = append(result, &row)
		}
	}
	return result, nil
}

type memGroups struct{ *memTable[models.Group] }

func (m memGroups) FindByName(_ context.Context, name string) (*models.Group, error) {
	rows, err := m.filter(func(g *models.Group) bool { return g.Name == name })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

type memTeachers struct{ *memTable[models.Teacher] }

func (m memTeachers) FindByLastName(_ context.Context, lastName string) ([]*models.Teacher, error) {
	return m.filter(func(t *models.Teacher) bool { return t.LastName == lastName })
}

type memCourses struct{ *memTable[models.Course] }

func (m memCourses) FindByName(_ context.Context, name string) (*models.Course, error) {
	rows, err := m.filter(func(c *models.Course) bool { return c.Name == name })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (m memCourses) FindByTeacherID(_ context.Context, teacherID int64) ([]*models.Course, error) {
	return m.filter(func(c *models.Course) bool { return c.TeacherID != nil && *c.TeacherID == teacherID })
}

type memStudents struct {
	*memTable[models.Student]
	grades *memTable[models.Grade]
}

func (m memStudents) FindByGroupID(_ context.Context, groupID int64) ([]*models.Student, error) {
	return m.filter(func(s *models.Student) bool { return s.GroupID != nil && *s.GroupID == groupID })
}

func (m memStudents) FindByCourseID(_ context.Context, courseID int64) ([]*models.Student, error) {
	return m.filter(func(s *models.Student) bool {
		for _, g := range m.grades.rows {
			if g.StudentID == s.ID && g.CourseID == courseID {
				return true
			}
		}
		return false
	})
}

type memGrades struct{ *memTable[models.Grade] }

func (m memGrades) FindByStudentID(_ context.Context, studentID int64) ([]*models.Grade, error) {
	return m.filter(func(g *models.Grade) bool { return g.StudentID == studentID })
}

func (m memGrades) FindByCourseID(_ context.Context, courseID int64) ([]*models.Grade, error) {
	return m.filter(func(g *models.Grade) bool { return g.CourseID == courseID })
}

func (m memGrades) FindByTeacherID(_ context.Context, teacherID int64) ([]*models.Grade, error) {
	return m.filter(func(g *models.Grade) bool { return g.TeacherID != nil && *g.TeacherID == teacherID })
}

func (m memGrades) FindByStudentAndCourse(_ context.Context, studentID, courseID int64) ([]*models.Grade, error) {
	return m.filter(func(g *models.Grade) bool { return g.StudentID == studentID && g.CourseID == courseID })
}

type memStores struct {
	groups   *memTable[models.Group]
	teachers *memTable[models.Teacher]
	courses  *memTable[models.Course]
	students *memTable[models.Student]
	grades   *memTable[models.Grade]
}

func newMemStores() *memStores {
	return &memStores{
		groups:   newMemTable(func(g *models.Group) *int64 { return &g.ID }),
		teachers: newMemTable(func(t *models.Teacher) *int64 { return &t.ID }),
		courses:  newMemTable(func(c *models.Course) *int64 { return &c.ID }),
		students: newMemTable(func(s *models.Student) *int64 { return &s.ID }),
		grades:   newMemTable(func(g *models.Grade) *int64 { return &g.ID }),
	}
}

func (m *memStores) Stores() Stores {
	return Stores{
		Groups:   memGroups{m.groups},
		Teachers: memTeachers{m.teachers},
		Courses:  memCourses{m.courses},
		Students: memStudents{memTable: m.students, grades: m.grades},
		Grades:   memGrades{m.grades},
	}
}
