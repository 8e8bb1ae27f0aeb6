package services

import (
	"context"
	"math"
	"time"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/helpers"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// GradeBookService defines grade book operations: referential checks on new
// grades, the three averages, idempotent group creation and plain CRUD.
type GradeBookService interface {
	AddGrade(ctx context.Context, studentID, courseID int64, teacherID *int64, value float64, date *time.Time) (*models.Grade, error)
	GetStudentAverageGrade(ctx context.Context, studentID int64) (float64, error)
	GetGroupAverageForCourse(ctx context.Context, groupID, courseID int64) (float64, error)
	GetTeacherAverageGrade(ctx context.Context, teacherID int64) (float64, error)
	CreateGroup(ctx context.Context, name string, year *int) (*models.Group, error)

	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) (bool, error)
	DeleteStudent(ctx context.Context, id int64) (bool, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error)
	GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error)

	CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) (bool, error)
	DeleteTeacher(ctx context.Context, id int64) (bool, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	FindTeachersByLastName(ctx context.Context, lastName string) ([]*models.Teacher, error)

	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) (bool, error)
	DeleteCourse(ctx context.Context, id int64) (bool, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)

	UpdateGroup(ctx context.Context, group *models.Group) (bool, error)
	DeleteGroup(ctx context.Context, id int64) (bool, error)
	GetGroup(ctx context.Context, id int64) (*models.Group, error)
	GetAllGroups(ctx context.Context) ([]*models.Group, error)
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)

	UpdateGrade(ctx context.Context, grade *models.Grade) (bool, error)
	DeleteGrade(ctx context.Context, id int64) (bool, error)
	GetGrade(ctx context.Context, id int64) (*models.Grade, error)
	GetAllGrades(ctx context.Context) ([]*models.Grade, error)
	GetGradesForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
	GetGradesForCourse(ctx context.Context, courseID int64) ([]*models.Grade, error)
	GetGradesForTeacher(ctx context.Context, teacherID int64) ([]*models.Grade, error)
	GetGradesForStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error)
}

// Option configures the service
type Option func(*gradeBookServiceImpl)

// WithClock replaces the clock used to date grades added without a date
func WithClock(now func() time.Time) Option {
	return func(s *gradeBookServiceImpl) {
		s.now = now
	}
}

// gradeBookServiceImpl implements the GradeBookService interface
type gradeBookServiceImpl struct {
	groups   GroupStore
	teachers TeacherStore
	courses  CourseStore
	students StudentStore
	grades   GradeStore
	now      func() time.Time
}

// NewGradeBookService creates a new grade book service instance
func NewGradeBookService(stores Stores, opts ...Option) GradeBookService {
	s := &gradeBookServiceImpl{
		groups:   stores.Groups,
		teachers: stores.Teachers,
		courses:  stores.Courses,
		students: stores.Students,
		grades:   stores.Grades,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxGradeValue is the largest magnitude the NUMERIC(5,2) value column holds
const MaxGradeValue = 999.99

// gradeValue rounds v half away from zero to the two decimals the store keeps
// and rejects what the column cannot hold.
func gradeValue(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewInvalidArgumentError("Grade value must be a finite number")
	}
	rounded := math.Round(v*100) / 100
	if math.Abs(rounded) > MaxGradeValue {
		return 0, apperrors.NewInvalidArgumentError("Grade value %v is out of range [-%.2f, %.2f]", v, MaxGradeValue, MaxGradeValue)
	}
	return rounded, nil
}

// AddGrade validates the value and every reference before inserting. A failed
// check writes nothing.
func (s *gradeBookServiceImpl) AddGrade(ctx context.Context, studentID, courseID int64, teacherID *int64, value float64, date *time.Time) (*models.Grade, error) {
	value, err := gradeValue(value)
	if err != nil {
		return nil, err
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewInvalidArgumentError("Student with id %d not found", studentID)
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.NewInvalidArgumentError("Course with id %d not found", courseID)
	}

	if teacherID != nil {
		teacher, err := s.teachers.FindByID(ctx, *teacherID)
		if err != nil {
			return nil, err
		}
		if teacher == nil {
			return nil, apperrors.NewInvalidArgumentError("Teacher with id %d not found", *teacherID)
		}
	}

	gradeDate := helpers.DateOf(s.now())
	if date != nil {
		gradeDate = helpers.DateOf(*date)
	}

	grade := &models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		TeacherID: teacherID,
		Value:     value,
		GradeDate: gradeDate,
	}
	if _, err := s.grades.Insert(ctx, grade); err != nil {
		return nil, err
	}

	logger.Debug().
		Int64("grade_id", grade.ID).
		Int64("student_id", studentID).
		Int64("course_id", courseID).
		Float64("value", value).
		Msg("Grade added")
	return grade, nil
}

// mean is the arithmetic mean of the grade values, 0.0 for no grades
func mean(grades []*models.Grade) float64 {
	if len(grades) == 0 {
		return 0.0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Value
	}
	return sum / float64(len(grades))
}

func (s *gradeBookServiceImpl) GetStudentAverageGrade(ctx context.Context, studentID int64) (float64, error) {
	grades, err := s.grades.FindByStudentID(ctx, studentID)
	if err != nil {
		return 0, err
	}
	return mean(grades), nil
}

// GetGroupAverageForCourse pools every grade of every group member in the
// course. A student with two grades contributes two data points.
func (s *gradeBookServiceImpl) GetGroupAverageForCourse(ctx context.Context, groupID, courseID int64) (float64, error) {
	students, err := s.students.FindByGroupID(ctx, groupID)
	if err != nil {
		return 0, err
	}

	var pooled []*models.Grade
	for _, student := range students {
		grades, err := s.grades.FindByStudentAndCourse(ctx, student.ID, courseID)
		if err != nil {
			return 0, err
		}
		pooled = append(pooled, grades...)
	}
	return mean(pooled), nil
}

func (s *gradeBookServiceImpl) GetTeacherAverageGrade(ctx context.Context, teacherID int64) (float64, error) {
	grades, err := s.grades.FindByTeacherID(ctx, teacherID)
	if err != nil {
		return 0, err
	}
	return mean(grades), nil
}

// CreateGroup returns the existing group with this name unchanged, year
// included. Only an unknown name inserts.
func (s *gradeBookServiceImpl) CreateGroup(ctx context.Context, name string, year *int) (*models.Group, error) {
	existing, err := s.groups.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.groups.Insert(ctx, &models.Group{Name: name, Year: year})
}

// Students

func (s *gradeBookServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	return s.students.Insert(ctx, student)
}

func (s *gradeBookServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (bool, error) {
	return s.students.Update(ctx, student)
}

func (s *gradeBookServiceImpl) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	return s.students.Delete(ctx, id)
}

func (s *gradeBookServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.FindByID(ctx, id)
}

func (s *gradeBookServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.FindAll(ctx)
}

func (s *gradeBookServiceImpl) GetStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	return s.students.FindByGroupID(ctx, groupID)
}

func (s *gradeBookServiceImpl) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	return s.students.FindByCourseID(ctx, courseID)
}

// Teachers

func (s *gradeBookServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	return s.teachers.Insert(ctx, teacher)
}

func (s *gradeBookServiceImpl) UpdateTeacher(ctx context.Context, teacher *models.Teacher) (bool, error) {
	return s.teachers.Update(ctx, teacher)
}

func (s *gradeBookServiceImpl) DeleteTeacher(ctx context.Context, id int64) (bool, error) {
	return s.teachers.Delete(ctx, id)
}

func (s *gradeBookServiceImpl) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teachers.FindByID(ctx, id)
}

func (s *gradeBookServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teachers.FindAll(ctx)
}

func (s *gradeBookServiceImpl) FindTeachersByLastName(ctx context.Context, lastName string) ([]*models.Teacher, error) {
	return s.teachers.FindByLastName(ctx, lastName)
}

// Courses

func (s *gradeBookServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	return s.courses.Insert(ctx, course)
}

func (s *gradeBookServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (bool, error) {
	return s.courses.Update(ctx, course)
}

func (s *gradeBookServiceImpl) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	return s.courses.Delete(ctx, id)
}

func (s *gradeBookServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *gradeBookServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *gradeBookServiceImpl) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	return s.courses.FindByName(ctx, name)
}

func (s *gradeBookServiceImpl) GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	return s.courses.FindByTeacherID(ctx, teacherID)
}

// Groups

func (s *gradeBookServiceImpl) UpdateGroup(ctx context.Context, group *models.Group) (bool, error) {
	return s.groups.Update(ctx, group)
}

func (s *gradeBookServiceImpl) DeleteGroup(ctx context.Context, id int64) (bool, error) {
	return s.groups.Delete(ctx, id)
}

func (s *gradeBookServiceImpl) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	return s.groups.FindByID(ctx, id)
}

func (s *gradeBookServiceImpl) GetAllGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groups.FindAll(ctx)
}

func (s *gradeBookServiceImpl) GetGroupByName(ctx context.Context, name string) (*models.Group, error) {
	return s.groups.FindByName(ctx, name)
}

// Grades

func (s *gradeBookServiceImpl) UpdateGrade(ctx context.Context, grade *models.Grade) (bool, error) {
	if grade != nil {
		value, err := gradeValue(grade.Value)
		if err != nil {
			return false, err
		}
		grade.Value = value
	}
	return s.grades.Update(ctx, grade)
}

func (s *gradeBookServiceImpl) DeleteGrade(ctx context.Context, id int64) (bool, error) {
	return s.grades.Delete(ctx, id)
}

func (s *gradeBookServiceImpl) GetGrade(ctx context.Context, id int64) (*models.Grade, error) {
	return s.grades.FindByID(ctx, id)
}

func (s *gradeBookServiceImpl) GetAllGrades(ctx context.Context) ([]*models.Grade, error) {
	return s.grades.FindAll(ctx)
}

func (s *gradeBookServiceImpl) GetGradesForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return s.grades.FindByStudentID(ctx, studentID)
}

func (s *gradeBookServiceImpl) GetGradesForCourse(ctx context.Context, courseID int64) ([]*models.Grade, error) {
	return s.grades.FindByCourseID(ctx, courseID)
}

func (s *gradeBookServiceImpl) GetGradesForTeacher(ctx context.Context, teacherID int64) ([]*models.Grade, error) {
	return s.grades.FindByTeacherID(ctx, teacherID)
}

func (s *gradeBookServiceImpl) GetGradesForStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error) {
	return s.grades.FindByStudentAndCourse(ctx, studentID, courseID)
}
