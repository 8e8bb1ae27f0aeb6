package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/gradebook/internal/app/models"
	appServices "github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// Result lists the records the demo data set consists of
type Result struct {
	Group   *appModels.Group
	Teacher *appModels.Teacher
	Course  *appModels.Course
	Student *appModels.Student
	Grade   *appModels.Grade
}

// demo data: one group, one teacher teaching one course, one student with one grade
var (
	demoGroup   = "IP-11"
	demoTeacher = appModels.Teacher{
		FirstName:  "Ivan",
		LastName:   "Ivanenko",
		Department: helpers.Ptr("CS"),
		Email:      helpers.Ptr("ivan@example.com"),
	}
	demoCourse = appModels.Course{
		Name:     "Programming 1",
		Semester: helpers.Ptr(1),
		Year:     helpers.Ptr(2024),
		Credits:  helpers.Ptr(5),
	}
	demoStudent = appModels.Student{
		FirstName:      "Maksym",
		LastName:       "Pashchenko",
		Email:          helpers.Ptr("maks@example.com"),
		EnrollmentYear: helpers.Ptr(2024),
	}
	demoGradeValue = 95.5
	demoGradeDate  = time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
)

// CreateDefaultData creates the demo data set through the grade book service.
// Records that already exist are reused, so running it twice changes nothing.
func CreateDefaultData(ctx context.Context, gradeBook appServices.GradeBookService, lgr zerolog.Logger) (*Result, error) {
	lgr.Info().Msg("Checking/Creating default data...")
	res := &Result{}
	var err error

	if res.Group, err = gradeBook.CreateGroup(ctx, demoGroup, helpers.Ptr(1)); err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	if res.Teacher, err = findOrCreateTeacher(ctx, gradeBook); err != nil {
		return nil, fmt.Errorf("creating teacher: %w", err)
	}

	if res.Course, err = findOrCreateCourse(ctx, gradeBook, res.Teacher.ID); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}

	if res.Student, err = findOrCreateStudent(ctx, gradeBook, res.Group.ID); err != nil {
		return nil, fmt.Errorf("creating student: %w", err)
	}

	grades, err := gradeBook.GetGradesForStudentAndCourse(ctx, res.Student.ID, res.Course.ID)
	if err != nil {
		return nil, fmt.Errorf("checking grades: %w", err)
	}
	if len(grades) > 0 {
		res.Grade = grades[0]
	} else {
		date := demoGradeDate
		res.Grade, err = gradeBook.AddGrade(ctx, res.Student.ID, res.Course.ID, &res.Teacher.ID, demoGradeValue, &date)
		if err != nil {
			return nil, fmt.Errorf("adding grade: %w", err)
		}
	}

	lgr.Info().
		Int64("groupID", res.Group.ID).
		Int64("teacherID", res.Teacher.ID).
		Int64("courseID", res.Course.ID).
		Int64("studentID", res.Student.ID).
		Int64("gradeID", res.Grade.ID).
		Msg("Default data is in place")
	return res, nil
}

func findOrCreateTeacher(ctx context.Context, gradeBook appServices.GradeBookService) (*appModels.Teacher, error) {
	teachers, err := gradeBook.FindTeachersByLastName(ctx, demoTeacher.LastName)
	if err != nil {
		return nil, err
	}
	for _, t := range teachers {
		if t.FirstName == demoTeacher.FirstName {
			return t, nil
		}
	}
	teacher := demoTeacher
	return gradeBook.CreateTeacher(ctx, &teacher)
}

func findOrCreateCourse(ctx context.Context, gradeBook appServices.GradeBookService, teacherID int64) (*appModels.Course, error) {
	course, err := gradeBook.GetCourseByName(ctx, demoCourse.Name)
	if err != nil || course != nil {
		return course, err
	}
	c := demoCourse
	c.TeacherID = &teacherID
	return gradeBook.CreateCourse(ctx, &c)
}

func findOrCreateStudent(ctx context.Context, gradeBook appServices.GradeBookService, groupID int64) (*appModels.Student, error) {
	members, err := gradeBook.GetStudentsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, s := range members {
		if s.FirstName == demoStudent.FirstName && s.LastName == demoStudent.LastName {
			return s, nil
		}
	}
	student := demoStudent
	student.GroupID = &groupID
	created, err := gradeBook.CreateStudent(ctx, &student)
	if err == nil && created == nil {
		err = errors.New("student was not created")
	}
	return created, err
}
