package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/yigit/gradebook/internal/app/export"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// ReportService renders human readable reports and file exports on top of
// the grade book service.
type ReportService interface {
	StudentReport(ctx context.Context, w io.Writer, studentID int64) error
	GroupCourseReport(ctx context.Context, w io.Writer, groupID, courseID int64) error
	TeacherReport(ctx context.Context, w io.Writer, teacherID int64) error

	ExportStudentGrades(ctx context.Context, studentID int64, path string) error
	ExportGroupCourseGrades(ctx context.Context, groupID, courseID int64, path string) error
	ExportTeacherGrades(ctx context.Context, teacherID int64, path string) error
	ExportStudents(ctx context.Context, path string) error

	GroupCourseGrades(ctx context.Context, groupID, courseID int64) ([]*models.Grade, error)
}

type reportServiceImpl struct {
	gradeBook GradeBookService
}

// NewReportService creates a new report service instance
func NewReportService(gradeBook GradeBookService) ReportService {
	return &reportServiceImpl{gradeBook: gradeBook}
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// courseName falls back to the bare id for dangling references
func (s *reportServiceImpl) courseName(ctx context.Context, id int64) (string, error) {
	course, err := s.gradeBook.GetCourse(ctx, id)
	if err != nil {
		return "", err
	}
	if course == nil {
		return "courseId=" + strconv.FormatInt(id, 10), nil
	}
	return course.Name, nil
}

func (s *reportServiceImpl) studentName(ctx context.Context, id int64) (string, error) {
	student, err := s.gradeBook.GetStudent(ctx, id)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "studentId=" + strconv.FormatInt(id, 10), nil
	}
	return student.FullName(), nil
}

// StudentReport prints a student's grades per course and their average.
// An unknown student is reported in the output, not as an error.
func (s *reportServiceImpl) StudentReport(ctx context.Context, w io.Writer, studentID int64) error {
	student, err := s.gradeBook.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		fmt.Fprintf(w, "Student with id %d not found.\n", studentID)
		return nil
	}

	grades, err := s.gradeBook.GetGradesForStudent(ctx, studentID)
	if err != nil {
		return err
	}
	avg, err := s.gradeBook.GetStudentAverageGrade(ctx, studentID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Student report ===")
	fmt.Fprintf(w, "Student: %s (id=%d)\n", student.FullName(), student.ID)
	fmt.Fprintf(w, "Email: %s\n", orDash(student.Email))
	fmt.Fprintln(w, "Grades:")
	if len(grades) == 0 {
		fmt.Fprintln(w, "  No grades yet.")
	}
	for _, g := range grades {
		name, err := s.courseName(ctx, g.CourseID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  - %s: %.2f (%s)\n", name, g.Value, g.GradeDate.Format(helpers.DateLayout))
	}
	fmt.Fprintf(w, "Average grade: %.2f\n", avg)
	return nil
}

// GroupCourseReport prints every member's grades in the course and the
// pooled group average.
func (s *reportServiceImpl) GroupCourseReport(ctx context.Context, w io.Writer, groupID, courseID int64) error {
	group, err := s.gradeBook.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	course, err := s.gradeBook.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if group == nil {
		fmt.Fprintf(w, "Group with id %d not found.\n", groupID)
		return nil
	}
	if course == nil {
		fmt.Fprintf(w, "Course with id %d not found.\n", courseID)
		return nil
	}

	students, err := s.gradeBook.GetStudentsByGroup(ctx, groupID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Group-course report ===")
	fmt.Fprintf(w, "Group: %s (id=%d)\n", group.Name, group.ID)
	fmt.Fprintf(w, "Course: %s (id=%d)\n", course.Name, course.ID)
	if len(students) == 0 {
		fmt.Fprintln(w, "No students in this group.")
		return nil
	}

	for _, student := range students {
		grades, err := s.gradeBook.GetGradesForStudentAndCourse(ctx, student.ID, courseID)
		if err != nil {
			return err
		}
		if len(grades) == 0 {
			fmt.Fprintf(w, "  %s: no grades\n", student.FullName())
			continue
		}
		fmt.Fprintf(w, "  %s:\n", student.FullName())
		for _, g := range grades {
			fmt.Fprintf(w, "    - %.2f (%s)\n", g.Value, g.GradeDate.Format(helpers.DateLayout))
		}
	}

	avg, err := s.gradeBook.GetGroupAverageForCourse(ctx, groupID, courseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Group average for course '%s': %.2f\n", course.Name, avg)
	return nil
}

// TeacherReport prints the grades a teacher issued and their average
func (s *reportServiceImpl) TeacherReport(ctx context.Context, w io.Writer, teacherID int64) error {
	teacher, err := s.gradeBook.GetTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	if teacher == nil {
		fmt.Fprintf(w, "Teacher with id %d not found.\n", teacherID)
		return nil
	}

	grades, err := s.gradeBook.GetGradesForTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	avg, err := s.gradeBook.GetTeacherAverageGrade(ctx, teacherID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Teacher report ===")
	fmt.Fprintf(w, "Teacher: %s (id=%d)\n", teacher.FullName(), teacher.ID)
	fmt.Fprintf(w, "Department: %s\n", orDash(teacher.Department))
	fmt.Fprintf(w, "Email: %s\n", orDash(teacher.Email))
	if len(grades) == 0 {
		fmt.Fprintln(w, "No grades issued by this teacher.")
	} else {
		fmt.Fprintln(w, "Grades:")
	}
	for _, g := range grades {
		course, err := s.courseName(ctx, g.CourseID)
		if err != nil {
			return err
		}
		student, err := s.studentName(ctx, g.StudentID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s -> %s: %.2f (%s)\n", course, student, g.Value, g.GradeDate.Format(helpers.DateLayout))
	}
	fmt.Fprintf(w, "Average grade for teacher: %.2f\n", avg)
	return nil
}

// GroupCourseGrades collects the grades of every group member in the course
func (s *reportServiceImpl) GroupCourseGrades(ctx context.Context, groupID, courseID int64) ([]*models.Grade, error) {
	students, err := s.gradeBook.GetStudentsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	all := []*models.Grade{}
	for _, student := range students {
		grades, err := s.gradeBook.GetGradesForStudentAndCourse(ctx, student.ID, courseID)
		if err != nil {
			return nil, err
		}
		all = append(all, grades...)
	}
	return all, nil
}

func (s *reportServiceImpl) ExportStudentGrades(ctx context.Context, studentID int64, path string) error {
	grades, err := s.gradeBook.GetGradesForStudent(ctx, studentID)
	if err != nil {
		return err
	}
	return export.GradesToFile(path, grades)
}

func (s *reportServiceImpl) ExportGroupCourseGrades(ctx context.Context, groupID, courseID int64, path string) error {
	grades, err := s.GroupCourseGrades(ctx, groupID, courseID)
	if err != nil {
		return err
	}
	return export.GradesToFile(path, grades)
}

func (s *reportServiceImpl) ExportTeacherGrades(ctx context.Context, teacherID int64, path string) error {
	grades, err := s.gradeBook.GetGradesForTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	return export.GradesToFile(path, grades)
}

func (s *reportServiceImpl) ExportStudents(ctx context.Context, path string) error {
	students, err := s.gradeBook.GetAllStudents(ctx)
	if err != nil {
		return err
	}
	return export.StudentsToFile(path, students)
}
