package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

func usage(cmd, fields string) error {
	return errors.New(cmd + " requires " + fields)
}

func parseID(field, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", field, s)
	}
	return v, nil
}

// parseOptInt maps an empty field to nil
func parseOptInt(field, s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number, got %q", field, s)
	}
	return &v, nil
}

// parseOptID maps an empty field or 0 to nil
func parseOptID(field, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseID(field, s)
	if err != nil {
		return nil, err
	}
	return helpers.IDOrNil(v), nil
}

func (r *Runner) addGroup(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 2 {
		return usage("ADD_GROUP", "name;year")
	}
	year, err := parseOptInt("year", args[1])
	if err != nil {
		return err
	}
	group, err := r.gradeBook.CreateGroup(ctx, args[0], year)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  OK: created group %s\n", group)
	return nil
}

func (r *Runner) addStudent(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 5 {
		return usage("ADD_STUDENT", "firstName;lastName;email;groupId;enrollmentYear")
	}
	groupID, err := parseOptID("groupId", args[3])
	if err != nil {
		return err
	}
	year, err := parseOptInt("enrollmentYear", args[4])
	if err != nil {
		return err
	}
	student, err := r.gradeBook.CreateStudent(ctx, &models.Student{
		FirstName:      args[0],
		LastName:       args[1],
		Email:          helpers.StringOrNil(args[2]),
		GroupID:        groupID,
		EnrollmentYear: year,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  OK: created student %s\n", student)
	return nil
}

func (r *Runner) addTeacher(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 4 {
		return usage("ADD_TEACHER", "firstName;lastName;department;email")
	}
	teacher, err := r.gradeBook.CreateTeacher(ctx, &models.Teacher{
		FirstName:  args[0],
		LastName:   args[1],
		Department: helpers.StringOrNil(args[2]),
		Email:      helpers.StringOrNil(args[3]),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  OK: created teacher %s\n", teacher)
	return nil
}

func (r *Runner) addCourse(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 5 {
		return usage("ADD_COURSE", "name;semester;year;teacherId;credits")
	}
	course := &models.Course{Name: args[0]}
	var err error
	if course.Semester, err = parseOptInt("semester", args[1]); err != nil {
		return err
	}
	if course.Year, err = parseOptInt("year", args[2]); err != nil {
		return err
	}
	if course.TeacherID, err = parseOptID("teacherId", args[3]); err != nil {
		return err
	}
	if course.Credits, err = parseOptInt("credits", args[4]); err != nil {
		return err
	}
	if _, err := r.gradeBook.CreateCourse(ctx, course); err != nil {
		return err
	}
	fmt.Fprintf(log, "  OK: created course %s\n", course)
	return nil
}

// setGrade takes teacherId 0 as "no teacher" and an empty date as today.
// The date field itself must be present, "SET_GRADE;1;2;0;90;" is the
// shortest valid line.
func (r *Runner) setGrade(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 5 {
		return usage("SET_GRADE", "studentId;courseId;teacherIdOr0;value;date")
	}
	studentID, err := parseID("studentId", args[0])
	if err != nil {
		return err
	}
	courseID, err := parseID("courseId", args[1])
	if err != nil {
		return err
	}
	teacherID, err := parseOptID("teacherId", args[2])
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.Replace(args[3], ",", ".", 1), 64)
	if err != nil {
		return fmt.Errorf("value must be a number, got %q", args[3])
	}
	dateField := args[4]
	date, err := helpers.ParseDate(dateField)
	if err != nil {
		return fmt.Errorf("date must be %s, got %q", helpers.DateLayout, dateField)
	}

	grade, err := r.gradeBook.AddGrade(ctx, studentID, courseID, teacherID, value, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  OK: added grade %s\n", grade)
	return nil
}

func (r *Runner) reportStudent(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 1 {
		return usage("REPORT_STUDENT", "studentId")
	}
	id, err := parseID("studentId", args[0])
	if err != nil {
		return err
	}
	avg, err := r.gradeBook.GetStudentAverageGrade(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  Student average: %.2f\n", avg)
	return r.reports.StudentReport(ctx, r.reportOut, id)
}

func (r *Runner) reportGroupCourse(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 2 {
		return usage("REPORT_GROUP_COURSE", "groupId;courseId")
	}
	groupID, err := parseID("groupId", args[0])
	if err != nil {
		return err
	}
	courseID, err := parseID("courseId", args[1])
	if err != nil {
		return err
	}
	avg, err := r.gradeBook.GetGroupAverageForCourse(ctx, groupID, courseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  Group-course average: %.2f\n", avg)
	return r.reports.GroupCourseReport(ctx, r.reportOut, groupID, courseID)
}

func (r *Runner) reportTeacher(ctx context.Context, args []string, log io.Writer) error {
	if len(args) < 1 {
		return usage("REPORT_TEACHER", "teacherId")
	}
	id, err := parseID("teacherId", args[0])
	if err != nil {
		return err
	}
	avg, err := r.gradeBook.GetTeacherAverageGrade(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "  Teacher average: %.2f\n", avg)
	return r.reports.TeacherReport(ctx, r.reportOut, id)
}
