// Package console implements the interactive numbered menu over the grade book.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

type action struct {
	label string
	run   func(ctx context.Context) error
}

// Menu drives the grade book from a line oriented input
type Menu struct {
	gradeBook services.GradeBookService
	reports   services.ReportService
	exportDir string

	p       *prompter
	out     io.Writer
	actions []action
}

// NewMenu creates a menu reading answers from in and printing to out.
// Export files are created under exportDir.
func NewMenu(gradeBook services.GradeBookService, reports services.ReportService, exportDir string, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		gradeBook: gradeBook,
		reports:   reports,
		exportDir: exportDir,
		p:         &prompter{in: bufio.NewScanner(in), out: out},
		out:       out,
	}
	m.actions = []action{
		{"List students", m.listStudents},
		{"Add student", m.addStudent},
		{"Add grade", m.addGrade},
		{"Student report", m.studentReport},
		{"Group/course report", m.groupCourseReport},
		{"Teacher report", m.teacherReport},
		{"Export student grades", m.exportStudentGrades},
		{"Export group/course grades", m.exportGroupCourseGrades},
		{"Export teacher grades", m.exportTeacherGrades},
		{"Add group", m.addGroup},
		{"Add course", m.addCourse},
		{"Add teacher", m.addTeacher},
		{"Edit student", m.editStudent},
		{"Delete student", m.deleteStudent},
		{"Edit group", m.editGroup},
		{"Delete group", m.deleteGroup},
		{"Edit course", m.editCourse},
		{"Delete course", m.deleteCourse},
		{"Edit teacher", m.editTeacher},
		{"Delete teacher", m.deleteTeacher},
		{"List groups", m.listGroups},
		{"List courses", m.listCourses},
		{"List teachers", m.listTeachers},
		{"Export all students", m.exportStudents},
	}
	return m
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "===================================")
	fmt.Fprintln(m.out, "      Student Grade Book Menu      ")
	fmt.Fprintln(m.out, "===================================")
	for i, a := range m.actions {
		fmt.Fprintf(m.out, "%d - %s\n", i+1, a.label)
	}
	fmt.Fprintln(m.out, "0 - Exit")
}

// Run shows the menu until the user picks 0 or the input ends. A failing
// action is reported and the menu continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.p.intInRange(fmt.Sprintf("Choose [0-%d]: ", len(m.actions)), 0, len(m.actions))
		if err != nil {
			return ignoreEOF(err)
		}
		if choice == 0 {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}

		if err := m.actions[choice-1].run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			m.report(err)
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) report(err error) {
	switch {
	case apperrors.IsInvalidArgument(err):
		fmt.Fprintf(m.out, "Error: %v\n", err)
	case apperrors.IsDataAccess(err):
		logger.Error().Err(err).Msg("Menu action failed")
		fmt.Fprintf(m.out, "Database error: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// exportPath asks for a file name, defaulting to def, inside the export dir
func (m *Menu) exportPath(def string) (string, error) {
	name, err := m.p.line(fmt.Sprintf("File name (.csv or .xlsx) [%s]: ", def))
	if err != nil {
		return "", err
	}
	if name == "" {
		name = def
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(m.exportDir, name), nil
}
