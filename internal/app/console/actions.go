package console

import (
	"context"
	"fmt"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

func (m *Menu) listStudents(ctx context.Context) error {
	students, err := m.gradeBook.GetAllStudents(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students yet.")
		return nil
	}
	fmt.Fprintln(m.out, "=== Students ===")
	for _, s := range students {
		group := "-"
		if s.GroupID != nil {
			group = fmt.Sprint(*s.GroupID)
		}
		fmt.Fprintf(m.out, "%d: %s (groupId=%s)\n", s.ID, s.FullName(), group)
	}
	return nil
}

func (m *Menu) listGroups(ctx context.Context) error {
	groups, err := m.gradeBook.GetAllGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(m.out, "No groups yet.")
		return nil
	}
	fmt.Fprintln(m.out, "=== Groups ===")
	for _, g := range groups {
		fmt.Fprintln(m.out, g)
	}
	return nil
}

func (m *Menu) listCourses(ctx context.Context) error {
	courses, err := m.gradeBook.GetAllCourses(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(m.out, "No courses yet.")
		return nil
	}
	fmt.Fprintln(m.out, "=== Courses ===")
	for _, c := range courses {
		fmt.Fprintln(m.out, c)
	}
	return nil
}

func (m *Menu) listTeachers(ctx context.Context) error {
	teachers, err := m.gradeBook.GetAllTeachers(ctx)
	if err != nil {
		return err
	}
	if len(teachers) == 0 {
		fmt.Fprintln(m.out, "No teachers yet.")
		return nil
	}
	fmt.Fprintln(m.out, "=== Teachers ===")
	for _, t := range teachers {
		fmt.Fprintln(m.out, t)
	}
	return nil
}

// readStudent fills the mutable student fields from the prompts
func (m *Menu) readStudent(s *models.Student) (err error) {
	if s.FirstName, err = m.p.nonEmpty("First name: "); err != nil {
		return err
	}
	if s.LastName, err = m.p.nonEmpty("Last name: "); err != nil {
		return err
	}
	if s.Email, err = m.p.optionalText("Email (empty for none): "); err != nil {
		return err
	}
	if s.GroupID, err = m.p.optionalID("Group id (0 for none): "); err != nil {
		return err
	}
	s.EnrollmentYear, err = m.p.optionalInt("Enrollment year (empty for none): ")
	return err
}

func (m *Menu) addStudent(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Add student ===")
	if err := m.listGroups(ctx); err != nil {
		return err
	}
	student := &models.Student{}
	if err := m.readStudent(student); err != nil {
		return err
	}
	created, err := m.gradeBook.CreateStudent(ctx, student)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Student created: %s\n", created)
	return nil
}

func (m *Menu) editStudent(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Edit student ===")
	id, err := m.p.int64("Student id: ")
	if err != nil {
		return err
	}
	student, err := m.gradeBook.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		fmt.Fprintln(m.out, "No student with this id.")
		return nil
	}
	fmt.Fprintf(m.out, "Current: %s\n", student)
	if err := m.readStudent(student); err != nil {
		return err
	}
	return m.updated(m.gradeBook.UpdateStudent(ctx, student))
}

func (m *Menu) deleteStudent(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Delete student ===")
	id, err := m.p.int64("Student id: ")
	if err != nil {
		return err
	}
	return m.deleted(m.gradeBook.DeleteStudent(ctx, id))
}

func (m *Menu) addGroup(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Add group ===")
	name, err := m.p.nonEmpty("Name: ")
	if err != nil {
		return err
	}
	year, err := m.p.optionalInt("Year (empty for none): ")
	if err != nil {
		return err
	}
	group, err := m.gradeBook.CreateGroup(ctx, name, year)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Group: %s\n", group)
	return nil
}

func (m *Menu) editGroup(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Edit group ===")
	id, err := m.p.int64("Group id: ")
	if err != nil {
		return err
	}
	group, err := m.gradeBook.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		fmt.Fprintln(m.out, "No group with this id.")
		return nil
	}
	fmt.Fprintf(m.out, "Current: %s\n", group)
	if group.Name, err = m.p.nonEmpty("Name: "); err != nil {
		return err
	}
	if group.Year, err = m.p.optionalInt("Year (empty for none): "); err != nil {
		return err
	}
	return m.updated(m.gradeBook.UpdateGroup(ctx, group))
}

func (m *Menu) deleteGroup(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Delete group ===")
	id, err := m.p.int64("Group id: ")
	if err != nil {
		return err
	}
	return m.deleted(m.gradeBook.DeleteGroup(ctx, id))
}

func (m *Menu) readCourse(c *models.Course) (err error) {
	if c.Name, err = m.p.nonEmpty("Name: "); err != nil {
		return err
	}
	if c.Semester, err = m.p.optionalInt("Semester (empty for none): "); err != nil {
		return err
	}
	if c.Year, err = m.p.optionalInt("Year (empty for none): "); err != nil {
		return err
	}
	if c.TeacherID, err = m.p.optionalID("Teacher id (0 for none): "); err != nil {
		return err
	}
	c.Credits, err = m.p.optionalInt("Credits (empty for none): ")
	return err
}

func (m *Menu) addCourse(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Add course ===")
	if err := m.listTeachers(ctx); err != nil {
		return err
	}
	course := &models.Course{}
	if err := m.readCourse(course); err != nil {
		return err
	}
	created, err := m.gradeBook.CreateCourse(ctx, course)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Course created: %s\n", created)
	return nil
}

func (m *Menu) editCourse(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Edit course ===")
	id, err := m.p.int64("Course id: ")
	if err != nil {
		return err
	}
	course, err := m.gradeBook.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		fmt.Fprintln(m.out, "No course with this id.")
		return nil
	}
	fmt.Fprintf(m.out, "Current: %s\n", course)
	if err := m.readCourse(course); err != nil {
		return err
	}
	return m.updated(m.gradeBook.UpdateCourse(ctx, course))
}

func (m *Menu) deleteCourse(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Delete course ===")
	id, err := m.p.int64("Course id: ")
	if err != nil {
		return err
	}
	return m.deleted(m.gradeBook.DeleteCourse(ctx, id))
}

func (m *Menu) readTeacher(t *models.Teacher) (err error) {
	if t.FirstName, err = m.p.nonEmpty("First name: "); err != nil {
		return err
	}
	if t.LastName, err = m.p.nonEmpty("Last name: "); err != nil {
		return err
	}
	if t.Department, err = m.p.optionalText("Department (empty for none): "); err != nil {
		return err
	}
	t.Email, err = m.p.optionalText("Email (empty for none): ")
	return err
}

func (m *Menu) addTeacher(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Add teacher ===")
	teacher := &models.Teacher{}
	if err := m.readTeacher(teacher); err != nil {
		return err
	}
	created, err := m.gradeBook.CreateTeacher(ctx, teacher)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Teacher created: %s\n", created)
	return nil
}

func (m *Menu) editTeacher(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Edit teacher ===")
	id, err := m.p.int64("Teacher id: ")
	if err != nil {
		return err
	}
	teacher, err := m.gradeBook.GetTeacher(ctx, id)
	if err != nil {
		return err
	}
	if teacher == nil {
		fmt.Fprintln(m.out, "No teacher with this id.")
		return nil
	}
	fmt.Fprintf(m.out, "Current: %s\n", teacher)
	if err := m.readTeacher(teacher); err != nil {
		return err
	}
	return m.updated(m.gradeBook.UpdateTeacher(ctx, teacher))
}

func (m *Menu) deleteTeacher(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Delete teacher ===")
	id, err := m.p.int64("Teacher id: ")
	if err != nil {
		return err
	}
	return m.deleted(m.gradeBook.DeleteTeacher(ctx, id))
}

func (m *Menu) addGrade(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Add grade ===")
	studentID, err := m.p.int64("Student id: ")
	if err != nil {
		return err
	}
	courseID, err := m.p.int64("Course id: ")
	if err != nil {
		return err
	}
	teacherID, err := m.p.optionalID("Teacher id (0 for none): ")
	if err != nil {
		return err
	}
	value, err := m.p.float("Value: ")
	if err != nil {
		return err
	}
	date, err := m.p.date("Date (" + helpers.DateLayout + ", empty for today): ")
	if err != nil {
		return err
	}

	grade, err := m.gradeBook.AddGrade(ctx, studentID, courseID, teacherID, value, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Grade added: %s\n", grade)
	return nil
}

func (m *Menu) studentReport(ctx context.Context) error {
	id, err := m.p.int64("Student id: ")
	if err != nil {
		return err
	}
	return m.reports.StudentReport(ctx, m.out, id)
}

func (m *Menu) groupCourseReport(ctx context.Context) error {
	groupID, err := m.p.int64("Group id: ")
	if err != nil {
		return err
	}
	courseID, err := m.p.int64("Course id: ")
	if err != nil {
		return err
	}
	return m.reports.GroupCourseReport(ctx, m.out, groupID, courseID)
}

func (m *Menu) teacherReport(ctx context.Context) error {
	id, err := m.p.int64("Teacher id: ")
	if err != nil {
		return err
	}
	return m.reports.TeacherReport(ctx, m.out, id)
}

func (m *Menu) exportStudentGrades(ctx context.Context) error {
	id, err := m.p.int64("Student id: ")
	if err != nil {
		return err
	}
	path, err := m.exportPath(fmt.Sprintf("student_%d_grades.csv", id))
	if err != nil {
		return err
	}
	return m.exported(path, m.reports.ExportStudentGrades(ctx, id, path))
}

func (m *Menu) exportGroupCourseGrades(ctx context.Context) error {
	groupID, err := m.p.int64("Group id: ")
	if err != nil {
		return err
	}
	courseID, err := m.p.int64("Course id: ")
	if err != nil {
		return err
	}
	path, err := m.exportPath(fmt.Sprintf("group_%d_course_%d_grades.csv", groupID, courseID))
	if err != nil {
		return err
	}
	return m.exported(path, m.reports.ExportGroupCourseGrades(ctx, groupID, courseID, path))
}

func (m *Menu) exportTeacherGrades(ctx context.Context) error {
	id, err := m.p.int64("Teacher id: ")
	if err != nil {
		return err
	}
	path, err := m.exportPath(fmt.Sprintf("teacher_%d_grades.csv", id))
	if err != nil {
		return err
	}
	return m.exported(path, m.reports.ExportTeacherGrades(ctx, id, path))
}

func (m *Menu) exportStudents(ctx context.Context) error {
	path, err := m.exportPath("students.csv")
	if err != nil {
		return err
	}
	return m.exported(path, m.reports.ExportStudents(ctx, path))
}

func (m *Menu) exported(path string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Exported to %s\n", path)
	return nil
}

func (m *Menu) updated(ok bool, err error) error {
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(m.out, "Updated.")
	} else {
		fmt.Fprintln(m.out, "Nothing was updated.")
	}
	return nil
}

func (m *Menu) deleted(ok bool, err error) error {
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(m.out, "Deleted.")
	} else {
		fmt.Fprintln(m.out, "Nothing to delete.")
	}
	return nil
}
