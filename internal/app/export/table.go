// Package export writes students and grades as ';'-separated CSV or as a
// single-sheet XLSX workbook. Both formats share the same header and rows.
package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// Format selects the file format of an export
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	default:
		return "", fmt.Errorf("unsupported export file extension %q, use .csv or .xlsx", filepath.Ext(path))
	}
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

var (
	studentHeader = []string{"id", "first_name", "last_name", "email", "group_id", "enrollment_year", "created_at"}
	gradeHeader   = []string{"id", "student_id", "course_id", "teacher_id", "value", "grade_date"}
)

// table is the format independent shape of an export. A nil cell is an
// absent value.
type table struct {
	sheet  string
	header []string
	rows   [][]interface{}
}

func studentTable(students []*models.Student) table {
	t := table{sheet: "students", header: studentHeader, rows: make([][]interface{}, 0, len(students))}
	for _, s := range students {
		t.rows = append(t.rows, []interface{}{
			s.ID,
			s.FirstName,
			s.LastName,
			opt(s.Email),
			opt(s.GroupID),
			opt(s.EnrollmentYear),
			dateTime(s.CreatedAt),
		})
	}
	return t
}

func gradeTable(grades []*models.Grade) table {
	t := table{sheet: "grades", header: gradeHeader, rows: make([][]interface{}, 0, len(grades))}
	for _, g := range grades {
		t.rows = append(t.rows, []interface{}{
			g.ID,
			g.StudentID,
			g.CourseID,
			opt(g.TeacherID),
			g.Value,
			date(g.GradeDate),
		})
	}
	return t
}

func opt[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func date(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(helpers.DateLayout)
}

func dateTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(helpers.DateTimeLayout)
}

// text renders one cell for CSV
func text(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
