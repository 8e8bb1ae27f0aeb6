package export

import (
	"fmt"
	"io"
	"os"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// Students writes students to w in the given format
func Students(w io.Writer, format Format, students []*models.Student) error {
	if format == XLSX {
		return WriteStudentsXLSX(w, students)
	}
	return WriteStudentsCSV(w, students)
}

// Grades writes grades to w in the given format
func Grades(w io.Writer, format Format, grades []*models.Grade) error {
	if format == XLSX {
		return WriteGradesXLSX(w, grades)
	}
	return WriteGradesCSV(w, grades)
}

// StudentsToFile creates (or truncates) path and exports the students into it
func StudentsToFile(path string, students []*models.Student) error {
	return toFile(path, len(students), func(w io.Writer, f Format) error {
		return Students(w, f, students)
	})
}

// GradesToFile creates (or truncates) path and exports the grades into it
func GradesToFile(path string, grades []*models.Grade) error {
	return toFile(path, len(grades), func(w io.Writer, f Format) error {
		return Grades(w, f, grades)
	})
}

func toFile(path string, rows int, write func(io.Writer, Format) error) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export file %s: %w", path, cerr)
		}
	}()

	if err := write(file, format); err != nil {
		return err
	}

	logger.Info().Str("path", path).Str("format", string(format)).Int("rows", rows).Msg("Export written")
	return nil
}
