package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/yigit/gradebook/internal/app/models"
)

// Delimiter separates CSV fields
const Delimiter = ';'

func writeCSV(w io.Writer, t table) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := cw.Write(t.header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	record := make([]string, len(t.header))
	for _, row := range t.rows {
		for i, cell := range row {
			record[i] = text(cell)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStudentsCSV writes the students with the student header
func WriteStudentsCSV(w io.Writer, students []*models.Student) error {
	return writeCSV(w, studentTable(students))
}

// WriteGradesCSV writes the grades with the grade header
func WriteGradesCSV(w io.Writer, grades []*models.Grade) error {
	return writeCSV(w, gradeTable(grades))
}
