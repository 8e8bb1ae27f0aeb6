package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/gradebook/internal/app/models"
)

func writeXLSX(w io.Writer, t table) error {
	f := excelize.NewFile()
	defer f.Close()

	// a new workbook starts with one empty "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), t.sheet); err != nil {
		return fmt.Errorf("naming sheet %s: %w", t.sheet, err)
	}

	for i, header := range t.header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(t.sheet, cell, header); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
	}

	for r, row := range t.rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(t.sheet, cell, value); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteStudentsXLSX writes the students into a "students" sheet
func WriteStudentsXLSX(w io.Writer, students []*models.Student) error {
	return writeXLSX(w, studentTable(students))
}

// WriteGradesXLSX writes the grades into a "grades" sheet
func WriteGradesXLSX(w io.Writer, grades []*models.Grade) error {
	return writeXLSX(w, gradeTable(grades))
}
