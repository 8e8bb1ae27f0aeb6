package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/export"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// ReportController serves averages, text reports and exports
type ReportController struct {
	gradeBook services.GradeBookService
	reports   services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(gradeBook services.GradeBookService, reports services.ReportService) *ReportController {
	return &ReportController{gradeBook: gradeBook, reports: reports}
}

// @Router /averages/students/{id} [get]
func (c *ReportController) StudentAverage(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	avg, err := c.gradeBook.GetStudentAverageGrade(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.AverageResponse{Subject: "student", ID: id, Average: avg})
}

// @Router /averages/groups/{id}/courses/{courseId} [get]
func (c *ReportController) GroupCourseAverage(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	avg, err := c.gradeBook.GetGroupAverageForCourse(ctx, id, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.AverageResponse{Subject: "group", ID: id, CourseID: &courseID, Average: avg})
}

// @Router /averages/teachers/{id} [get]
func (c *ReportController) TeacherAverage(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	avg, err := c.gradeBook.GetTeacherAverageGrade(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.AverageResponse{Subject: "teacher", ID: id, Average: avg})
}

func (c *ReportController) text(ctx *gin.Context, render func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// @Router /reports/students/{id} [get]
func (c *ReportController) StudentReport(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	c.text(ctx, func(buf *bytes.Buffer) error { return c.reports.StudentReport(ctx, buf, id) })
}

// @Router /reports/groups/{id}/courses/{courseId} [get]
func (c *ReportController) GroupCourseReport(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	c.text(ctx, func(buf *bytes.Buffer) error { return c.reports.GroupCourseReport(ctx, buf, id, courseID) })
}

// @Router /reports/teachers/{id} [get]
func (c *ReportController) TeacherReport(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	c.text(ctx, func(buf *bytes.Buffer) error { return c.reports.TeacherReport(ctx, buf, id) })
}

// exportFormat reads ?format=csv|xlsx, csv by default
func exportFormat(ctx *gin.Context) (export.Format, bool) {
	switch f := export.Format(ctx.DefaultQuery("format", string(export.CSV))); f {
	case export.CSV, export.XLSX:
		return f, true
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "format must be csv or xlsx").WithField("format"),
		))
		return "", false
	}
}

func attach(ctx *gin.Context, name string, format export.Format, write func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	fileName := fmt.Sprintf("%s_%s.%s", name, time.Now().Format("20060102_150405"), format)
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// ExportStudents downloads every student
// @Router /exports/students [get]
func (c *ReportController) ExportStudents(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}
	students, err := c.gradeBook.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	attach(ctx, "students", format, func(buf *bytes.Buffer) error {
		return export.Students(buf, format, students)
	})
}

func (c *ReportController) exportGrades(ctx *gin.Context, name string, grades []*models.Grade, err error) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	attach(ctx, name, format, func(buf *bytes.Buffer) error {
		return export.Grades(buf, format, grades)
	})
}

// @Router /exports/students/{id}/grades [get]
func (c *ReportController) ExportStudentGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	grades, err := c.gradeBook.GetGradesForStudent(ctx, id)
	c.exportGrades(ctx, fmt.Sprintf("student_%d_grades", id), grades, err)
}

// @Router /exports/groups/{id}/courses/{courseId}/grades [get]
func (c *ReportController) ExportGroupCourseGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	grades, err := c.reports.GroupCourseGrades(ctx, id, courseID)
	c.exportGrades(ctx, fmt.Sprintf("group_%d_course_%d_grades", id, courseID), grades, err)
}

// @Router /exports/teachers/{id}/grades [get]
func (c *ReportController) ExportTeacherGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	grades, err := c.gradeBook.GetGradesForTeacher(ctx, id)
	c.exportGrades(ctx, fmt.Sprintf("teacher_%d_grades", id), grades, err)
}
