package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// TeacherController handles teacher endpoints
type TeacherController struct {
	gradeBook services.GradeBookService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(gradeBook services.GradeBookService) *TeacherController {
	return &TeacherController{gradeBook: gradeBook}
}

// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	teacher, err := c.gradeBook.CreateTeacher(ctx, req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, teacher)
}

// GetTeachers lists teachers, optionally filtered by the lastName query parameter
// @Router /teachers [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	if lastName, ok := ctx.GetQuery("lastName"); ok {
		teachers, err := c.gradeBook.FindTeachersByLastName(ctx, lastName)
		respondList(ctx, teachers, err)
		return
	}
	teachers, err := c.gradeBook.GetAllTeachers(ctx)
	respondList(ctx, teachers, err)
}

// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	teacher, err := c.gradeBook.GetTeacher(ctx, id)
	respondFound(ctx, teacher, err, "Teacher", id)
}

// @Router /teachers/{id}/courses [get]
func (c *TeacherController) GetTeacherCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courses, err := c.gradeBook.GetCoursesByTeacher(ctx, id)
	respondList(ctx, courses, err)
}

// @Router /teachers/{id}/grades [get]
func (c *TeacherController) GetTeacherGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	grades, err := c.gradeBook.GetGradesForTeacher(ctx, id)
	respondList(ctx, grades, err)
}

// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	changed, err := c.gradeBook.UpdateTeacher(ctx, req.ToModel(id))
	respondOutcome(ctx, changed, err, "Teacher", id)
}

// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	changed, err := c.gradeBook.DeleteTeacher(ctx, id)
	respondOutcome(ctx, changed, err, "Teacher", id)
}
