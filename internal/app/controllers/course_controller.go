package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	gradeBook services.GradeBookService
}

// NewCourseController creates a new CourseController
func NewCourseController(gradeBook services.GradeBookService) *CourseController {
	return &CourseController{gradeBook: gradeBook}
}

// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course, err := c.gradeBook.CreateCourse(ctx, req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, course)
}

// GetCourses lists courses, or finds one by the name query parameter
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	if name, ok := ctx.GetQuery("name"); ok {
		course, err := c.gradeBook.GetCourseByName(ctx, name)
		respondFound(ctx, course, err, "Course", name)
		return
	}
	courses, err := c.gradeBook.GetAllCourses(ctx)
	respondList(ctx, courses, err)
}

// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	course, err := c.gradeBook.GetCourse(ctx, id)
	respondFound(ctx, course, err, "Course", id)
}

// GetCourseStudents lists the students graded in a course
// @Router /courses/{id}/students [get]
func (c *CourseController) GetCourseStudents(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	students, err := c.gradeBook.GetStudentsByCourse(ctx, id)
	respondList(ctx, students, err)
}

// @Router /courses/{id}/grades [get]
func (c *CourseController) GetCourseGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	grades, err := c.gradeBook.GetGradesForCourse(ctx, id)
	respondList(ctx, grades, err)
}

// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	changed, err := c.gradeBook.UpdateCourse(ctx, req.ToModel(id))
	respondOutcome(ctx, changed, err, "Course", id)
}

// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	changed, err := c.gradeBook.DeleteCourse(ctx, id)
	respondOutcome(ctx, changed, err, "Course", id)
}
