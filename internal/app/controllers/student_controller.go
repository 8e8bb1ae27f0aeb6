package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	gradeBook services.GradeBookService
}

// NewStudentController creates a new StudentController
func NewStudentController(gradeBook services.GradeBookService) *StudentController {
	return &StudentController{gradeBook: gradeBook}
}

// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := c.gradeBook.CreateStudent(ctx, req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, student)
}

// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.gradeBook.GetAllStudents(ctx)
	respondList(ctx, students, err)
}

// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	student, err := c.gradeBook.GetStudent(ctx, id)
	respondFound(ctx, student, err, "Student", id)
}

// GetStudentGrades lists a student's grades, optionally for one courseId
// @Router /students/{id}/grades [get]
func (c *StudentController) GetStudentGrades(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if _, filtered := ctx.GetQuery("courseId"); filtered {
		courseID, ok := queryID(ctx, "courseId")
		if !ok {
			return
		}
		grades, err := c.gradeBook.GetGradesForStudentAndCourse(ctx, id, courseID)
		respondList(ctx, grades, err)
		return
	}
	grades, err := c.gradeBook.GetGradesForStudent(ctx, id)
	respondList(ctx, grades, err)
}

// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	changed, err := c.gradeBook.UpdateStudent(ctx, req.ToModel(id))
	respondOutcome(ctx, changed, err, "Student", id)
}

// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	changed, err := c.gradeBook.DeleteStudent(ctx, id)
	respondOutcome(ctx, changed, err, "Student", id)
}
