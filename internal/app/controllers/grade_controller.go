package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// GradeController handles grade endpoints
type GradeController struct {
	gradeBook services.GradeBookService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeBook services.GradeBookService) *GradeController {
	return &GradeController{gradeBook: gradeBook}
}

// AddGrade adds a grade after checking student, course and teacher exist
// @Router /grades [post]
func (c *GradeController) AddGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	grade, err := c.gradeBook.AddGrade(ctx, req.StudentID, req.CourseID, req.TeacherID, helpers.Deref(req.Value), req.Date())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, grade)
}

// @Router /grades [get]
func (c *GradeController) GetGrades(ctx *gin.Context) {
	grades, err := c.gradeBook.GetAllGrades(ctx)
	respondList(ctx, grades, err)
}

// @Router /grades/{id} [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	grade, err := c.gradeBook.GetGrade(ctx, id)
	respondFound(ctx, grade, err, "Grade", id)
}

// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	changed, err := c.gradeBook.UpdateGrade(ctx, req.ToModel(id))
	respondOutcome(ctx, changed, err, "Grade", id)
}

// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	changed, err := c.gradeBook.DeleteGrade(ctx, id)
	respondOutcome(ctx, changed, err, "Grade", id)
}

func queryID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).WithField(name),
		))
		return 0, false
	}
	return id, true
}
