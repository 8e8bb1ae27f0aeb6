package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// GroupController handles group endpoints
type GroupController struct {
	gradeBook services.GradeBookService
}

// NewGroupController creates a new GroupController
func NewGroupController(gradeBook services.GradeBookService) *GroupController {
	return &GroupController{gradeBook: gradeBook}
}

// CreateGroup creates a group, or returns the existing one with the same name
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.GroupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	group, err := c.gradeBook.CreateGroup(ctx, req.Name, req.Year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, group)
}

// GetGroups lists groups, or finds one by the name query parameter
// @Router /groups [get]
func (c *GroupController) GetGroups(ctx *gin.Context) {
	if name, ok := ctx.GetQuery("name"); ok {
		group, err := c.gradeBook.GetGroupByName(ctx, name)
		respondFound(ctx, group, err, "Group", name)
		return
	}
	groups, err := c.gradeBook.GetAllGroups(ctx)
	respondList(ctx, groups, err)
}

// GetGroup retrieves a group by id
// @Router /groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	group, err := c.gradeBook.GetGroup(ctx, id)
	respondFound(ctx, group, err, "Group", id)
}

// GetGroupStudents lists the members of a group
// @Router /groups/{id}/students [get]
func (c *GroupController) GetGroupStudents(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	students, err := c.gradeBook.GetStudentsByGroup(ctx, id)
	respondList(ctx, students, err)
}

// UpdateGroup replaces name and year
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.GroupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	changed, err := c.gradeBook.UpdateGroup(ctx, req.ToModel(id))
	respondOutcome(ctx, changed, err, "Group", id)
}

// DeleteGroup deletes a group
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	changed, err := c.gradeBook.DeleteGroup(ctx, id)
	respondOutcome(ctx, changed, err, "Group", id)
}
