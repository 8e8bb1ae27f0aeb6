package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewSuccessResponse(data, ""))
}

// respondFound answers 404 when the lookup came back empty
func respondFound[T any](ctx *gin.Context, entity *T, err error, kind string, id interface{}) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if entity == nil {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("%s with id %v not found", kind, id))
		return
	}
	respond(ctx, http.StatusOK, entity)
}

func respondList[T any](ctx *gin.Context, list []*T, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list)
}

// respondOutcome answers 404 when an update or delete touched nothing
func respondOutcome(ctx *gin.Context, changed bool, err error, kind string, id int64) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !changed {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("%s with id %d not found", kind, id))
		return
	}
	respond(ctx, http.StatusOK, dto.OutcomeResponse{Changed: true})
}
