package controller

import (
	"errors"
	"strconv"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

type GradeRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Grade  string `json:"grade" binding:"required"`
}

// List godoc
// @Summary Assignments with the caller's submission state
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.AssignmentView}
// @Router /api/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	assignments, err := c.AssignmentService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Submit godoc
// @Summary Submit an assignment file
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param file formData file true "submission file"
// @Success 201 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	sub, err := c.AssignmentService.Submit(ctx.Request.Context(), claims.UserID, uint(id), file)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, sub)
}

// Grade godoc
// @Summary Grade a submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "assignment id"
// @Param body body GradeRequest true "student and grade"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/grade [post]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	var req GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.AssignmentService.Grade(req.UserID, uint(id), req.Grade)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}
