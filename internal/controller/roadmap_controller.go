package controller

import (
	"errors"
	"net/http"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

type GenerateRoadmapRequest struct {
	Message string `json:"message" binding:"required"`
}

type VisualRoadmapRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// Generate godoc
// @Summary Generate a text roadmap
// @Description Produces a phased roadmap with related tutorial videos
// @Tags roadmap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateRoadmapRequest true "goal to plan for"
// @Success 200 {object} util.Response{data=service.RoadmapResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "superseded by a newer request"
// @Failure 503 {object} util.Response
// @Router /api/roadmap/generate [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req GenerateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RoadmapService.Generate(ctx.Request.Context(), claims.UserID, req.Message)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GenerateVisual godoc
// @Summary Generate a structured roadmap
// @Description Structured steps with objectives, resources and a quiz each
// @Tags roadmap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VisualRoadmapRequest true "topic"
// @Success 200 {object} util.Response{data=service.VisualRoadmapResult}
// @Failure 400 {object} util.Response
// @Router /api/roadmap/visual [post]
func (c *RoadmapController) GenerateVisual(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req VisualRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RoadmapService.GenerateVisual(ctx.Request.Context(), claims.UserID, req.Topic)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Latest godoc
// @Summary Most recent generated roadmap
// @Tags roadmap
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.RoadmapResult}
// @Failure 404 {object} util.Response
// @Router /api/roadmap/latest [get]
func (c *RoadmapController) Latest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	result, err := c.RoadmapService.Latest(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoRoadmap) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func (c *RoadmapController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrEmptyTopic):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrStaleGeneration):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrQuotaExceeded):
		util.Error(ctx, http.StatusTooManyRequests, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
