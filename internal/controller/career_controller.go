package controller

import (
	"errors"
	"net/http"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	CareerService *service.CareerService
}

func NewCareerController(careerService *service.CareerService) *CareerController {
	return &CareerController{CareerService: careerService}
}

type ApplyRequest struct {
	JobTitle string `json:"jobTitle" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location"`
}

// Profile godoc
// @Summary Career classification
// @Description Role bucket, color, recommended jobs and readiness insight
// @Tags career
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CareerProfile}
// @Router /api/career/profile [get]
func (c *CareerController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	profile, err := c.CareerService.Profile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Apply godoc
// @Summary Apply to a recommended job
// @Tags career
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ApplyRequest true "job to apply for"
// @Success 201 {object} util.Response{data=model.JobApplication}
// @Failure 409 {object} util.Response "already applied"
// @Router /api/career/applications [post]
func (c *CareerController) Apply(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	app := &model.JobApplication{
		JobTitle: req.JobTitle,
		Company:  req.Company,
		Location: req.Location,
	}
	if err := c.CareerService.Apply(claims.UserID, app); err != nil {
		if errors.Is(err, util.ErrAlreadyApplied) {
			util.Error(ctx, http.StatusConflict, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, app)
}

// Applications godoc
// @Summary List the caller's job applications
// @Tags career
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.JobApplication}
// @Router /api/career/applications [get]
func (c *CareerController) Applications(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	apps, err := c.CareerService.Applications(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, apps)
}
