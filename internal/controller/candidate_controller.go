package controller

import (
	"errors"
	"net/http"
	"strconv"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CandidateController struct {
	CandidateService *service.CandidateService
}

func NewCandidateController(candidateService *service.CandidateService) *CandidateController {
	return &CandidateController{CandidateService: candidateService}
}

// List godoc
// @Summary Candidate browser
// @Description Candidates ordered best match first
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.CandidateView}
// @Router /api/candidates [get]
func (c *CandidateController) List(ctx *gin.Context) {
	candidates, err := c.CandidateService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, candidates)
}

// Analyze godoc
// @Summary AI candidate analysis
// @Description Summary, match score, strengths and improvement areas
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "candidate id"
// @Success 200 {object} util.Response{data=service.CandidateAnalysis}
// @Failure 404 {object} util.Response
// @Router /api/candidates/{id}/analyze [post]
func (c *CandidateController) Analyze(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid candidate id")
		return
	}

	analysis, err := c.CandidateService.Analyze(ctx.Request.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCandidateNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuotaExceeded):
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, analysis)
}
