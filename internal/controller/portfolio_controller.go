package controller

import (
	"errors"
	"net/http"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	PortfolioService *service.PortfolioService
}

func NewPortfolioController(portfolioService *service.PortfolioService) *PortfolioController {
	return &PortfolioController{PortfolioService: portfolioService}
}

type AnalyzePortfolioRequest struct {
	Theme model.PortfolioTheme `json:"theme" binding:"omitempty,oneof=classic neon minimal"`
}

type ThemeRequest struct {
	Theme model.PortfolioTheme `json:"theme" binding:"required,oneof=classic neon minimal"`
}

// Analyze godoc
// @Summary Build a portfolio from chat history
// @Description Analyzes the caller's agent transcripts and saves the result
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnalyzePortfolioRequest false "presentation theme"
// @Success 200 {object} util.Response{data=model.Portfolio}
// @Failure 404 {object} util.Response "no chat history yet"
// @Router /api/portfolio/analyze [post]
func (c *PortfolioController) Analyze(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req AnalyzePortfolioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}

	portfolio, err := c.PortfolioService.Analyze(ctx.Request.Context(), claims.UserID, req.Theme)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoChatHistory):
			util.Error(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, util.ErrQuotaExceeded):
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, portfolio)
}

// Get godoc
// @Summary Saved portfolio
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Portfolio}
// @Failure 404 {object} util.Response
// @Router /api/portfolio [get]
func (c *PortfolioController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	portfolio, err := c.PortfolioService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPortfolioNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, portfolio)
}

// SetTheme godoc
// @Summary Change the portfolio theme
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ThemeRequest true "theme"
// @Success 200 {object} util.Response{data=model.Portfolio}
// @Failure 404 {object} util.Response
// @Router /api/portfolio/theme [put]
func (c *PortfolioController) SetTheme(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	portfolio, err := c.PortfolioService.SetTheme(claims.UserID, req.Theme)
	if err != nil {
		if errors.Is(err, util.ErrPortfolioNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, portfolio)
}
