package controller

import (
	"errors"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExecuteController struct {
	ExecuteService *service.ExecuteService
}

func NewExecuteController(executeService *service.ExecuteService) *ExecuteController {
	return &ExecuteController{ExecuteService: executeService}
}

type ExecuteRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// Run godoc
// @Summary Run practice-lab code
// @Description Executes the snippet in a sandbox under a 5 second watchdog
// @Tags practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ExecuteRequest true "language and code"
// @Success 200 {object} util.Response{data=service.ExecutionResult}
// @Failure 400 {object} util.Response "unsupported language"
// @Failure 503 {object} util.Response "sandbox unavailable"
// @Router /api/practice/execute [post]
func (c *ExecuteController) Run(ctx *gin.Context) {
	var req ExecuteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ExecuteService.Run(ctx.Request.Context(), req.Language, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUpstreamUnavailable):
			util.Error(ctx, 503, "sandbox unavailable")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Languages godoc
// @Summary Supported languages
// @Tags practice
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/practice/languages [get]
func (c *ExecuteController) Languages(ctx *gin.Context) {
	util.Success(ctx, service.SupportedLanguages())
}
