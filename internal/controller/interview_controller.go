package controller

import (
	"errors"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// ListQuestions godoc
// @Summary Interview question catalog
// @Description Filter by role; falls back to the full catalog when the role has no questions
// @Tags interview
// @Produce json
// @Security BearerAuth
// @Param role query string false "role filter"
// @Success 200 {object} util.Response{data=[]model.InterviewQuestion}
// @Router /api/interview/questions [get]
func (c *InterviewController) ListQuestions(ctx *gin.Context) {
	questions, err := c.InterviewService.ListQuestions(ctx.Query("role"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// SubmitAnswer godoc
// @Summary Score an interview answer
// @Description Returns keyword-based feedback, a score and completion state
// @Tags interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitAnswerRequest true "question id and answer text"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/interview/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.InterviewService.SubmitAnswer(ctx.Request.Context(), claims.UserID, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyAnswer):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Progress godoc
// @Summary Interview completion progress
// @Tags interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.InterviewProgress}
// @Router /api/interview/progress [get]
func (c *InterviewController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	progress, err := c.InterviewService.Progress(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Reset godoc
// @Summary Reset interview progress
// @Tags interview
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/interview/progress [delete]
func (c *InterviewController) Reset(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.InterviewService.Reset(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
