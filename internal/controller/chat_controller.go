package controller

import (
	"context"
	"strconv"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Cofounder godoc
// @Summary Co-founder agent (streaming)
// @Description Streams strategic advice as SSE; appends tutorial links for roadmap-style replies
// @Tags agents
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param body body ChatRequest true "message"
// @Router /api/chat/cofounder [post]
func (c *ChatController) Cofounder(ctx *gin.Context) {
	c.stream(ctx, c.ChatService.Cofounder)
}

// Mentor godoc
// @Summary Interview mentor agent (streaming)
// @Tags agents
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param body body ChatRequest true "message"
// @Router /api/chat/mentor [post]
func (c *ChatController) Mentor(ctx *gin.Context) {
	c.stream(ctx, c.ChatService.Mentor)
}

// Support godoc
// @Summary Support agent
// @Description One-shot answer; degrades to a canned reply when the model is down
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChatRequest true "message"
// @Success 200 {object} util.Response{data=object}
// @Router /api/chat/support [post]
func (c *ChatController) Support(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.Support(ctx.Request.Context(), claims.UserID, req.Message)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"reply": reply})
}

// History godoc
// @Summary Agent transcript
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param agent path string true "agent type" Enums(cofounder, mentor, support, roadmap)
// @Param limit query int false "max entries"
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Router /api/chat/{agent}/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	agent := model.AgentType(ctx.Param("agent"))

	limit := 50
	if v, err := strconv.Atoi(ctx.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	msgs, err := c.ChatService.History(claims.UserID, agent, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, msgs)
}

// Clear godoc
// @Summary Delete an agent transcript
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param agent path string true "agent type" Enums(cofounder, mentor, support, roadmap)
// @Success 200 {object} util.Response
// @Router /api/chat/{agent}/history [delete]
func (c *ChatController) Clear(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	agent := model.AgentType(ctx.Param("agent"))
	if err := c.ChatService.Clear(claims.UserID, agent); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ChatController) stream(ctx *gin.Context, agent func(ctx context.Context, userID uint, message string) (<-chan string, <-chan error)) {
	claims := util.GetUserFromContext(ctx)
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chunks, errChan := agent(ctx.Request.Context(), claims.UserID, req.Message)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range chunks {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
