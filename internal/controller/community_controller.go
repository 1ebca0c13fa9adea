package controller

import (
	"errors"
	"net/http"
	"strconv"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// Feed godoc
// @Summary Post feed
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param size query int false "page size"
// @Param tag query string false "tag filter"
// @Param sort query string false "latest or popular"
// @Success 200 {object} util.Response{data=service.PostPage}
// @Router /api/community/posts [get]
func (c *CommunityController) Feed(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	feed, err := c.CommunityService.Feed(page, size, ctx.Query("tag"), ctx.DefaultQuery("sort", "latest"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, feed)
}

// CreatePost godoc
// @Summary Create a post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PostRequest true "post"
// @Success 201 {object} util.Response{data=model.Post}
// @Router /api/community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.CreatePost(claims.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// GetPost godoc
// @Summary Post detail
// @Description Also counts a view
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "post id"
// @Success 200 {object} util.Response{data=model.Post}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id} [get]
func (c *CommunityController) GetPost(ctx *gin.Context) {
	post, err := c.CommunityService.GetPost(ctx.Param("id"), true)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, post)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "post id"
// @Param body body service.CommentRequest true "comment"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 404 {object} util.Response
// @Router /api/community/posts/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommunityService.AddComment(claims.UserID, ctx.Param("id"), &req)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, comment)
}

// Upvote godoc
// @Summary Upvote a post or comment
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "content id"
// @Param type query string false "post or comment" Enums(post, comment)
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "already upvoted"
// @Router /api/community/content/{id}/upvote [post]
func (c *CommunityController) Upvote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	err := c.CommunityService.Upvote(claims.UserID, ctx.DefaultQuery("type", "post"), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyUpvoted):
			util.Error(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, util.ErrPostNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
