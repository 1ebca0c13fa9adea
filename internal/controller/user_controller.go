package controller

import (
	"errors"
	"strconv"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateProfileRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, &req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// ListSkills godoc
// @Summary List the caller's skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Skill}
// @Router /api/skills [get]
func (c *UserController) ListSkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	skills, err := c.UserService.Skills(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// AddSkill godoc
// @Summary Add a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SkillRequest true "skill"
// @Success 201 {object} util.Response{data=model.Skill}
// @Router /api/skills [post]
func (c *UserController) AddSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var req service.SkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.UserService.AddSkill(claims.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

// RemoveSkill godoc
// @Summary Remove a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "skill id"
// @Success 200 {object} util.Response
// @Router /api/skills/{id} [delete]
func (c *UserController) RemoveSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	if err := c.UserService.RemoveSkill(claims.UserID, uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
