package controller

import (
	"errors"
	"strconv"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LectureController struct {
	LectureService *service.LectureService
}

func NewLectureController(lectureService *service.LectureService) *LectureController {
	return &LectureController{LectureService: lectureService}
}

// List godoc
// @Summary Lecture catalog
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.LectureView}
// @Router /api/lectures [get]
func (c *LectureController) List(ctx *gin.Context) {
	lectures, err := c.LectureService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lectures)
}

// Get godoc
// @Summary One lecture
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "lecture id"
// @Success 200 {object} util.Response{data=service.LectureView}
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id} [get]
func (c *LectureController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lecture id")
		return
	}

	lecture, err := c.LectureService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrLectureNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lecture)
}
