package controller

import (
	"errors"

	"edubridge_backend/internal/service"
	"edubridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SimulationController struct{}

func NewSimulationController() *SimulationController {
	return &SimulationController{}
}

// Simulate godoc
// @Summary Business simulation projection
// @Description Projects revenue and growth for a seed budget allocation
// @Tags simulation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SimulationInput true "budget split"
// @Success 200 {object} util.Response{data=service.SimulationResult}
// @Failure 400 {object} util.Response "allocation out of range"
// @Router /api/simulation/run [post]
func (c *SimulationController) Simulate(ctx *gin.Context) {
	var input service.SimulationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := service.SimulateBusiness(input)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAllocation) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
