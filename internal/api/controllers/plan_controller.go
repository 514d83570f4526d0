package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"menulink/internal/models/request_models"
	"menulink/internal/services"
	"menulink/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List all membership plans, newest first
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {

	plans, err := p.planService.GetAllPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}

// CreatePlan godoc
// @Summary Create a membership plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan payload"
// @Security BearerAuth
// @Router /admin/plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {

	var request request_models.PlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// UpdatePlan godoc
// @Summary Update a membership plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan id"
// @Param request body request_models.PlanRequest true "Plan payload"
// @Security BearerAuth
// @Router /admin/plans/{id} [put]
func (p *PlanController) UpdatePlan(c *gin.Context) {

	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var request request_models.PlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := p.planService.UpdatePlan(c.Request.Context(), uint(planID), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan updated successfully")
}

// DeletePlan godoc
// @Summary Delete a membership plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan id"
// @Security BearerAuth
// @Router /admin/plans/{id} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {

	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := p.planService.DeletePlan(c.Request.Context(), uint(planID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
