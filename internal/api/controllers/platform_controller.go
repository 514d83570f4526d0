package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"menulink/internal/models/request_models"
	"menulink/internal/services"
	"menulink/pkg/utils"
)

type PlatformController struct {
	platformService services.PlatformServiceInterface
}

func NewPlatformController(platformService services.PlatformServiceInterface) *PlatformController {
	return &PlatformController{
		platformService: platformService,
	}
}

// GetPlatformData godoc
// @Summary Get the platform payment configuration
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Router /admin/platform-data [get]
func (p *PlatformController) GetPlatformData(c *gin.Context) {

	config, err := p.platformService.GetConfig(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, config, "")
}

// UpdatePlatformData godoc
// @Summary Update the platform payment configuration
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.PlatformConfigRequest true "Platform configuration"
// @Security BearerAuth
// @Router /admin/platform-data [put]
func (p *PlatformController) UpdatePlatformData(c *gin.Context) {

	var request request_models.PlatformConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := p.platformService.UpdateConfig(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Platform data updated successfully")
}
